// Package notify delivers account emails: one-time login codes and password
// reset links. The service layer fires these from a goroutine so a slow or
// broken SMTP host never delays the HTTP response.
package notify

import "context"

type Notifier interface {
	// SendOTPCode mails a one-time login code to the user.
	SendOTPCode(ctx context.Context, to, username, code string) error

	// SendPasswordReset mails a password reset token to the user.
	SendPasswordReset(ctx context.Context, to, username, token string) error
}

// Noop discards every notification. Used in tests and in deployments
// without an SMTP host configured.
type Noop struct{}

func (Noop) SendOTPCode(context.Context, string, string, string) error       { return nil }
func (Noop) SendPasswordReset(context.Context, string, string, string) error { return nil }
