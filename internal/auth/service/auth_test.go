package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nativoenglish/lingo/internal/auth/denylist"
	"github.com/nativoenglish/lingo/internal/auth/domain"
	"github.com/nativoenglish/lingo/internal/auth/service"
	"github.com/nativoenglish/lingo/internal/auth/store"
	"github.com/nativoenglish/lingo/internal/auth/store/drivers/sqlite"
	"github.com/nativoenglish/lingo/pkg/cryptox"
	"github.com/nativoenglish/lingo/pkg/jwtx"
)

// captureNotifier hands delivered codes to the test over a channel, standing
// in for the SMTP notifier.
type captureNotifier struct {
	codes chan string
}

func newCaptureNotifier() *captureNotifier {
	return &captureNotifier{codes: make(chan string, 8)}
}

func (n *captureNotifier) SendOTPCode(_ context.Context, _, _, code string) error {
	n.codes <- code
	return nil
}

func (n *captureNotifier) SendPasswordReset(_ context.Context, _, _, token string) error {
	n.codes <- token
	return nil
}

func (n *captureNotifier) wait(t *testing.T) string {
	t.Helper()
	select {
	case code := <-n.codes:
		return code
	case <-time.After(2 * time.Second):
		t.Fatal("no notification delivered")
		return ""
	}
}

type fixture struct {
	store    store.Store
	auth     *service.AuthService
	tokens   *service.TokenService
	users    *service.UserService
	password *service.PasswordService
	twofa    *service.TwoFactorService
	notifier *captureNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	signer, err := jwtx.GenerateSignerEdDSA("test-key")
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)

	tokens := &service.TokenService{
		Signer:   signer,
		Verifier: jwtx.NewVerifierEdDSA(keys, "lingo-test"),
		Denylist: denylist.NewMemory(),
		Issuer:   "lingo-test",
	}

	notifier := newCaptureNotifier()
	otp := &service.OTPService{Store: st, Issuer: "lingo-test"}

	return &fixture{
		store:    st,
		tokens:   tokens,
		auth:     &service.AuthService{Store: st, Tokens: tokens, OTP: otp, Notifier: notifier},
		users:    &service.UserService{Store: st},
		password: &service.PasswordService{Store: st, Tokens: tokens, Notifier: notifier},
		twofa:    &service.TwoFactorService{Store: st},
		notifier: notifier,
	}
}

func (f *fixture) register(t *testing.T, username, password string) domain.User {
	t.Helper()
	user, err := f.users.Register(context.Background(), service.RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: password,
	}, false)
	require.NoError(t, err)
	return user
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.register(t, "alice", "s3cret-pass")

	t.Run("unknown username", func(t *testing.T) {
		_, err := f.auth.Login(ctx, "nobody", "s3cret-pass")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.auth.Login(ctx, "alice", "wrong-pass")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("2fa disabled yields a full pair", func(t *testing.T) {
		res, err := f.auth.Login(ctx, "alice", "s3cret-pass")
		require.NoError(t, err)
		require.False(t, res.TwoFAEnabled)
		require.NotNil(t, res.Tokens)
		require.NotEmpty(t, res.Tokens.AccessToken)
		require.NotEmpty(t, res.Tokens.RefreshToken)
		require.Empty(t, res.TempToken)

		claims, err := f.tokens.VerifyKind(ctx, res.Tokens.AccessToken, jwtx.KindAccess)
		require.NoError(t, err)
		require.Equal(t, "student", claims.Role)
		require.False(t, claims.Temp)
	})

	t.Run("suspended account cannot log in", func(t *testing.T) {
		bob := f.register(t, "bob", "s3cret-pass")
		_, err := f.users.SetActive(ctx, bob.ID, false)
		require.NoError(t, err)

		// Indistinguishable from a wrong password: a correct guess must
		// not reveal that the account exists but is suspended.
		_, err = f.auth.Login(ctx, "bob", "s3cret-pass")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestLoginWithTwoFactor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.register(t, "carol", "s3cret-pass")

	_, err := f.twofa.SetEnabled(ctx, user.ID, true)
	require.NoError(t, err)

	res, err := f.auth.Login(ctx, "carol", "s3cret-pass")
	require.NoError(t, err)
	require.True(t, res.TwoFAEnabled)
	require.Nil(t, res.Tokens, "no full tokens before OTP verification")
	require.NotEmpty(t, res.TempToken)

	code := f.notifier.wait(t)
	require.Len(t, code, 6)

	t.Run("temp token is a challenge, not an access token", func(t *testing.T) {
		claims, err := f.tokens.VerifyKind(ctx, res.TempToken, jwtx.KindChallenge)
		require.NoError(t, err)
		require.True(t, claims.Temp)

		_, err = f.tokens.VerifyKind(ctx, res.TempToken, jwtx.KindAccess)
		require.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("wrong digits rejected", func(t *testing.T) {
		wrong := "000000"
		if wrong == code {
			wrong = "000001"
		}
		_, _, err = f.auth.VerifyOtp(ctx, user.ID, wrong)
		require.ErrorIs(t, err, service.ErrInvalidOtp)
	})

	t.Run("correct code upgrades to a full pair", func(t *testing.T) {
		verified, pair, err := f.auth.VerifyOtp(ctx, user.ID, code)
		require.NoError(t, err)
		require.Equal(t, user.ID, verified.ID)
		require.NotEmpty(t, pair.AccessToken)
		require.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("codes are single use", func(t *testing.T) {
		_, _, err := f.auth.VerifyOtp(ctx, user.ID, code)
		require.ErrorIs(t, err, service.ErrInvalidOtp)
	})
}

func TestResendOtp(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.register(t, "dave", "s3cret-pass")

	t.Run("requires 2fa", func(t *testing.T) {
		_, err := f.auth.ResendOtp(ctx, user.ID)
		require.ErrorIs(t, err, service.ErrTwoFactorNotEnabled)
	})

	_, err := f.twofa.SetEnabled(ctx, user.ID, true)
	require.NoError(t, err)

	_, err = f.auth.Login(ctx, "dave", "s3cret-pass")
	require.NoError(t, err)
	first := f.notifier.wait(t)

	_, err = f.auth.ResendOtp(ctx, user.ID)
	require.NoError(t, err)
	second := f.notifier.wait(t)

	t.Run("resend invalidates the previous code", func(t *testing.T) {
		if first == second {
			// Same TOTP step derives the same digits; the old row is
			// still invalidated, so only one verification can succeed.
			t.Skip("codes derived within one time step")
		}
		_, _, err := f.auth.VerifyOtp(ctx, user.ID, first)
		require.ErrorIs(t, err, service.ErrInvalidOtp)

		_, _, err = f.auth.VerifyOtp(ctx, user.ID, second)
		require.NoError(t, err)
	})

	t.Run("at most one unused code exists", func(t *testing.T) {
		n, err := f.store.OTPCodes().CountUnusedCodes(ctx, user.ID)
		require.NoError(t, err)
		require.LessOrEqual(t, n, 1)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.register(t, "erin", "s3cret-pass")

	res, err := f.auth.Login(ctx, "erin", "s3cret-pass")
	require.NoError(t, err)

	t.Run("garbage token rejected", func(t *testing.T) {
		err := f.auth.Logout(ctx, "not-a-jwt")
		require.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		err := f.auth.Logout(ctx, res.Tokens.AccessToken)
		require.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("logout revokes the refresh token", func(t *testing.T) {
		require.NoError(t, f.auth.Logout(ctx, res.Tokens.RefreshToken))

		_, err := f.auth.Refresh(ctx, res.Tokens.RefreshToken)
		require.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("second logout reports already invalid", func(t *testing.T) {
		err := f.auth.Logout(ctx, res.Tokens.RefreshToken)
		require.ErrorIs(t, err, service.ErrTokenAlreadyInvalid)
	})
}

func TestRefreshRotation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.register(t, "frank", "s3cret-pass")

	res, err := f.auth.Login(ctx, "frank", "s3cret-pass")
	require.NoError(t, err)

	pair, err := f.auth.Refresh(ctx, res.Tokens.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, res.Tokens.RefreshToken, pair.RefreshToken)

	t.Run("old refresh token is dead after rotation", func(t *testing.T) {
		_, err := f.auth.Refresh(ctx, res.Tokens.RefreshToken)
		require.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("rotated token still works", func(t *testing.T) {
		_, err := f.auth.Refresh(ctx, pair.RefreshToken)
		require.NoError(t, err)
	})

	t.Run("suspension kills outstanding refresh tokens", func(t *testing.T) {
		res, err := f.auth.Login(ctx, "frank", "s3cret-pass")
		require.NoError(t, err)

		user, err := f.store.Users().GetUserByUsername(ctx, "frank")
		require.NoError(t, err)
		_, err = f.users.SetActive(ctx, user.ID, false)
		require.NoError(t, err)

		_, err = f.auth.Refresh(ctx, res.Tokens.RefreshToken)
		require.ErrorIs(t, err, service.ErrInvalidToken)
	})
}

func TestPasswordReset(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.register(t, "grace", "old-pass-123")

	t.Run("unknown email is silently accepted", func(t *testing.T) {
		require.NoError(t, f.password.RequestReset(ctx, "ghost@example.com"))
	})

	require.NoError(t, f.password.RequestReset(ctx, "grace@example.com"))
	token := f.notifier.wait(t)

	t.Run("access token is not a reset token", func(t *testing.T) {
		res, err := f.auth.Login(ctx, "grace", "old-pass-123")
		require.NoError(t, err)
		err = f.password.UpdatePassword(ctx, res.Tokens.AccessToken, "new-pass-456")
		require.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("reset token changes the password once", func(t *testing.T) {
		require.NoError(t, f.password.UpdatePassword(ctx, token, "new-pass-456"))

		_, err := f.auth.Login(ctx, "grace", "old-pass-123")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)

		_, err = f.auth.Login(ctx, "grace", "new-pass-456")
		require.NoError(t, err)

		// replay
		err = f.password.UpdatePassword(ctx, token, "sneaky-pass-789")
		require.ErrorIs(t, err, service.ErrInvalidToken)
	})
}

func TestRegisterRoles(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("defaults to student", func(t *testing.T) {
		u := f.register(t, "henry", "s3cret-pass")
		require.Equal(t, domain.RoleStudent, u.Role)
	})

	t.Run("self-service cannot claim admin", func(t *testing.T) {
		_, err := f.users.Register(ctx, service.RegisterInput{
			Username: "mallory",
			Email:    "mallory@example.com",
			Password: "s3cret-pass",
			Role:     domain.RoleAdmin,
		}, false)
		require.ErrorIs(t, err, service.ErrRoleNotAllowed)
	})

	t.Run("admin path may create admins", func(t *testing.T) {
		u, err := f.users.Register(ctx, service.RegisterInput{
			Username: "root",
			Email:    "root@example.com",
			Password: "s3cret-pass",
			Role:     domain.RoleAdmin,
		}, true)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, u.Role)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		_, err := f.users.Register(ctx, service.RegisterInput{
			Username: "henry",
			Email:    "henry2@example.com",
			Password: "s3cret-pass",
		}, false)
		require.ErrorIs(t, err, service.ErrUserAlreadyExists)
	})
}
