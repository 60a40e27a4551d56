package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/nativoenglish/lingo/internal/auth/domain"
)

type prefsRepo struct {
	db dbtx
}

func (r *prefsRepo) GetPrefs(ctx context.Context, userID string) (domain.UserPrefs, error) {
	var (
		p                    domain.UserPrefs
		enable               int
		secret               sql.NullString
		createdAt, updatedAt string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, enable_2fa, otp_secret, preferred_lang, created_at, updated_at
		 FROM user_prefs WHERE user_id = ?`, userID,
	).Scan(&p.UserID, &enable, &secret, &p.PreferredLang, &createdAt, &updatedAt)
	if err != nil {
		return domain.UserPrefs{}, mapNotFound(err)
	}

	p.Enable2FA = enable != 0
	if secret.Valid {
		p.OTPSecret = &secret.String
	}
	p.CreatedAt = decodeTime(createdAt)
	p.UpdatedAt = decodeTime(updatedAt)
	return p, nil
}

// SetTwoFactor flips the 2FA flag, creating the prefs row if the user
// never touched their preferences before.
func (r *prefsRepo) SetTwoFactor(ctx context.Context, userID string, enabled bool) error {
	now := encodeTime(time.Now())
	res, err := r.db.ExecContext(ctx,
		`UPDATE user_prefs SET enable_2fa = ?, updated_at = ? WHERE user_id = ?`,
		boolToInt(enabled), now, userID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n > 0 {
		return nil
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO user_prefs (user_id, enable_2fa, otp_secret, preferred_lang, created_at, updated_at)
		 VALUES (?, ?, NULL, 'en', ?, ?)`,
		userID, boolToInt(enabled), now, now,
	)
	return err
}

func (r *prefsRepo) SetOTPSecret(ctx context.Context, userID string, secret string) error {
	now := encodeTime(time.Now())
	res, err := r.db.ExecContext(ctx,
		`UPDATE user_prefs SET otp_secret = ?, updated_at = ? WHERE user_id = ?`,
		secret, now, userID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n > 0 {
		return nil
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO user_prefs (user_id, enable_2fa, otp_secret, preferred_lang, created_at, updated_at)
		 VALUES (?, 0, ?, 'en', ?, ?)`,
		userID, secret, now, now,
	)
	return err
}
