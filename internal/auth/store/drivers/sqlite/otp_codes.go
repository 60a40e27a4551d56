package sqlite

import (
	"context"
	"time"

	"github.com/nativoenglish/lingo/internal/auth/domain"
)

type otpCodesRepo struct {
	db dbtx
}

func (r *otpCodesRepo) CreateCode(ctx context.Context, code domain.OneTimeCode) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO otp_codes (id, user_id, code, created_at, expires_at, is_used)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		code.ID, code.UserID, code.Code,
		encodeTime(code.CreatedAt), encodeTime(code.ExpiresAt), boolToInt(code.IsUsed),
	)
	return err
}

// GetCodeForUser returns the most recently issued row matching the submitted
// digits, used or not. The caller decides whether a used or expired row is an
// error; conflating them here would hide which failure the user hit.
func (r *otpCodesRepo) GetCodeForUser(ctx context.Context, userID, code string) (domain.OneTimeCode, error) {
	var (
		c                    domain.OneTimeCode
		used                 int
		createdAt, expiresAt string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, code, created_at, expires_at, is_used
		 FROM otp_codes WHERE user_id = ? AND code = ?
		 ORDER BY created_at DESC LIMIT 1`,
		userID, code,
	).Scan(&c.ID, &c.UserID, &c.Code, &createdAt, &expiresAt, &used)
	if err != nil {
		return domain.OneTimeCode{}, mapNotFound(err)
	}

	c.IsUsed = used != 0
	c.CreatedAt = decodeTime(createdAt)
	c.ExpiresAt = decodeTime(expiresAt)
	return c, nil
}

func (r *otpCodesRepo) InvalidateUnusedCodes(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE otp_codes SET is_used = 1 WHERE user_id = ? AND is_used = 0`, userID)
	return err
}

// ConsumeCode marks the row used. The is_used guard makes the update a
// compare-and-swap, so concurrent verifications of the same code race for a
// single winner.
func (r *otpCodesRepo) ConsumeCode(ctx context.Context, codeID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE otp_codes SET is_used = 1 WHERE id = ? AND is_used = 0`, codeID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *otpCodesRepo) CountUnusedCodes(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM otp_codes WHERE user_id = ? AND is_used = 0`, userID,
	).Scan(&n)
	return n, err
}

func (r *otpCodesRepo) DeleteExpiredCodes(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM otp_codes WHERE expires_at < ?`, encodeTime(olderThan))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
