package service

import "errors"

// Sentinel errors span the whole service layer. The HTTP layer maps each to
// a response envelope with the right status code; anything else becomes an
// opaque 500.
var (
	ErrInvalidCredentials  = errors.New("invalid_credentials")
	ErrInvalidToken        = errors.New("invalid_token")
	ErrInvalidOtp          = errors.New("invalid_otp")
	ErrExpiredOtp          = errors.New("expired_otp")
	ErrTwoFactorNotEnabled = errors.New("two_factor_not_enabled")
	ErrTokenAlreadyInvalid = errors.New("token_already_invalid")
	ErrRoleNotAllowed      = errors.New("role_not_allowed")
	ErrUserNotFound        = errors.New("user_not_found")
	ErrUserAlreadyExists   = errors.New("user_already_exists")
)
