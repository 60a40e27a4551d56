package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/nativoenglish/lingo/internal/auth/domain"
	"github.com/nativoenglish/lingo/internal/auth/service"
	"github.com/nativoenglish/lingo/pkg/httpx"
	"github.com/nativoenglish/lingo/pkg/slogx"
)

// decodeBody unmarshals the JSON request body into v. Returns false (with a
// 400 already written) on malformed input.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(v); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, MsgBadRequest)
		return false
	}
	return true
}

// writeServiceError maps service sentinels onto the response envelope.
// Anything unmapped is logged and collapsed to an opaque 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, MsgInvalidCredentials)
	case errors.Is(err, service.ErrInvalidToken):
		httpx.WriteError(w, http.StatusUnauthorized, MsgInvalidToken)
	case errors.Is(err, service.ErrTokenAlreadyInvalid):
		httpx.WriteError(w, http.StatusBadRequest, MsgTokenAlreadyInvalid)
	case errors.Is(err, service.ErrInvalidOtp):
		httpx.WriteError(w, http.StatusBadRequest, MsgInvalidOTP)
	case errors.Is(err, service.ErrExpiredOtp):
		httpx.WriteError(w, http.StatusBadRequest, MsgExpiredOTP)
	case errors.Is(err, service.ErrTwoFactorNotEnabled):
		httpx.WriteError(w, http.StatusBadRequest, MsgTwoFactorNotEnabled)
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, MsgNotFound)
	case errors.Is(err, service.ErrUserAlreadyExists):
		httpx.WriteError(w, http.StatusBadRequest, MsgUserExists)
	case errors.Is(err, service.ErrRoleNotAllowed), errors.Is(err, domain.ErrUnknownRole):
		httpx.WriteError(w, http.StatusBadRequest, MsgValidationError)
	default:
		slogx.FromContext(r.Context()).Error("unhandled service error", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, MsgInternalError)
	}
}

// userPayload is the profile shape returned by user endpoints. Password
// hashes never leave the service.
type userPayload struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

func toUserPayload(u domain.User) userPayload {
	return userPayload{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role.String(),
		IsActive:  u.IsActive,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
