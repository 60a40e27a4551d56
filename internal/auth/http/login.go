package http

import (
	"net/http"

	"github.com/nativoenglish/lingo/internal/auth/service"
	"github.com/nativoenglish/lingo/pkg/httpx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	UserID       string `json:"user_id"`
	Role         string `json:"role"`
	Is2FAEnabled bool   `json:"is_2fa_enabled"`

	// Issued when 2FA is disabled.
	Access    string `json:"access,omitempty"`
	Refresh   string `json:"refresh,omitempty"`
	ExpiresIn int64  `json:"expires_in,omitempty"`

	// Issued when 2FA is enabled; good only for verify-otp / resend-otp.
	TempToken string `json:"temp_token,omitempty"`
}

// ServeHTTP handles login.
//
//	@Summary		Log in with username and password
//	@Description	Verifies credentials. Users without 2FA receive an access/refresh pair;
//	@Description	users with 2FA receive a temporary challenge token and an emailed OTP.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest	true	"Credentials"
//	@Success		200		{object}	httpx.Response	"Login Successful / OTP verification required"
//	@Failure		400		{object}	httpx.Response	"Validation error"
//	@Failure		401		{object}	httpx.Response	"Invalid username or password"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, MsgValidationError)
		return
	}

	res, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	payload := loginResponse{
		UserID:       res.UserID,
		Role:         res.Role.String(),
		Is2FAEnabled: res.TwoFAEnabled,
	}

	if res.TwoFAEnabled {
		payload.TempToken = res.TempToken
		httpx.WriteSuccess(w, http.StatusOK, MsgOTPRequired, payload)
		return
	}

	payload.Access = res.Tokens.AccessToken
	payload.Refresh = res.Tokens.RefreshToken
	payload.ExpiresIn = res.Tokens.ExpiresIn
	httpx.WriteSuccess(w, http.StatusOK, MsgLoginSuccessful, payload)
}
