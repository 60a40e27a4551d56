package http

import (
	"net/http"

	"github.com/nativoenglish/lingo/internal/auth/service"
	"github.com/nativoenglish/lingo/pkg/httpx"
)

type VerifyOtpHandler struct {
	AuthService *service.AuthService
}

type verifyOtpRequest struct {
	OTP string `json:"otp"`
}

type verifyOtpResponse struct {
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	Access    string `json:"access"`
	Refresh   string `json:"refresh"`
	ExpiresIn int64  `json:"expires_in"`
}

// ServeHTTP handles OTP verification.
//
//	@Summary		Verify the emailed one-time code
//	@Description	Consumes the OTP and upgrades the challenge token to a full access/refresh pair.
//	@Description	Requires the temporary token from login as bearer.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		verifyOtpRequest	true	"The 6-digit code"
//	@Success		200		{object}	httpx.Response		"OTP verified successfully"
//	@Failure		400		{object}	httpx.Response		"Invalid OTP / OTP has expired"
//	@Failure		401		{object}	httpx.Response		"Invalid or expired token"
//	@Router			/v1/auth/verify-otp [post].
func (h *VerifyOtpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOtpRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.OTP == "" {
		httpx.WriteError(w, http.StatusBadRequest, MsgValidationError)
		return
	}

	userID := httpx.UserIDFromCtx(r.Context())
	user, pair, err := h.AuthService.VerifyOtp(r.Context(), userID, req.OTP)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, MsgOTPVerified, verifyOtpResponse{
		UserID:    user.ID,
		Role:      user.Role.String(),
		Access:    pair.AccessToken,
		Refresh:   pair.RefreshToken,
		ExpiresIn: pair.ExpiresIn,
	})
}

type ResendOtpHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles OTP resend.
//
//	@Summary		Resend the one-time code
//	@Description	Invalidates the outstanding code and emails a fresh one.
//	@Description	Requires the temporary token from login as bearer.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	httpx.Response	"OTP resent successfully"
//	@Failure		400	{object}	httpx.Response	"Two-factor authentication is not enabled"
//	@Failure		401	{object}	httpx.Response	"Invalid or expired token"
//	@Router			/v1/auth/resend-otp [post].
func (h *ResendOtpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromCtx(r.Context())

	user, err := h.AuthService.ResendOtp(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, MsgOTPResent, map[string]string{
		"user_id": user.ID,
		"role":    user.Role.String(),
	})
}
