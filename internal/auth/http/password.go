package http

import (
	"net/http"

	"github.com/nativoenglish/lingo/internal/auth/service"
	"github.com/nativoenglish/lingo/pkg/httpx"
)

type ForgotPasswordHandler struct {
	PasswordService *service.PasswordService
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ServeHTTP handles forgot-password requests.
//
//	@Summary		Request a password reset
//	@Description	Emails a reset token if the address belongs to an account. Always answers 200
//	@Description	so the endpoint cannot be used to probe which emails are registered.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		forgotPasswordRequest	true	"Account email"
//	@Success		200		{object}	httpx.Response			"Reset requested"
//	@Failure		400		{object}	httpx.Response			"Validation error"
//	@Router			/v1/auth/forgot-password [post].
func (h *ForgotPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == "" {
		httpx.WriteError(w, http.StatusBadRequest, MsgValidationError)
		return
	}

	if err := h.PasswordService.RequestReset(r.Context(), req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, MsgResetRequested, nil)
}

type UpdatePasswordHandler struct {
	PasswordService *service.PasswordService
}

type updatePasswordRequest struct {
	ResetToken string `json:"reset_token"`
	Password   string `json:"password"`
}

// ServeHTTP handles the second half of the reset flow.
//
//	@Summary		Set a new password
//	@Description	Validates the emailed reset token and stores the new password. Each token
//	@Description	works exactly once.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		updatePasswordRequest	true	"Reset token and new password"
//	@Success		200		{object}	httpx.Response			"Password updated successfully"
//	@Failure		400		{object}	httpx.Response			"Validation error"
//	@Failure		401		{object}	httpx.Response			"Invalid or expired token"
//	@Router			/v1/auth/update-password [post].
func (h *UpdatePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req updatePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ResetToken == "" || len(req.Password) < minPasswordLength {
		httpx.WriteError(w, http.StatusBadRequest, MsgValidationError)
		return
	}

	if err := h.PasswordService.UpdatePassword(r.Context(), req.ResetToken, req.Password); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, MsgPasswordUpdated, nil)
}
