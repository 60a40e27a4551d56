package http

import (
	"net/http"

	"github.com/nativoenglish/lingo/internal/auth/service"
	"github.com/nativoenglish/lingo/pkg/httpx"
)

type TwoFactorHandler struct {
	TwoFactorService *service.TwoFactorService
}

type twoFactorRequest struct {
	Enable2FA *bool `json:"enable_2fa"`
}

// ServeHTTP handles the 2FA preference toggle.
//
//	@Summary		Enable or disable two-factor authentication
//	@Description	Flips the 2FA preference for the authenticated user. Takes effect at the
//	@Description	next login.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		twoFactorRequest	true	"The desired state"
//	@Success		200		{object}	httpx.Response		"Two-factor preference updated successfully"
//	@Failure		400		{object}	httpx.Response		"Validation error"
//	@Failure		401		{object}	httpx.Response		"Invalid or expired token"
//	@Router			/v1/auth/2fa [patch].
func (h *TwoFactorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req twoFactorRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Enable2FA == nil {
		httpx.WriteError(w, http.StatusBadRequest, MsgValidationError)
		return
	}

	userID := httpx.UserIDFromCtx(r.Context())
	prefs, err := h.TwoFactorService.SetEnabled(r.Context(), userID, *req.Enable2FA)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, MsgTwoFactorUpdated, map[string]any{
		"user_id":        prefs.UserID,
		"enable_2fa":     prefs.Enable2FA,
		"preferred_lang": prefs.PreferredLang,
	})
}
