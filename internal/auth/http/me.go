package http

import (
	"net/http"

	"github.com/nativoenglish/lingo/internal/auth/service"
	"github.com/nativoenglish/lingo/pkg/httpx"
)

type MeHandler struct {
	UserService      *service.UserService
	TwoFactorService *service.TwoFactorService
}

// ServeHTTP returns the authenticated user's profile.
//
//	@Summary		Get the authenticated user
//	@Description	Returns the profile and 2FA state of the bearer token's owner.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	httpx.Response	"User retrieved successfully"
//	@Failure		401	{object}	httpx.Response	"Invalid or expired token"
//	@Router			/v1/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromCtx(r.Context())

	user, err := h.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	enabled, err := h.TwoFactorService.Enabled(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	payload := struct {
		userPayload
		Is2FAEnabled bool `json:"is_2fa_enabled"`
	}{toUserPayload(user), enabled}

	httpx.WriteSuccess(w, http.StatusOK, MsgUserRetrieved, payload)
}
