package http

import (
	"net/http"

	"github.com/nativoenglish/lingo/internal/auth/service"
	"github.com/nativoenglish/lingo/pkg/httpx"
)

type LogoutHandler struct {
	AuthService *service.AuthService
}

type logoutRequest struct {
	Refresh string `json:"refresh"`
}

// ServeHTTP handles logout.
//
//	@Summary		Log out
//	@Description	Revokes the refresh token. Revoking an already-revoked or expired token fails.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		logoutRequest	true	"The refresh token to revoke"
//	@Success		200		{object}	httpx.Response	"Logout successful"
//	@Failure		400		{object}	httpx.Response	"Token is already invalid"
//	@Failure		401		{object}	httpx.Response	"Invalid or expired token"
//	@Router			/v1/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req logoutRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Refresh == "" {
		httpx.WriteError(w, http.StatusBadRequest, MsgValidationError)
		return
	}

	if err := h.AuthService.Logout(r.Context(), req.Refresh); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, MsgLogoutSuccessful, nil)
}
