package http

import (
	"net/http"

	"github.com/nativoenglish/lingo/internal/auth/service"
	"github.com/nativoenglish/lingo/pkg/httpx"
)

type RefreshHandler struct {
	AuthService *service.AuthService
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// ServeHTTP handles refresh token rotation.
//
//	@Summary		Refresh the token pair
//	@Description	Exchanges a valid refresh token for a new access/refresh pair.
//	@Description	The old refresh token is revoked in the same step.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		refreshRequest	true	"The refresh token"
//	@Success		200		{object}	httpx.Response	"Token refreshed successfully"
//	@Failure		401		{object}	httpx.Response	"Invalid or expired token"
//	@Router			/v1/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Refresh == "" {
		httpx.WriteError(w, http.StatusBadRequest, MsgValidationError)
		return
	}

	pair, err := h.AuthService.Refresh(r.Context(), req.Refresh)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, MsgTokenRefreshed, pair)
}
