package http

import (
	"net/http"
	"net/mail"

	"github.com/nativoenglish/lingo/internal/auth/domain"
	"github.com/nativoenglish/lingo/internal/auth/service"
	"github.com/nativoenglish/lingo/pkg/httpx"
)

const minPasswordLength = 8

type RegisterHandler struct {
	UserService *service.UserService
}

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

func (req *registerRequest) validate() string {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return MsgValidationError
	}
	if len(req.Password) < minPasswordLength {
		return "Password must be at least 8 characters"
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return "Invalid email address"
	}
	return ""
}

// ServeHTTP handles self-service registration.
//
//	@Summary		Register a new account
//	@Description	Creates a user. Role defaults to student; the admin role cannot be self-assigned.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registerRequest	true	"New account"
//	@Success		201		{object}	httpx.Response	"User created successfully"
//	@Failure		400		{object}	httpx.Response	"Validation error / duplicate user"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	user, err := h.UserService.Register(r.Context(), service.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Role:      domain.Role(req.Role),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}, false)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusCreated, MsgUserCreated, toUserPayload(user))
}
