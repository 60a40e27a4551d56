package http

import (
	"net/http"
	"strconv"

	"github.com/nativoenglish/lingo/internal/auth/domain"
	"github.com/nativoenglish/lingo/internal/auth/service"
	"github.com/nativoenglish/lingo/pkg/httpx"
)

// AdminUsersHandler implements the admin user management endpoints. Every
// route is behind RequireRole("admin").
type AdminUsersHandler struct {
	UserService *service.UserService
}

// HandleList lists users.
//
//	@Summary		List users
//	@Description	Returns a page of users, newest first. page_size is capped at 100.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page		query		int	false	"Page number (1-based)"
//	@Param			page_size	query		int	false	"Page size (default 10, max 100)"
//	@Success		200			{object}	httpx.Response	"Users list retrieved successfully"
//	@Failure		401			{object}	httpx.Response	"Invalid or expired token"
//	@Failure		403			{object}	httpx.Response	"Permission denied"
//	@Router			/v1/admin/users [get].
func (h *AdminUsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	result, err := h.UserService.ListUsers(r.Context(), page, pageSize)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	users := make([]userPayload, 0, len(result.Users))
	for _, u := range result.Users {
		users = append(users, toUserPayload(u))
	}

	httpx.WriteSuccess(w, http.StatusOK, MsgUsersListRetrieved, map[string]any{
		"users":     users,
		"total":     result.Total,
		"page":      result.Page,
		"page_size": result.PageSize,
	})
}

// HandleCreate creates a user, any role allowed.
//
//	@Summary		Create a user
//	@Description	Creates a user with any role, including admin.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registerRequest	true	"New user"
//	@Success		201		{object}	httpx.Response	"User created successfully"
//	@Failure		400		{object}	httpx.Response	"Validation error / duplicate user"
//	@Failure		403		{object}	httpx.Response	"Permission denied"
//	@Router			/v1/admin/users [post].
func (h *AdminUsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
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
	}, true)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusCreated, MsgUserCreated, toUserPayload(user))
}

// HandleGet returns a single user.
//
//	@Summary		Get a user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"User id"
//	@Success		200	{object}	httpx.Response	"User retrieved successfully"
//	@Failure		404	{object}	httpx.Response	"Resource not found"
//	@Router			/v1/admin/users/{id} [get].
func (h *AdminUsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, MsgUserRetrieved, toUserPayload(user))
}

type updateUserRequest struct {
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// HandleUpdate replaces a user's profile fields.
//
//	@Summary		Update a user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"User id"
//	@Param			request	body		updateUserRequest	true	"Fields to update"
//	@Success		200		{object}	httpx.Response		"User updated successfully"
//	@Failure		404		{object}	httpx.Response		"Resource not found"
//	@Router			/v1/admin/users/{id} [put].
func (h *AdminUsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.UserService.UpdateUser(r.Context(), r.PathValue("id"), service.UpdateUserInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, MsgUserUpdated, toUserPayload(user))
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

// HandleUpdateRole changes a user's role.
//
//	@Summary		Update a user's role
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"User id"
//	@Param			request	body		updateRoleRequest	true	"The new role"
//	@Success		200		{object}	httpx.Response		"User role updated successfully"
//	@Failure		400		{object}	httpx.Response		"Validation error"
//	@Failure		404		{object}	httpx.Response		"Resource not found"
//	@Router			/v1/admin/users/{id}/role [put].
func (h *AdminUsersHandler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	var req updateRoleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Role == "" {
		httpx.WriteError(w, http.StatusBadRequest, MsgValidationError)
		return
	}

	user, err := h.UserService.UpdateRole(r.Context(), r.PathValue("id"), domain.Role(req.Role))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, MsgUserRoleUpdated, toUserPayload(user))
}

// HandleActivate reactivates a suspended account.
//
//	@Summary		Activate a user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"User id"
//	@Success		200	{object}	httpx.Response	"User activated successfully"
//	@Failure		404	{object}	httpx.Response	"Resource not found"
//	@Router			/v1/admin/users/{id}/activate [post].
func (h *AdminUsersHandler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true, MsgUserActivated)
}

// HandleSuspend suspends an account. Suspension is the soft delete; the row
// is kept.
//
//	@Summary		Suspend a user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"User id"
//	@Success		200	{object}	httpx.Response	"User suspended successfully"
//	@Failure		404	{object}	httpx.Response	"Resource not found"
//	@Router			/v1/admin/users/{id}/suspend [post].
func (h *AdminUsersHandler) HandleSuspend(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false, MsgUserSuspended)
}

func (h *AdminUsersHandler) setActive(w http.ResponseWriter, r *http.Request, active bool, msg string) {
	user, err := h.UserService.SetActive(r.Context(), r.PathValue("id"), active)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, msg, toUserPayload(user))
}
