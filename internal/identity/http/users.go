package http

import (
	"net/http"
	"strconv"

	"github.com/campfirehq/identity/internal/identity/service"
	"github.com/campfirehq/identity/pkg/httpx"
	"github.com/campfirehq/identity/pkg/identitysdk"
	"github.com/campfirehq/identity/pkg/slogx"
)

// UsersHandler serves the user directory endpoints.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleCreate godoc
//
//	@Summary		Create User Endpoint
//	@Description	Seed a user record by name and email; the account receives a default password until reset
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		identitysdk.CreateUserRequest	true	"name, email"
//	@Success		201		{object}	identitysdk.UserResponse		"id, name, email"
//	@Failure		400		{object}	identitysdk.APIError			"message, errors, statusCode"
//	@Failure		409		{object}	identitysdk.APIError			"message, statusCode"
//	@Failure		500		{object}	identitysdk.APIError			"message, statusCode"
//	@Router			/api/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req identitysdk.CreateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.UserService.Create(ctx, req.Name, req.Email)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, identitysdk.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

// HandleList godoc
//
//	@Summary		List Users Endpoint
//	@Description	Return one page of users, newest first, with total and page counts
//	@Tags			Users
//	@Produce		json
//	@Param			page	query		int							false	"Page number, starting at 1"	default(1)
//	@Param			limit	query		int							false	"Page size, 1 to 100"			default(10)
//	@Success		200		{object}	identitysdk.UserListResponse	"data, total, page, limit, totalPages"
//	@Failure		400		{object}	identitysdk.APIError			"message, errors, statusCode"
//	@Failure		500		{object}	identitysdk.APIError			"message, statusCode"
//	@Router			/api/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	page, ok := queryInt(w, r, "page")
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	result, err := h.UserService.List(ctx, page, limit)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	data := make([]identitysdk.UserResponse, 0, len(result.Users))
	for _, u := range result.Users {
		data = append(data, identitysdk.UserResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, identitysdk.UserListResponse{
		Data:       data,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// HandleGet godoc
//
//	@Summary		Get User Endpoint
//	@Description	Fetch one user by id
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string						true	"User ULID"
//	@Success		200	{object}	identitysdk.UserResponse	"id, name, email"
//	@Failure		401	{object}	identitysdk.APIError		"message, statusCode"
//	@Failure		404	{object}	identitysdk.APIError		"message, statusCode"
//	@Failure		500	{object}	identitysdk.APIError		"message, statusCode"
//	@Router			/api/v1/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, err := h.UserService.GetByID(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, identitysdk.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

// queryInt parses an optional integer query parameter. Absent means zero,
// which the service layer replaces with its default.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		identitysdk.NewValidationError(identitysdk.FieldError{
			Field:   name,
			Message: "Must be an integer",
		}).WriteError(w)
		return 0, false
	}
	return n, true
}
