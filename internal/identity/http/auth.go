package http

import (
	"net/http"

	"github.com/campfirehq/identity/internal/identity/service"
	"github.com/campfirehq/identity/pkg/httpx"
	"github.com/campfirehq/identity/pkg/identitysdk"
	"github.com/campfirehq/identity/pkg/slogx"
)

// AuthHandler serves the credential endpoints: sign-up, sign-in, sign-out.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleSignUp godoc
//
//	@Summary		Sign Up Endpoint
//	@Description	Register a new identity with email and password
//	@Description	Duplicate emails are rejected with 409; the response never includes credentials
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		identitysdk.SignUpRequest	true	"email, password"
//	@Success		201		{object}	identitysdk.SignUpResponse	"user"
//	@Failure		400		{object}	identitysdk.APIError		"message, errors, statusCode"
//	@Failure		409		{object}	identitysdk.APIError		"message, statusCode"
//	@Failure		500		{object}	identitysdk.APIError		"message, statusCode"
//	@Router			/api/v1/auth/signup [post].
func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req identitysdk.SignUpRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.AuthService.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, identitysdk.SignUpResponse{
		User: identitysdk.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// HandleSignIn godoc
//
//	@Summary		Sign In Endpoint
//	@Description	Verify credentials and issue a JWT access token plus a 7-day refresh token
//	@Description	Unknown email and wrong password return the same 401 so accounts cannot be enumerated
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		identitysdk.SignInRequest	true	"email, password"
//	@Success		200		{object}	identitysdk.SignInResponse	"token, refreshToken, user"
//	@Failure		400		{object}	identitysdk.APIError		"message, errors, statusCode"
//	@Failure		401		{object}	identitysdk.APIError		"message, statusCode"
//	@Failure		500		{object}	identitysdk.APIError		"message, statusCode"
//	@Router			/api/v1/auth/signin [post].
func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req identitysdk.SignInRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, pair, err := h.AuthService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, identitysdk.SignInResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User: identitysdk.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// HandleSignOut godoc
//
//	@Summary		Sign Out Endpoint
//	@Description	Acknowledge a sign-out; tokens are not revocable, so the client discards them
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	identitysdk.SignOutResponse	"message"
//	@Failure		401	{object}	identitysdk.APIError		"message, statusCode"
//	@Router			/api/v1/auth/signout [post].
func (h *AuthHandler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	message := h.AuthService.SignOut(r.Context())
	httpx.WriteJSON(w, http.StatusOK, identitysdk.SignOutResponse{Message: message})
}
