package identitysdk

// UserResponse is the public identity view. The stored password hash is
// never part of any wire type in this package.
type UserResponse struct {
	ID string `json:"id"`

	// Name defaults to the empty string when absent; it is never null.
	Name string `json:"name"`

	Email string `json:"email"`
}

// SignUpRequest is the body for POST /auth/signup.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpResponse wraps the created identity.
type SignUpResponse struct {
	User UserResponse `json:"user"`
}

// SignInRequest is the body for POST /auth/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse carries both bearer tokens plus the identity view.
type SignInResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// SignOutResponse acknowledges a stateless sign-out.
type SignOutResponse struct {
	Message string `json:"message"`
}

// CreateUserRequest is the body for POST /users.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserListResponse is the paginated result of GET /users.
type UserListResponse struct {
	Data       []UserResponse `json:"data"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"totalPages"`
}

// HealthChecks reports per-dependency status on the readiness endpoint.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
