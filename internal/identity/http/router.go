package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/campfirehq/identity/internal/identity/service"
	"github.com/campfirehq/identity/internal/identity/store"
	"github.com/campfirehq/identity/pkg/httpx"
	"github.com/campfirehq/identity/pkg/jwtx"
	"github.com/campfirehq/identity/pkg/slogx"

	_ "github.com/campfirehq/identity/api/identity" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	apiPrefix    string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store       store.Store
	AuthService *service.AuthService
	UserService *service.UserService
}

// NewRouter wires the shared handler dependencies. apiVersion selects the
// path prefix, e.g. "v1" puts every business route under /api/v1.
func NewRouter(
	verifier jwtx.Verifier,
	apiVersion, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		apiPrefix:    "/api/" + apiVersion,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Campfire Identity Service API
//	@version		0.1.0
//	@description	Credential management and session authentication: password-based sign-up and sign-in issuing JWT access and refresh tokens, plus a user directory with paginated listing.
//	@description
//	@description				Tokens are signed with HS256 using a shared secret; signing out is a client-side discard.
//
//	@contact.name				Campfire Team
//	@contact.url				https://github.com/campfirehq/identity
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// POST /auth/signup - strict rate limit by IP (public account creation)
	r.Mux.Handle("POST "+r.apiPrefix+"/auth/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignUp),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/signin - strict rate limit by IP (credential guessing surface)
	r.Mux.Handle("POST "+r.apiPrefix+"/auth/signin",
		httpx.Chain(http.HandlerFunc(h.HandleSignIn),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/signout - requires a valid token, moderate limit by user
	r.Mux.Handle("POST "+r.apiPrefix+"/auth/signout",
		httpx.Chain(http.HandlerFunc(h.HandleSignOut),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	// POST /users - moderate rate limit by IP
	r.Mux.Handle("POST "+r.apiPrefix+"/users",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// GET /users - lenient rate limit by IP
	r.Mux.Handle("GET "+r.apiPrefix+"/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// GET /users/{id} - requires a valid token, lenient limit by user
	r.Mux.Handle("GET "+r.apiPrefix+"/users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
