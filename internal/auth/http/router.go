package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/defensedrill/auth/internal/auth/domain"
	"github.com/defensedrill/auth/internal/auth/service"
	"github.com/defensedrill/auth/internal/auth/store"
	"github.com/defensedrill/auth/pkg/httpx"
	"github.com/defensedrill/auth/pkg/jwtx"
	"github.com/defensedrill/auth/pkg/slogx"

	_ "github.com/defensedrill/auth/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	buildVersion string
	startTime    time.Time
	production   bool
	logger       *slog.Logger

	store       store.Store
	AuthService *service.AuthService
	UserService *service.UserService
}

func NewRouter(
	keys *jwtx.KeySet,
	buildVersion string,
	production bool,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		production:   production,
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
	// The session filter runs once per request for every route. It only
	// attaches identity; authorization happens per route group below.
	r.middlewares = append(r.middlewares, httpx.SessionMiddleware(r.AuthService))

	r.registerAuthenticate()
	r.registerLogin()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			DefenseDrill Security Service API
//	@version		0.1.0
//	@description	Authentication and user directory service issuing RS256-signed session tokens.
//	@description
//	@description				Tokens can be verified offline using the JWKS endpoint.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuthenticate() {
	h := &AuthenticateHandler{AuthService: r.AuthService}

	// Credential endpoints are the brute-force surface, so they get the
	// strict limit.
	r.Mux.Handle("POST /authenticate",
		httpx.Chain(http.HandlerFunc(h.Handle),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /authenticate/{role}",
		httpx.Chain(http.HandlerFunc(h.HandleForRole),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /.well-known/jwks.json - public endpoint with high limit
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerLogin() {
	h := &LoginHandler{AuthService: r.AuthService, Production: r.production}

	r.Mux.Handle("POST /login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)
	r.Mux.Handle("GET /logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	// Directory management is admin-only.
	admin := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /user", admin(h.HandleCreate))
	r.Mux.Handle("GET /user", admin(h.HandleList))
	r.Mux.Handle("GET /user/id/{id}", admin(h.HandleGet))
	r.Mux.Handle("PUT /user/id/{id}", admin(h.HandleUpdate))
	r.Mux.Handle("DELETE /user/id/{id}", admin(h.HandleDelete))
	r.Mux.Handle("GET /user/role/{role}", admin(h.HandleListByRole))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
