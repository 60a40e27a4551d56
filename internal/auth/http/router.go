package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/nativoenglish/lingo/internal/auth/domain"
	"github.com/nativoenglish/lingo/internal/auth/service"
	"github.com/nativoenglish/lingo/internal/auth/store"
	"github.com/nativoenglish/lingo/pkg/httpx"
	"github.com/nativoenglish/lingo/pkg/jwtx"
	"github.com/nativoenglish/lingo/pkg/slogx"

	_ "github.com/nativoenglish/lingo/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	TokenService     *service.TokenService
	AuthService      *service.AuthService
	UserService      *service.UserService
	PasswordService  *service.PasswordService
	TwoFactorService *service.TwoFactorService
}

func NewRouter(
	keys *jwtx.KeySet,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerOTP()
	r.registerAccount()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Nativo English Auth API
//	@version		0.1.0
//	@description	Authentication service for the Nativo English learning platform:
//	@description	JWT login with optional email OTP second factor, refresh token
//	@description	rotation and role-based admin user management.
//
//	@contact.name				Nativo English
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
//	@description				JWT token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// Credential endpoints carry strict per-IP limits against brute force.
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(&RegisterHandler{UserService: r.UserService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(&LoginHandler{AuthService: r.AuthService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/refresh",
		httpx.Chain(&RefreshHandler{AuthService: r.AuthService},
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(&LogoutHandler{AuthService: r.AuthService},
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/forgot-password",
		httpx.Chain(&ForgotPasswordHandler{PasswordService: r.PasswordService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/update-password",
		httpx.Chain(&UpdatePasswordHandler{PasswordService: r.PasswordService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerOTP() {
	// The only two endpoints that accept the temporary challenge token.
	// Strict limits keep OTP guessing infeasible.
	r.Mux.Handle("POST /v1/auth/verify-otp",
		httpx.Chain(&VerifyOtpHandler{AuthService: r.AuthService},
			httpx.AuthnMiddleware(r.TokenService, jwtx.KindChallenge),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/resend-otp",
		httpx.Chain(&ResendOtpHandler{AuthService: r.AuthService},
			httpx.AuthnMiddleware(r.TokenService, jwtx.KindChallenge),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAccount() {
	r.Mux.Handle("PATCH /v1/auth/2fa",
		httpx.Chain(&TwoFactorHandler{TwoFactorService: r.TwoFactorService},
			httpx.AuthnMiddleware(r.TokenService, jwtx.KindAccess),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/auth/me",
		httpx.Chain(&MeHandler{UserService: r.UserService, TwoFactorService: r.TwoFactorService},
			httpx.AuthnMiddleware(r.TokenService, jwtx.KindAccess),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	h := &AdminUsersHandler{UserService: r.UserService}

	secured := func(hf http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(hf,
			httpx.AuthnMiddleware(r.TokenService, jwtx.KindAccess),
			httpx.RequireRole(domain.RoleAdmin.String()),
			httpx.RateLimitByUser(limit),
		)
	}

	r.Mux.Handle("GET /v1/admin/users", secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/admin/users", secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/admin/users/{id}", secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/admin/users/{id}", secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/admin/users/{id}/role", secured(h.HandleUpdateRole, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/admin/users/{id}/activate", secured(h.HandleActivate, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/admin/users/{id}/suspend", secured(h.HandleSuspend, httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
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
