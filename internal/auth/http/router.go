package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/permitd/permitd/internal/auth/domain"
	"github.com/permitd/permitd/internal/auth/service"
	"github.com/permitd/permitd/internal/auth/store"
	"github.com/permitd/permitd/pkg/httpx"
	"github.com/permitd/permitd/pkg/jwtx"
	"github.com/permitd/permitd/pkg/slogx"

	_ "github.com/permitd/permitd/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	AccountService *service.AccountService
	RolesService   *service.RolesService
	ProductService *service.ProductService
	AuthzService   *service.AuthzService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	return &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}
}

func (r *Router) ApplyRoutes() {
	// The Authorizer sits in the global chain so every route, present or
	// future, is intercepted. Excluded prefixes pass straight through.
	authorizer := &Authorizer{Verifier: r.verifier, Authz: r.AuthzService}
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		authorizer.Middleware(),
	}

	r.registerAccount()
	r.registerRolesManagement()
	r.registerProducts()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			permitd API
//	@version		0.1.0
//	@description	Dynamic role-based API authorization service. Sign in to obtain an HS256 JWT,
//	@description	then every request is checked against a runtime-editable (role, endpoint, method)
//	@description	permission table. Admin and SuperAdmin bypass the table.
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

func (r *Router) registerAccount() {
	h := &AccountHandler{AccountService: r.AccountService}

	// Credential endpoints get the strict limit to slow brute forcing.
	r.Mux.Handle("POST /api/account/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignUp),
			RecoverEnvelope(),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/account/signin",
		httpx.Chain(http.HandlerFunc(h.HandleSignIn),
			RecoverEnvelope(),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerRolesManagement() {
	h := &RolesManagementHandler{RolesService: r.RolesService}

	// The dynamic engine already ran in the global chain; this static
	// gate additionally restricts the surface to administrators even if
	// someone grants a permission row for these paths.
	admin := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			RequireAnyRole(domain.RoleAdmin, domain.RoleSuperAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /api/rolesmanagement/create", admin(http.HandlerFunc(h.HandleCreateRole)))
	r.Mux.Handle("POST /api/rolesmanagement/assign", admin(http.HandlerFunc(h.HandleAssignRole)))
	r.Mux.Handle("GET /api/rolesmanagement/getallroles", admin(http.HandlerFunc(h.HandleListRoles)))
	r.Mux.Handle("POST /api/rolesmanagement/permissions", admin(http.HandlerFunc(h.HandleAddPermission)))
	r.Mux.Handle("GET /api/rolesmanagement/permissions/{roleName}", admin(http.HandlerFunc(h.HandleListPermissions)))
	r.Mux.Handle("DELETE /api/rolesmanagement/permissions/{id}", admin(http.HandlerFunc(h.HandleDeletePermission)))
	r.Mux.Handle("GET /api/rolesmanagement/user/{email}", admin(http.HandlerFunc(h.HandleUserRoles)))
	r.Mux.Handle("DELETE /api/rolesmanagement/user/{email}/role/{roleName}", admin(http.HandlerFunc(h.HandleRemoveRole)))
}

func (r *Router) registerProducts() {
	h := &ProductHandler{ProductService: r.ProductService}

	protected := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			RecoverEnvelope(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("POST /api/product/addproduct", protected(http.HandlerFunc(h.HandleAdd)))
	r.Mux.Handle("GET /api/product/getproductby/{id}", protected(http.HandlerFunc(h.HandleGetByID)))
	r.Mux.Handle("GET /api/product/getproducts", protected(http.HandlerFunc(h.HandleList)))
}

func (r *Router) registerSystem() {
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
