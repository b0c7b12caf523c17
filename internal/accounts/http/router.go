package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/contabr/accounts/internal/accounts/service"
	"github.com/contabr/accounts/internal/accounts/store"
	"github.com/contabr/accounts/pkg/httpx"
	"github.com/contabr/accounts/pkg/jwtx"
	"github.com/contabr/accounts/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	UserService *service.UserService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
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
	r.registerUsers()
	r.registerMe()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	list := &UsersListHandler{UserService: r.UserService}
	create := &UsersCreateHandler{UserService: r.UserService}
	show := &UsersShowHandler{UserService: r.UserService}
	update := &UsersUpdateHandler{UserService: r.UserService}
	del := &UsersDeleteHandler{UserService: r.UserService}

	// Reads get the lenient profile; mutations the moderate one.
	r.Mux.Handle("GET /user",
		httpx.Chain(list, httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("POST /user",
		httpx.Chain(create, httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("GET /user/{id}",
		httpx.Chain(show, httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("PUT /user/{id}",
		httpx.Chain(update, httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("DELETE /user/{id}",
		httpx.Chain(del, httpx.RateLimitByIP(httpx.ModerateLimit)))
}

func (r *Router) registerMe() {
	h := &MeHandler{UserService: r.UserService}

	// Authenticated endpoint - bearer token from POST /user
	secured := httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.Mux.Handle("GET /me", secured)
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
