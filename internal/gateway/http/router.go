package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/trippath/innkeeper/internal/gateway/service"
	"github.com/trippath/innkeeper/internal/gateway/store"
	"github.com/trippath/innkeeper/pkg/httpx"
	"github.com/trippath/innkeeper/pkg/slogx"
	"github.com/trippath/innkeeper/pkg/stayapi"

	_ "github.com/trippath/innkeeper/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	Client         *stayapi.Client
	SessionService *service.SessionService

	Cookies        httpx.CookieConfig
	AccessTokenTTL time.Duration
	SessionTTL     time.Duration
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
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
	r.registerCatalogue()
	r.registerCart()
	r.registerBookings()
	r.registerProfile()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Innkeeper Booking Gateway API
//	@version		0.1.0
//	@description	Backend-for-frontend gateway for the Trippath hotel booking platform.
//	@description	Proxies the booking backend and authentication service, keeping tokens
//	@description	server-side and exposing only HTTP-only cookies to the browser.
//
//	@contact.name	Trippath Team
//	@contact.url	https://github.com/trippath/innkeeper
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// session wraps an authenticated handler with the session middleware and a
// per-user rate limit.
func (r *Router) session(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		SessionMiddleware(r.SessionService, r.Cookies),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		Sessions:       r.SessionService,
		Client:         r.Client,
		Cookies:        r.Cookies,
		AccessTokenTTL: r.AccessTokenTTL,
		SessionTTL:     r.SessionTTL,
	}

	// POST /login - strict rate limit by IP + username to slow brute force
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)

	// GET /refresh-token - moderate; a healthy frontend refreshes rarely
	r.Mux.Handle("GET /api/auth/refresh-token",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /api/auth/session", r.session(h.HandleSession, httpx.LenientLimit))

	// Public account flows - strict by IP
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/forgot-password",
		httpx.Chain(http.HandlerFunc(h.HandleForgotPassword),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/reset-password",
		httpx.Chain(http.HandlerFunc(h.HandleResetPassword),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerCatalogue() {
	h := &CatalogueHandler{Client: r.Client, Cookies: r.Cookies}

	// Public browsing - high limit by IP
	r.Mux.Handle("GET /api/hotels",
		httpx.Chain(http.HandlerFunc(h.HandleListHotels), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("GET /api/hotels/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGetHotel), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("GET /api/hotels/{id}/rooms",
		httpx.Chain(http.HandlerFunc(h.HandleListRooms), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("GET /api/rooms/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGetRoom), httpx.RateLimitByIP(httpx.PublicLimit)))
}

func (r *Router) registerCart() {
	h := &CartHandler{Cookies: r.Cookies}

	r.Mux.Handle("GET /api/cart", r.session(h.HandleGetCart, httpx.LenientLimit))
	r.Mux.Handle("POST /api/cart", r.session(h.HandleAddItem, httpx.LenientLimit))
	r.Mux.Handle("DELETE /api/cart/items/{id}", r.session(h.HandleRemoveItem, httpx.LenientLimit))

	// Checkout creates bookings upstream - moderate
	r.Mux.Handle("POST /api/checkout", r.session(h.HandleCheckout, httpx.ModerateLimit))
}

func (r *Router) registerBookings() {
	h := &BookingsHandler{Cookies: r.Cookies}

	r.Mux.Handle("GET /api/bookings", r.session(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /api/bookings/{id}", r.session(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("POST /api/bookings/{id}/receipt", r.session(h.HandleUploadReceipt, httpx.ModerateLimit))
	r.Mux.Handle("GET /api/bookings/{id}/invoice", r.session(h.HandleDownloadInvoice, httpx.ModerateLimit))
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{Cookies: r.Cookies}

	r.Mux.Handle("GET /api/profile", r.session(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /api/profile", r.session(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("PUT /api/profile/password", r.session(h.HandleChangePassword, httpx.StrictLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
