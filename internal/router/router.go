package router

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"quickbite/internal/handler"
	"quickbite/internal/middleware"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	menuHandler *handler.MenuHandler,
	couponHandler *handler.CouponHandler,
	orderHandler *handler.OrderHandler,
	adminAPIKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	adminOnly := middleware.AdminAuth(adminAPIKey, logger)

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Menu browsing (public, read-only)
	menuRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/menu" && r.URL.Path != "/api/menu/" {
			menuHandler.GetByID(w, r)
			return
		}
		menuHandler.GetAll(w, r)
	}
	mux.HandleFunc("/api/menu", menuRouteHandler)
	mux.HandleFunc("/api/menu/", menuRouteHandler)

	// Coupon discount preview (public)
	mux.HandleFunc("/api/coupons/validate", couponHandler.Validate)

	// Coupon administration (admin API key required)
	mux.Handle("/api/admin/coupons", adminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			couponHandler.Create(w, r)
			return
		}
		couponHandler.List(w, r)
	})))
	mux.Handle("/api/admin/coupons/", adminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/active") {
			couponHandler.SetActive(w, r)
			return
		}
		http.Error(w, "not found", http.StatusNotFound)
	})))

	// Orders: creation and listing require caller identity; status updates
	// require the admin key.
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && (r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/"):
			orderHandler.Create(w, r)
		case r.Method == http.MethodGet && (r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/"):
			orderHandler.List(w, r)
		case strings.HasSuffix(r.URL.Path, "/status"):
			adminOnly(http.HandlerFunc(orderHandler.UpdateStatus)).ServeHTTP(w, r)
		case strings.HasPrefix(r.URL.Path, "/api/orders/") && r.URL.Path != "/api/orders/":
			orderHandler.GetByID(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS -> Identity
	var h http.Handler = mux
	h = middleware.Identity(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
