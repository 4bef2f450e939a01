package httpapi

import (
	"net/http"

	"unichip/gen/catalog"
	"unichip/gen/cc"
	"unichip/gen/chip"
	"unichip/gen/contact"
	"unichip/gen/health"
	catalogsvr "unichip/gen/http/catalog/server"
	ccsvr "unichip/gen/http/cc/server"
	chipsvr "unichip/gen/http/chip/server"
	contactsvr "unichip/gen/http/contact/server"
	healthsvr "unichip/gen/http/health/server"
	settingssvr "unichip/gen/http/settings/server"
	"unichip/gen/settings"
	"unichip/internal/config"
	"unichip/internal/metrics"
	"unichip/internal/services"
	"unichip/internal/session"

	goahttp "goa.design/goa/v3/http"
	"goa.design/goa/v3/http/middleware"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services are the operations exposed over HTTP
type Services struct {
	Auth      *services.AuthService
	Catalog   *services.CatalogService
	Inquiries *services.InquiryService
	Chips     *services.ChipService
	Settings  *services.SettingsService
	Health    *services.HealthService

	// LoginLimiter throttles login attempts per client address; nil disables it.
	LoginLimiter session.Limiter
}

// Server maps HTTP requests onto the catalog services
type Server struct {
	cfg        *config.Config
	svc        Services
	normalizer *services.Normalizer
	mux        goahttp.Muxer
}

// New creates the HTTP server and mounts every route
func New(cfg *config.Config, svc Services) *Server {
	s := &Server{
		cfg:        cfg,
		svc:        svc,
		normalizer: services.NewNormalizer(svc.Auth),
		mux:        goahttp.NewMuxer(),
	}
	s.mount()
	return s
}

func (s *Server) mount() {
	var (
		strict  = s.formDecoder(strictPolicy)
		lenient = s.formDecoder(lenientPolicy)
		admin   = s.formDecoder(sessionPolicy)
		auth    = sessionAuth{auth: s.svc.Auth}
	)

	// Public
	healthServer := healthsvr.New(health.NewEndpoints(healthEndpoints{s.svc.Health}), s.mux, goahttp.RequestDecoder, jsonEncoder, errorHandler, formatError)
	healthServer.Mount(s.mux)

	catalogServer := catalogsvr.New(catalog.NewEndpoints(catalogEndpoints{s.svc.Catalog}), s.mux, strict, jsonEncoder, errorHandler, formatError)
	catalogServer.Mount(s.mux)

	// Stale contact forms are still accepted so no lead is lost.
	contactServer := contactsvr.New(contact.NewEndpoints(contactEndpoints{s.svc.Inquiries}), s.mux, lenient, jsonEncoder, errorHandler, formatError)
	contactServer.Mount(s.mux)

	s.mux.Handle(http.MethodGet, "/csrf-token", s.handleCSRFToken)

	// Session
	s.mux.Handle(http.MethodGet, "/admin/login", s.handleLoginPage)
	s.mux.Handle(http.MethodPost, "/admin/login", s.handleLogin)
	s.mux.Handle(http.MethodGet, "/admin/logout", s.handleLogout)
	s.mux.Handle(http.MethodGet, "/admin", s.handleDashboard)

	// Admin
	chipServer := chipsvr.New(chip.NewEndpoints(&chipEndpoints{auth, s.svc.Chips}), s.mux, admin, jsonEncoder, errorHandler, formatError)
	chipServer.Use(s.requireSession)
	chipServer.Mount(s.mux)

	settingsServer := settingssvr.New(settings.NewEndpoints(&settingsEndpoints{auth, s.svc.Settings}), s.mux, admin, jsonEncoder, errorHandler, formatError)
	settingsServer.Use(s.requireSession)
	settingsServer.Mount(s.mux)

	ccServer := ccsvr.New(cc.NewEndpoints(&ccEndpoints{auth, s.svc.Settings}), s.mux, admin, jsonEncoder, errorHandler, formatError)
	ccServer.Use(s.requireSession)
	ccServer.Mount(s.mux)
}

// Handler returns the routes wrapped in the full middleware chain:
// security headers, CORS, access log, Prometheus, request id.
func (s *Server) Handler() http.Handler {
	var routes http.Handler = s.mux
	routes = limitBody(routes)
	routes = middleware.PopulateRequestContext()(routes)
	routes = middleware.RequestID()(routes)

	// /metrics is served beside the goa mux
	root := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			promhttp.Handler().ServeHTTP(w, r)
			return
		}
		routes.ServeHTTP(w, r)
	})

	return securityHeaders(cors(requestLogging(metrics.PrometheusMiddleware(root)), s.cfg), s.cfg)
}
