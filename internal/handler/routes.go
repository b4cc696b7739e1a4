package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"realestate/internal/domain"
	"realestate/internal/service"
)

// Deps are the collaborators the router serves
type Deps struct {
	Services  service.Services
	Portfolio *service.Portfolio
	// Store backs /healthz; nil reports healthy
	Store Pinger
	// Events serves /events when set (the SSE hub)
	Events http.Handler
	// Metrics backs /metrics; nil creates a fresh registry
	Metrics     *Metrics
	CORSOrigins []string
}

// NewRouter builds the HTTP API
func NewRouter(d Deps) http.Handler {
	metrics := d.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}
	origins := d.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/healthz", Health(d.Store))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	if d.Events != nil {
		r.Method(http.MethodGet, "/events", d.Events)
	}

	agencies := &resourceHandler[domain.Agency]{
		label: "Agency",
		svc:   d.Services.Agencies,
		id:    func(a *domain.Agency) int64 { return a.ID },
	}
	realtors := &resourceHandler[domain.Realtor]{
		label: "Realtor",
		svc:   d.Services.Realtors,
		id:    func(rec *domain.Realtor) int64 { return rec.ID },
	}
	properties := NewPropertyHandler(d.Services.Properties)

	r.Route("/api", func(r chi.Router) {
		r.Route("/agencies", agencies.Routes)
		r.Route("/realtors", realtors.Routes)
		r.Route("/properties", func(r chi.Router) {
			r.Get("/", properties.List)
			r.Post("/", properties.Create)
			r.Get("/{id}", properties.Get)
			r.Put("/{id}", properties.Update)
			r.Delete("/{id}", properties.Delete)
			r.Get("/{id}/commission", properties.Commission)
		})

		if d.Portfolio != nil {
			catalog := NewCatalogHandler(d.Portfolio)
			r.Get("/export", catalog.Export)
			r.Post("/import", catalog.Import)
		}
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, "Not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	return r
}
