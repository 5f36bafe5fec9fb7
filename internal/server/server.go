package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/astralis/astro-server/internal/database"
	"github.com/astralis/astro-server/internal/modules/charts"
	"github.com/astralis/astro-server/internal/modules/numerology"
	"github.com/astralis/astro-server/internal/modules/synastry"
	"github.com/astralis/astro-server/internal/modules/usage"
)

// Config holds server configuration
type Config struct {
	Port    int
	Log     zerolog.Logger
	DB      *database.DB
	DevMode bool

	ChartHandler      *charts.Handler
	ChartRepo         *charts.Repository
	SynastryHandler   *synastry.Handler
	NumerologyHandler *numerology.Handler
	UsageHandler      *usage.Handler
}

// Server represents the HTTP server
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
	db     *database.DB

	chartHandler      *charts.Handler
	chartRepo         *charts.Repository
	synastryHandler   *synastry.Handler
	numerologyHandler *numerology.Handler
	usageHandler      *usage.Handler

	startedAt time.Time
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:            chi.NewRouter(),
		log:               cfg.Log.With().Str("component", "server").Logger(),
		db:                cfg.DB,
		chartHandler:      cfg.ChartHandler,
		chartRepo:         cfg.ChartRepo,
		synastryHandler:   cfg.SynastryHandler,
		numerologyHandler: cfg.NumerologyHandler,
		usageHandler:      cfg.UsageHandler,
		startedAt:         time.Now(),
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	// Health check
	s.router.Get("/health", s.handleHealth)

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.handleSystemStatus)
		})

		r.Route("/charts", func(r chi.Router) {
			r.Post("/", s.chartHandler.HandleCreateChart)
			r.Get("/", s.chartHandler.HandleListCharts)
			r.Get("/{id}", s.chartHandler.HandleGetChart)
			r.Delete("/{id}", s.chartHandler.HandleDeleteChart)
		})

		r.Route("/compatibility", func(r chi.Router) {
			r.Post("/", s.synastryHandler.HandleCalculate)
		})

		r.Route("/numerology", func(r chi.Router) {
			r.Post("/", s.numerologyHandler.HandleCalculate)
		})

		r.Route("/usage", func(r chi.Router) {
			r.Get("/{userID}", s.usageHandler.HandleGetUsage)
			r.Post("/{userID}/increment", s.usageHandler.HandleIncrement)
		})
	})
}

// loggingMiddleware logs each request with timing
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
