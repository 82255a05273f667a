package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hoopsight/courtside/internal/metrics"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server. The metrics service may be nil,
// which disables the middleware and the /metrics endpoint.
func NewServer(port string, handler *Handler, m *metrics.Service) *Server {
	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)
	if m != nil {
		router.Use(MetricsMiddleware(m))
		router.Handle("/metrics", metrics.NewMetricsHandler()).Methods("GET")
	}

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Players
	api.HandleFunc("/players/career", handler.GetCareerSummary).Methods("GET")

	// Teams
	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")
	api.HandleFunc("/teams/scorers", handler.GetTopScorers).Methods("GET")

	// Matchups
	api.HandleFunc("/matchups", handler.GetMatchup).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
