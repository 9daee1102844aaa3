// Package server wires the HTTP handlers into a net/http server.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/NickyVHDP/pokertracker/internal/config"
	"github.com/NickyVHDP/pokertracker/internal/handler"
	"github.com/NickyVHDP/pokertracker/internal/service"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Server is the HTTP server for the tracker API.
type Server struct {
	httpServer *http.Server
	health     HealthChecker
}

// Dependencies holds everything the HTTP layer needs.
type Dependencies struct {
	Config          *config.Config
	SessionService  *service.SessionService
	BankrollService *service.BankrollService
	StatsService    *service.StatsService

	// Health is optional; when nil the readiness check only verifies
	// the process is serving.
	Health HealthChecker
}

// New creates a Server with all routes registered.
func New(deps *Dependencies) *Server {
	s := &Server{health: deps.Health}

	sessions := handler.NewSessionHandler(deps.SessionService)
	bankroll := handler.NewBankrollHandler(deps.BankrollService)
	stats := handler.NewStatsHandler(deps.StatsService)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/sessions", sessions.List)
	mux.HandleFunc("GET /api/sessions/search", sessions.Search)
	mux.HandleFunc("GET /api/sessions/{id}", sessions.Get)
	mux.HandleFunc("POST /api/sessions", sessions.Create)
	mux.HandleFunc("PUT /api/sessions/{id}", sessions.Update)
	mux.HandleFunc("DELETE /api/sessions/{id}", sessions.Delete)

	mux.HandleFunc("GET /api/bankroll/transactions", bankroll.ListTransactions)
	mux.HandleFunc("POST /api/bankroll/transactions", bankroll.CreateTransaction)

	mux.HandleFunc("GET /api/settings/{key}", bankroll.GetSetting)
	mux.HandleFunc("PUT /api/settings/{key}", bankroll.SetSetting)

	mux.HandleFunc("GET /api/stats", stats.Get)

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	s.httpServer = &http.Server{
		Addr:         deps.Config.Server.Addr(),
		Handler:      Recover(RequestLogger(mux)),
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the composed handler chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins serving and blocks until the listener fails or the
// server is shut down.
func (s *Server) Start() error {
	log.Info().Str("addr", s.httpServer.Addr).Msg("HTTP server starting")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("HTTP server shutting down")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if s.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if err := s.health.HealthCheck(ctx); err != nil {
			log.Warn().Err(err).Msg("Readiness check failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "not_ready"})
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
}
