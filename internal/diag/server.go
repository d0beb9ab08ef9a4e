// Package diag exposes a small HTTP surface for poking at a running
// game: health, live world state, level summaries and Prometheus
// metrics.
package diag

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sysdrill"
	"sysdrill/internal/graph"
	"sysdrill/internal/logging"
)

// Server serves the diagnostics API for one game session.
type Server struct {
	game    *sysdrill.Game
	metrics *Metrics
	logger  *slog.Logger
}

// NewServer wires the diagnostics API to a game. A nil metrics set
// disables the /metrics endpoint; a nil logger discards logs.
func NewServer(game *sysdrill.Game, metrics *Metrics, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Server{
		game:    game,
		metrics: metrics,
		logger:  logger,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", s.getHealth)
	r.Get("/info", s.getInfo)
	r.Get("/state", s.getState)
	r.Get("/levels", s.getLevels)
	r.Get("/graph", s.getGraph)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))
	}
	return r
}

// Run serves the diagnostics API until ctx is cancelled. Outstanding
// requests get a short deadline to complete.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("diagnostics server listening", "addr", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("graceful shutdown did not complete", "err", err)
			return srv.Close()
		}
		s.logger.Info("diagnostics server stopped")
		return nil
	}
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) getInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"app":     "sysdrill",
		"version": sysdrill.Version,
	})
}

func (s *Server) getState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.game.Snapshot())
}

type levelSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Steps   int    `json:"steps"`
	TotalXP int    `json:"total_xp"`
}

func (s *Server) getLevels(w http.ResponseWriter, r *http.Request) {
	catalog := s.game.Catalog()
	summaries := make([]levelSummary, 0, catalog.Len())
	for i := range catalog.Levels {
		lvl := &catalog.Levels[i]
		summaries = append(summaries, levelSummary{
			ID:      lvl.ID,
			Title:   lvl.Title,
			Steps:   len(lvl.Steps),
			TotalXP: lvl.TotalXP(),
		})
	}
	s.writeJSON(w, summaries)
}

// getGraph renders the campaign as a Mermaid flowchart with the
// session's progress overlaid.
func (s *Server) getGraph(w http.ResponseWriter, r *http.Request) {
	catalog := s.game.Catalog()
	snap := s.game.Snapshot()

	overlay := &graph.Overlay{}
	completed := catalog.Len()
	if !snap.Complete {
		completed = snap.LevelNumber - 1
		overlay.CurrentLevel = snap.LevelID
	}
	for i := 0; i < completed; i++ {
		overlay.CompletedLevels = append(overlay.CompletedLevels, catalog.Levels[i].ID)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, graph.Campaign(catalog, overlay)); err != nil {
		s.logger.Error("diag response write failed", "err", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("diag response encode failed", "err", err)
	}
}
