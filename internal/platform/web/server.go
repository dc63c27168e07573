// Package web serves the leaderboard as read-only JSON over HTTP.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/tui-farm/internal/registry"
	"github.com/vovakirdan/tui-farm/internal/storage"
)

// Leaderboard is the subset of the score store the HTTP API reads.
type Leaderboard interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	RecentSeasons(gameID string, limit int) ([]storage.SeasonRecord, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
	GetAllGamesStats() (map[string]*storage.GameStats, error)
}

const maxLimit = 100

// Handler serves the leaderboard endpoints.
type Handler struct {
	store  Leaderboard
	logger *log.Logger
}

// NewHandler creates a Handler reading from store.
func NewHandler(store Leaderboard, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{store: store, logger: logger}
}

// Routes builds the router:
//
//	GET /api/health
//	GET /api/games
//	GET /api/scores/{game}?limit=N
//	GET /api/seasons/{game}?limit=N
//	GET /api/stats
//	GET /api/stats/{game}
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Get("/games", h.ListGames)
		r.Get("/scores/{game}", h.TopScores)
		r.Get("/seasons/{game}", h.RecentSeasons)
		r.Get("/stats", h.AllStats)
		r.Get("/stats/{game}", h.GameStats)
	})

	return r
}

type gameDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ListGames handles GET /api/games
func (h *Handler) ListGames(w http.ResponseWriter, _ *http.Request) {
	games := registry.List()
	out := make([]gameDTO, 0, len(games))
	for _, g := range games {
		out = append(out, gameDTO{ID: g.ID, Title: g.Title})
	}
	respondJSON(w, http.StatusOK, out)
}

// TopScores handles GET /api/scores/{game}
func (h *Handler) TopScores(w http.ResponseWriter, r *http.Request) {
	gameID, ok := h.gameParam(w, r)
	if !ok {
		return
	}
	scores, err := h.store.TopScores(gameID, parseLimit(r, 10))
	if err != nil {
		h.internalError(w, err)
		return
	}
	if scores == nil {
		scores = []storage.ScoreEntry{}
	}
	respondJSON(w, http.StatusOK, scores)
}

// RecentSeasons handles GET /api/seasons/{game}
func (h *Handler) RecentSeasons(w http.ResponseWriter, r *http.Request) {
	gameID, ok := h.gameParam(w, r)
	if !ok {
		return
	}
	seasons, err := h.store.RecentSeasons(gameID, parseLimit(r, 20))
	if err != nil {
		h.internalError(w, err)
		return
	}
	if seasons == nil {
		seasons = []storage.SeasonRecord{}
	}
	respondJSON(w, http.StatusOK, seasons)
}

// GameStats handles GET /api/stats/{game}
func (h *Handler) GameStats(w http.ResponseWriter, r *http.Request) {
	gameID, ok := h.gameParam(w, r)
	if !ok {
		return
	}
	stats, err := h.store.GetGameStats(gameID)
	if err != nil {
		h.internalError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// AllStats handles GET /api/stats
func (h *Handler) AllStats(w http.ResponseWriter, _ *http.Request) {
	stats, err := h.store.GetAllGamesStats()
	if err != nil {
		h.internalError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *Handler) gameParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	gameID := chi.URLParam(r, "game")
	if !registry.Exists(gameID) {
		respondError(w, http.StatusNotFound, "unknown game "+strconv.Quote(gameID))
		return "", false
	}
	return gameID, true
}

func (h *Handler) internalError(w http.ResponseWriter, err error) {
	h.logger.Error("leaderboard query failed", "error", err)
	respondError(w, http.StatusInternalServerError, "internal error")
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

// parseLimit reads ?limit=N, clamped to [1, maxLimit].
func parseLimit(r *http.Request, defaultVal int) int {
	val := r.URL.Query().Get("limit")
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return min(n, maxLimit)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("cannot encode JSON", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// Server runs the leaderboard API until its context is cancelled.
type Server struct {
	addr    string
	handler http.Handler
	logger  *log.Logger
}

// NewServer creates a leaderboard server on addr.
func NewServer(addr string, store Leaderboard, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		addr:    addr,
		handler: NewHandler(store, logger).Routes(),
		logger:  logger,
	}
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting leaderboard server", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("Leaderboard server stopped")
	return nil
}
