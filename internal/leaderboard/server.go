// Package leaderboard serves the score store over a small JSON HTTP API.
//
//	GET  /api/scores?game=<id>&limit=<n>  top scores, best first
//	POST /api/scores                      {"name", "score", "game"}
//	GET  /healthz                         liveness
package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cubesnake/internal/storage"
)

const (
	maxLimit     = 100
	maxBodyBytes = 4 << 10
)

// Store is the subset of storage.Store the API needs.
type Store interface {
	SaveScore(gameID, player string, score int) (int64, error)
	Score(id int64) (storage.ScoreEntry, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
}

// Entry is the JSON form of one leaderboard row.
type Entry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	Game      string    `json:"game"`
	CreatedAt time.Time `json:"created_at"`
}

// Submission is the body of POST /api/scores.
type Submission struct {
	Name  string `json:"name"`
	Score *int   `json:"score"`
	Game  string `json:"game"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Config holds configuration for the HTTP server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// DefaultGame is used when a request names no game.
	DefaultGame string

	// KnownGame reports whether a game ID may be read or written.
	// Nil accepts every ID.
	KnownGame func(id string) bool

	// Logger receives request logs. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:     ":8080",
		DefaultGame: "cubesnake",
	}
}

// Server is the leaderboard HTTP API.
type Server struct {
	config Config
	store  Store
	logger *log.Logger
	server *http.Server
}

// NewServer creates a server over store.
func NewServer(store Store, cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "cubesnake-api",
		})
	}

	s := &Server{
		config: cfg,
		store:  store,
		logger: logger,
	}
	s.server = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the API routes wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/scores", s.handleList)
	mux.HandleFunc("POST /api/scores", s.handleSubmit)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.loggingMiddleware(mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	game := q.Get("game")
	if game == "" {
		game = s.config.DefaultGame
	}
	if !s.known(game) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown game %q", game))
		return
	}

	limit := storage.DefaultLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxLimit)
	}

	entries, err := s.store.TopScores(game, limit)
	if err != nil {
		s.logger.Error("list scores", "game", game, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntry(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var sub Submission
	if err := dec.Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	if dec.More() {
		writeError(w, http.StatusBadRequest, "invalid body: trailing data")
		return
	}

	if sub.Score == nil {
		writeError(w, http.StatusBadRequest, "score is required")
		return
	}
	if *sub.Score < 0 {
		writeError(w, http.StatusBadRequest, "score must not be negative")
		return
	}
	if sub.Game == "" {
		sub.Game = s.config.DefaultGame
	}
	if !s.known(sub.Game) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown game %q", sub.Game))
		return
	}

	id, err := s.store.SaveScore(sub.Game, sub.Name, *sub.Score)
	if errors.Is(err, storage.ErrInvalidScore) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		s.logger.Error("save score", "game", sub.Game, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	entry, err := s.store.Score(id)
	if err != nil {
		s.logger.Error("read saved score", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Info("score submitted", "game", entry.GameID, "name", entry.Player, "score", entry.Score)
	writeJSON(w, http.StatusCreated, toEntry(entry))
}

func (s *Server) known(game string) bool {
	return s.config.KnownGame == nil || s.config.KnownGame(game)
}

func toEntry(e storage.ScoreEntry) Entry {
	return Entry{
		ID:        e.ID,
		Name:      e.Player,
		Score:     e.Score,
		Game:      e.GameID,
		CreatedAt: e.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // The client may have gone away
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware logs each request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// ListenAndServe starts the HTTP server and blocks until SIGINT/SIGTERM or
// ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting leaderboard API", "address", s.config.Address)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("leaderboard: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}
