// internal/httpserver/server.go
//
// HTTP server wiring for the daily word-guess backend.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, access log, panic recovery, timeouts, CORS).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Guess endpoints: POST /guess (compact text), POST /guess-json (structured).
//   - Daily endpoints: GET /stats, GET /spoil (only when enabled).
//
// Notes:
//   - Guess routes are rate limited per peer IP; forwarding headers only affect logs.
//   - Tallies are recorded best effort; a store failure never fails a guess.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/robalobadob/wordle/apps/wordled/internal/puzzle"
	"github.com/robalobadob/wordle/apps/wordled/internal/store"
)

// Config holds the HTTP-facing knobs.
type Config struct {
	ClientOrigin   string        // CORS origin; defaults to http://localhost:5173
	EnableSpoiler  bool          // expose GET /spoil
	RequestTimeout time.Duration // per-request handler bound; defaults to 10s
	RateLimit      rate.Limit    // guesses per second per client; <= 0 disables
	RateBurst      int           // burst size for RateLimit
}

// Server bundles router, puzzle, and tally store.
type Server struct {
	r       *chi.Mux
	puzzle  *puzzle.Puzzle
	store   store.Store
	limiter *ipLimiter
	cfg     Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(p *puzzle.Puzzle, st store.Store, cfg Config) *Server {
	if cfg.ClientOrigin == "" {
		cfg.ClientOrigin = "http://localhost:5173"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	s := &Server{r: chi.NewRouter(), puzzle: p, store: st, cfg: cfg}

	// --- middleware ---
	s.r.Use(requestID)                         // X-Request-Id (uuid unless supplied)
	s.r.Use(peerAddr)                          // keep the socket peer for rate limiting
	s.r.Use(chimw.RealIP)                      // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                         // one zerolog line per request
	s.r.Use(chimw.Recoverer)                   // recover from panics
	s.r.Use(chimw.Timeout(cfg.RequestTimeout)) // bound handler time
	s.r.Use(jsonContentType)                   // default JSON responses
	s.r.Use(cors(cfg.ClientOrigin))            // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"service": "wordled", "endpoints": s.endpoints()})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.puzzle.Words().Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g})
	})

	// Guess endpoints — rate limited per client
	s.limiter = newIPLimiter(cfg.RateLimit, cfg.RateBurst)
	s.r.Group(func(r chi.Router) {
		r.Use(s.limiter.middleware)
		r.Post("/guess", s.handleGuess)
		r.Post("/guess-json", s.handleGuessJSON)
	})

	// Daily
	s.r.Get("/stats", s.handleStats)
	if cfg.EnableSpoiler {
		s.r.Get("/spoil", s.handleSpoil)
	}

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// endpoints lists the registered routes as "METHOD /path".
func (s *Server) endpoints() []string {
	var out []string
	_ = chi.Walk(s.r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		out = append(out, method+" "+route)
		return nil
	})
	sort.Strings(out)
	return out
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return hs.Shutdown(shutdownCtx)
	}
}

// writeError writes {"error": msg} with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
