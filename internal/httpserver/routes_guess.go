// internal/httpserver/routes_guess.go
//
// Guess and daily routes.
//   - POST /guess      → compact feedback as text/plain ("10110:no:5")
//   - POST /guess-json → structured feedback as JSON
//   - GET  /stats      → aggregate tally for a date (default today)
//   - GET  /spoil      → today's word (only when enabled)
//
// The guess body is the raw word. A JSON body {"guess":"..."} is accepted too
// when sent with Content-Type: application/json.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordled/internal/game"
	"github.com/robalobadob/wordle/apps/wordled/internal/puzzle"
)

// maxGuessBody bounds the request body; a guess is a handful of bytes.
const maxGuessBody = 1 << 10

var errBadBody = errors.New("bad request body")

// guessReq is the optional JSON request payload.
type guessReq struct {
	Guess string `json:"guess"`
}

// readGuess extracts the raw guess from the body.
func readGuess(w http.ResponseWriter, r *http.Request) (string, error) {
	body := http.MaxBytesReader(w, r.Body, maxGuessBody)
	if ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); ct == "application/json" {
		var req guessReq
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			return "", errBadBody
		}
		return req.Guess, nil
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return "", errBadBody
	}
	return string(b), nil
}

// evaluate reads, validates and scores the guess in r, and records the tally.
// On failure it returns the HTTP status and a client-facing message.
func (s *Server) evaluate(w http.ResponseWriter, r *http.Request) (*game.GuessFeedback, int, string) {
	raw, err := readGuess(w, r)
	if err != nil {
		return nil, http.StatusBadRequest, err.Error()
	}
	fb, err := s.puzzle.Check(raw)
	if err != nil {
		if puzzle.IsValidationError(err) {
			return nil, http.StatusBadRequest, err.Error()
		}
		log.Error().Err(err).Str("reqId", chimw.GetReqID(r.Context())).Msg("evaluate guess")
		return nil, http.StatusInternalServerError, "server error"
	}

	// Best effort; the feedback is already computed.
	if err := s.store.RecordGuess(r.Context(), s.puzzle.Today(), fb.Success); err != nil {
		log.Warn().Err(err).Msg("record guess tally")
	}
	return fb, http.StatusOK, ""
}

// handleGuess answers with the compact text encoding.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	fb, status, msg := s.evaluate(w, r)
	if fb == nil {
		http.Error(w, msg, status)
		return
	}
	enc, err := fb.Compact()
	if err != nil {
		log.Error().Err(err).Msg("compact feedback")
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, enc)
}

// handleGuessJSON answers with the structured encoding.
func (s *Server) handleGuessJSON(w http.ResponseWriter, r *http.Request) {
	fb, status, msg := s.evaluate(w, r)
	if fb == nil {
		writeError(w, status, msg)
		return
	}
	b, err := json.Marshal(fb)
	if err != nil {
		log.Error().Err(err).Msg("marshal feedback")
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	_, _ = w.Write(append(b, '\n'))
}

// handleStats returns the tally for ?date=YYYY-MM-DD (default today).
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = s.puzzle.Today()
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	t, err := s.store.Tally(r.Context(), date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("read tally")
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	_ = json.NewEncoder(w).Encode(t)
}

// handleSpoil returns today's word as plain text.
func (s *Server) handleSpoil(w http.ResponseWriter, r *http.Request) {
	word, err := s.puzzle.Solution()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	log.Info().Str("reqId", chimw.GetReqID(r.Context())).Msg("daily word spoiled")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, word)
}
