// internal/puzzle/puzzle.go
//
// The daily puzzle: today's solution plus guess validation.
// Responsibilities:
//   - Compute today's solution from the word list and the daily selector.
//   - Reject guesses of the wrong length or outside the accepted list.
//   - Hand valid guesses and the solution to game.Evaluate.
//
// Notes:
//   - The solution is recomputed from the clock on each call, so the word
//     rolls over at UTC midnight without a refresh job.

package puzzle

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/robalobadob/wordle/apps/wordled/internal/daily"
	"github.com/robalobadob/wordle/apps/wordled/internal/game"
	"github.com/robalobadob/wordle/apps/wordled/internal/words"
)

// Validation errors. Messages are shown to clients as-is.
var (
	ErrLengthMismatch = errors.New("only 5 letter words are allowed!")
	ErrNotInWordList  = errors.New("not a word!")
)

// Puzzle is safe for concurrent use; it holds only read-only state.
type Puzzle struct {
	words    *words.List
	selector daily.Selector
	now      func() time.Time
}

// Option customizes a Puzzle.
type Option func(*Puzzle)

// WithClock replaces time.Now (tests, replays).
func WithClock(now func() time.Time) Option {
	return func(p *Puzzle) { p.now = now }
}

// New builds a Puzzle over the given word list.
func New(list *words.List, sel daily.Selector, opts ...Option) *Puzzle {
	p := &Puzzle{words: list, selector: sel, now: time.Now}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Today returns the date key of the current puzzle.
func (p *Puzzle) Today() string { return daily.DateKey(p.now()) }

// Solution returns today's word.
func (p *Puzzle) Solution() (string, error) {
	return p.selector.Word(p.now(), p.words.Answers())
}

// Words exposes the underlying list (diagnostics).
func (p *Puzzle) Words() *words.List { return p.words }

// Check validates raw and scores it against today's solution.
func (p *Puzzle) Check(raw string) (*game.GuessFeedback, error) {
	guess, err := p.Validate(raw)
	if err != nil {
		return nil, err
	}
	solution, err := p.Solution()
	if err != nil {
		return nil, err
	}
	return game.Evaluate(guess, solution)
}

// Validate normalizes raw (trim + lowercase) and checks length and
// dictionary membership, in that order.
func (p *Puzzle) Validate(raw string) (string, error) {
	guess := strings.ToLower(strings.TrimSpace(raw))
	if utf8.RuneCountInString(guess) != words.Length {
		return "", ErrLengthMismatch
	}
	if !p.words.IsAllowed(guess) {
		return "", ErrNotInWordList
	}
	return guess, nil
}

// IsValidationError reports whether err is a client mistake rather than a
// server fault.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrLengthMismatch) || errors.Is(err, ErrNotInWordList)
}
