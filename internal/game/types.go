// internal/game/types.go
//
// Core type definitions for guess evaluation.
// Defines:
//   - LetterStatus: per-letter result of a guess (good/wrong position/invalid).
//   - LetterFeedback: one letter of a guess and its status.
//   - GuessFeedback: the full scored guess returned to clients.

package game

import (
	"errors"
	"fmt"
)

// LetterStatus represents the evaluation result for a single letter in a guess.
// The numeric values of Invalid, WrongPos and Good are the digits used by the
// compact encoding. Unchecked only exists while a guess is being scored.
type LetterStatus int

const (
	Unchecked LetterStatus = iota - 1
	// Invalid: letter absent, or all of its occurrences already used.
	Invalid
	// WrongPos: letter present at another position.
	WrongPos
	// Good: letter correct and in the correct position.
	Good
)

// DefaultRemainingAttempts is reported with every feedback. It is a fixed
// value; no attempt counting happens server-side.
const DefaultRemainingAttempts = 5

// ErrUncheckedStatus is returned when an Unchecked status would be serialized.
var ErrUncheckedStatus = errors.New("game: unchecked letter status")

var statusNames = map[LetterStatus]string{
	Unchecked: "Unchecked",
	Invalid:   "Invalid",
	WrongPos:  "WrongPos",
	Good:      "Good",
}

// String returns the spelled-out status name.
func (s LetterStatus) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("LetterStatus(%d)", int(s))
}

// MarshalText spells statuses out for structured (JSON) responses.
func (s LetterStatus) MarshalText() ([]byte, error) {
	switch s {
	case Invalid, WrongPos, Good:
		return []byte(statusNames[s]), nil
	case Unchecked:
		return nil, ErrUncheckedStatus
	}
	return nil, fmt.Errorf("game: unknown letter status %d", int(s))
}

// UnmarshalText accepts the names produced by MarshalText.
func (s *LetterStatus) UnmarshalText(b []byte) error {
	for st, name := range statusNames {
		if st != Unchecked && name == string(b) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("game: unknown letter status %q", string(b))
}

// LetterFeedback pairs a guessed letter with its status.
type LetterFeedback struct {
	Letter rune         `json:"-"`
	Status LetterStatus `json:"status"`
}

// letterJSON is the wire shape of LetterFeedback; the letter travels as a
// one-character string.
type letterJSON struct {
	Letter string       `json:"letter"`
	Status LetterStatus `json:"status"`
}

// GuessFeedback is the scored result of a single guess.
type GuessFeedback struct {
	Letters           []LetterFeedback `json:"letters"`
	Success           bool             `json:"success"`
	RemainingAttempts int              `json:"remaining_attempts"`
}

// Statuses returns the per-letter statuses in guess order.
func (f *GuessFeedback) Statuses() []LetterStatus {
	out := make([]LetterStatus, len(f.Letters))
	for i, l := range f.Letters {
		out[i] = l.Status
	}
	return out
}

// Word returns the guessed word the feedback was built from.
func (f *GuessFeedback) Word() string {
	rs := make([]rune, len(f.Letters))
	for i, l := range f.Letters {
		rs[i] = l.Letter
	}
	return string(rs)
}
