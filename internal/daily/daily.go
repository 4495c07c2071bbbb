// Package daily picks the day's solution word.
//
// The pick is a deterministic pseudo-random draw seeded by the UTC
// day-of-year: every server computes the same word for the same day without
// shared state, and the word repeats on the same calendar day each year.
package daily

import (
	"crypto/sha256"
	"errors"
	"io"
	"math/rand/v2"
	"strconv"
	"time"

	"golang.org/x/crypto/hkdf"
)

// ErrNoAnswers is returned when there is nothing to choose from.
var ErrNoAnswers = errors.New("daily: no answer words")

// seedInfo separates this seed from any other HKDF use of the same salt.
const seedInfo = "wordled daily word v1"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Selector chooses an index for a day. Salt changes the sequence without
// changing its determinism; an empty salt is valid.
type Selector struct {
	Salt string
}

// Index returns a deterministic index in [0, n) for the UTC day-of-year of t.
func (s Selector) Index(t time.Time, n int) int {
	if n <= 0 {
		return 0
	}
	rng := rand.New(rand.NewChaCha8(s.seed(t.UTC().YearDay())))
	return rng.IntN(n)
}

// Word returns the answer for the day of t.
func (s Selector) Word(t time.Time, answers []string) (string, error) {
	if len(answers) == 0 {
		return "", ErrNoAnswers
	}
	return answers[s.Index(t, len(answers))], nil
}

// seed expands the day number into a ChaCha8 key with HKDF-SHA256.
func (s Selector) seed(day int) [32]byte {
	var out [32]byte
	kdf := hkdf.New(sha256.New, []byte(strconv.Itoa(day)), []byte(s.Salt), []byte(seedInfo))
	// HKDF-SHA256 can produce up to 8160 bytes; 32 never fails.
	_, _ = io.ReadFull(kdf, out[:])
	return out
}
