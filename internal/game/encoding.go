// internal/game/encoding.go
//
// Wire encodings for GuessFeedback.
//   - Compact: one digit per letter (0=Invalid, 1=WrongPos, 2=Good), then
//     ":ye" or ":no", then ":<remaining attempts>". e.g. "22202:no:5".
//   - JSON: letter + spelled-out status per position, plus success and
//     remaining_attempts.

package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrBadCompact is returned by ParseCompact for malformed input.
var ErrBadCompact = errors.New("game: malformed compact feedback")

const (
	compactYes = "ye"
	compactNo  = "no"
)

// Compact renders the feedback in the terse colon-delimited form.
// It fails only if a letter is still Unchecked.
func (f *GuessFeedback) Compact() (string, error) {
	var b strings.Builder
	b.Grow(len(f.Letters) + 6)
	for i, l := range f.Letters {
		switch l.Status {
		case Invalid, WrongPos, Good:
			b.WriteByte(byte('0' + l.Status))
		default:
			return "", fmt.Errorf("letter %d: %w", i, ErrUncheckedStatus)
		}
	}
	if f.Success {
		b.WriteString(":" + compactYes)
	} else {
		b.WriteString(":" + compactNo)
	}
	b.WriteString(":" + strconv.Itoa(f.RemainingAttempts))
	return b.String(), nil
}

// CompactFeedback is the decoded form of a compact string. It carries no
// letters, only what the encoding transports.
type CompactFeedback struct {
	Statuses          []LetterStatus
	Success           bool
	RemainingAttempts int
}

// ParseCompact decodes a string produced by Compact.
func ParseCompact(s string) (*CompactFeedback, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 || parts[0] == "" {
		return nil, fmt.Errorf("%w: %q", ErrBadCompact, s)
	}

	out := &CompactFeedback{Statuses: make([]LetterStatus, 0, len(parts[0]))}
	for _, d := range parts[0] {
		if d < '0' || d > '2' {
			return nil, fmt.Errorf("%w: status digit %q", ErrBadCompact, d)
		}
		out.Statuses = append(out.Statuses, LetterStatus(d-'0'))
	}

	switch parts[1] {
	case compactYes:
		out.Success = true
	case compactNo:
	default:
		return nil, fmt.Errorf("%w: success flag %q", ErrBadCompact, parts[1])
	}

	n, err := strconv.Atoi(parts[2])
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: remaining attempts %q", ErrBadCompact, parts[2])
	}
	out.RemainingAttempts = n
	return out, nil
}

// MarshalJSON writes the letter as a one-character string.
func (l LetterFeedback) MarshalJSON() ([]byte, error) {
	return json.Marshal(letterJSON{Letter: string(l.Letter), Status: l.Status})
}

// UnmarshalJSON reads the shape written by MarshalJSON.
func (l *LetterFeedback) UnmarshalJSON(b []byte) error {
	var v letterJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	r, size := utf8.DecodeRuneInString(v.Letter)
	if size == 0 || size != len(v.Letter) || r == utf8.RuneError {
		return fmt.Errorf("game: letter must be a single character, got %q", v.Letter)
	}
	l.Letter, l.Status = r, v.Status
	return nil
}
