// internal/game/engine.go
//
// Guess evaluation against a solution word.
// Responsibilities:
//   - Score a guess letter by letter (Good / WrongPos / Invalid).
//   - Limit WrongPos marks to the occurrences of a letter still unmatched in
//     the solution, so repeated letters are never over-reported.
//
// Notes:
//   - Evaluate is pure: no shared state, safe for concurrent use.
//   - Letters are compared as exact runes; callers normalize case.
package game

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrMismatchedLengths is returned when guess and solution differ in length.
var ErrMismatchedLengths = errors.New("game: guess and solution lengths differ")

// Evaluate scores guess against solution.
//
// Pass 1 marks exact matches Good. Pass 2 walks the unmatched solution letters
// left to right and, for each one, marks the first still-unchecked guess
// position holding the same letter as WrongPos. Whatever is left is Invalid.
func Evaluate(guess, solution string) (*GuessFeedback, error) {
	if utf8.RuneCountInString(guess) != utf8.RuneCountInString(solution) {
		return nil, fmt.Errorf("%w: %q vs %d letters", ErrMismatchedLengths, guess, utf8.RuneCountInString(solution))
	}
	g := []rune(guess)
	s := []rune(solution)

	fb := &GuessFeedback{
		Letters:           make([]LetterFeedback, len(g)),
		RemainingAttempts: DefaultRemainingAttempts,
	}
	for i, c := range g {
		fb.Letters[i] = LetterFeedback{Letter: c, Status: Unchecked}
	}

	// Pass 1: exact matches.
	good := 0
	for i := range s {
		if s[i] == g[i] {
			fb.Letters[i].Status = Good
			good++
		}
	}

	// Pass 2: each unmatched solution letter credits at most one guess letter.
	for i, c := range s {
		if fb.Letters[i].Status == Good {
			continue
		}
		for j := range fb.Letters {
			l := &fb.Letters[j]
			if l.Letter == c && l.Status == Unchecked {
				l.Status = WrongPos
				break
			}
		}
	}

	// Pass 3: anything untouched is not in the solution (or already used up).
	for j := range fb.Letters {
		if fb.Letters[j].Status == Unchecked {
			fb.Letters[j].Status = Invalid
		}
	}

	fb.Success = good == len(s)
	return fb, nil
}
