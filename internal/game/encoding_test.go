package game

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestCompact(t *testing.T) {
	tests := []struct {
		guess, solution, want string
	}{
		{"crane", "crane", "22222:ye:5"},
		{"crate", "crane", "22202:no:5"},
		{"speed", "erase", "10110:no:5"},
		{"zzzzz", "fuzzy", "00220:no:5"},
	}
	for _, tt := range tests {
		fb, err := Evaluate(tt.guess, tt.solution)
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		got, err := fb.Compact()
		if err != nil {
			t.Fatalf("Compact: %v", err)
		}
		if got != tt.want {
			t.Errorf("Compact(%s vs %s) = %q, want %q", tt.guess, tt.solution, got, tt.want)
		}
	}
}

func TestCompact_Unchecked(t *testing.T) {
	fb := &GuessFeedback{Letters: []LetterFeedback{{Letter: 'a', Status: Good}, {Letter: 'b', Status: Unchecked}}}
	if _, err := fb.Compact(); !errors.Is(err, ErrUncheckedStatus) {
		t.Fatalf("expected ErrUncheckedStatus, got %v", err)
	}
}

func TestParseCompact_RoundTrip(t *testing.T) {
	for _, g := range corpus {
		for _, s := range []string{"erase", "fuzzy", "llama", g} {
			fb, _ := Evaluate(g, s)
			enc, err := fb.Compact()
			if err != nil {
				t.Fatalf("Compact: %v", err)
			}
			dec, err := ParseCompact(enc)
			if err != nil {
				t.Fatalf("ParseCompact(%q): %v", enc, err)
			}
			if !slices.Equal(dec.Statuses, fb.Statuses()) {
				t.Errorf("ParseCompact(%q) statuses = %v, want %v", enc, dec.Statuses, fb.Statuses())
			}
			if dec.Success != fb.Success || dec.RemainingAttempts != fb.RemainingAttempts {
				t.Errorf("ParseCompact(%q) = %+v", enc, dec)
			}
		}
	}
}

func TestParseCompact_Malformed(t *testing.T) {
	for _, in := range []string{"", "22222", "22222:ye", ":ye:5", "22322:ye:5", "22222:yes:5", "22222:no:x", "22222:no:-1", "2a222:no:5"} {
		if _, err := ParseCompact(in); !errors.Is(err, ErrBadCompact) {
			t.Errorf("ParseCompact(%q): expected ErrBadCompact, got %v", in, err)
		}
	}
}

func TestGuessFeedback_JSON(t *testing.T) {
	fb, _ := Evaluate("speed", "erase")
	b, err := json.Marshal(fb)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got := string(b)
	for _, want := range []string{
		`{"letter":"s","status":"WrongPos"}`,
		`{"letter":"p","status":"Invalid"}`,
		`"success":false`,
		`"remaining_attempts":5`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON %s missing %s", got, want)
		}
	}

	var back GuessFeedback
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Word() != "speed" || !slices.Equal(back.Statuses(), fb.Statuses()) {
		t.Errorf("decoded %+v, want %+v", back, fb)
	}
}

func TestLetterStatus_UncheckedNotSerializable(t *testing.T) {
	_, err := json.Marshal(LetterFeedback{Letter: 'a', Status: Unchecked})
	if !errors.Is(err, ErrUncheckedStatus) {
		t.Fatalf("expected ErrUncheckedStatus, got %v", err)
	}
}
