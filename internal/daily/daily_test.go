package daily

import (
	"errors"
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	ts := time.Date(2026, 3, 1, 5, 0, 0, 0, loc) // still Feb 28 in UTC
	if got := DateKey(ts); got != "2026-02-28" {
		t.Errorf("DateKey = %s, want 2026-02-28", got)
	}
}

func TestIndex_StableWithinDay(t *testing.T) {
	s := Selector{Salt: "test"}
	morning := time.Date(2026, 10, 19, 0, 0, 1, 0, time.UTC)
	night := time.Date(2026, 10, 19, 23, 59, 59, 0, time.UTC)
	if a, b := s.Index(morning, 1000), s.Index(night, 1000); a != b {
		t.Errorf("index changed within a day: %d vs %d", a, b)
	}
}

func TestIndex_SeededByDayOfYear(t *testing.T) {
	s := Selector{}
	// Day 60 in both years.
	a := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	b := time.Date(2027, 3, 1, 12, 0, 0, 0, time.UTC)
	if a.YearDay() != b.YearDay() {
		t.Fatalf("test dates have different day-of-year")
	}
	if s.Index(a, 500) != s.Index(b, 500) {
		t.Error("same day-of-year should give the same index")
	}
}

func TestIndex_Range(t *testing.T) {
	s := Selector{Salt: "range"}
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for d := 0; d < 366; d++ {
		i := s.Index(start.AddDate(0, 0, d), 7)
		if i < 0 || i >= 7 {
			t.Fatalf("index %d out of range", i)
		}
		seen[i] = true
	}
	if len(seen) < 2 {
		t.Errorf("a year of draws only hit %d distinct indexes", len(seen))
	}
	if got := s.Index(start, 0); got != 0 {
		t.Errorf("Index with n=0 = %d, want 0", got)
	}
}

func TestWord(t *testing.T) {
	s := Selector{}
	if _, err := s.Word(time.Now(), nil); !errors.Is(err, ErrNoAnswers) {
		t.Errorf("expected ErrNoAnswers, got %v", err)
	}
	w, err := s.Word(time.Now(), []string{"crane"})
	if err != nil || w != "crane" {
		t.Errorf("Word = %q, %v", w, err)
	}
}
