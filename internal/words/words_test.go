package words

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeList(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestLoad_Embedded(t *testing.T) {
	l, err := Load("", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	a, g := l.Stats()
	if a == 0 || g < a {
		t.Fatalf("Stats() = (%d, %d)", a, g)
	}
	for _, w := range l.Answers() {
		if len(w) != Length || !isAlpha(w) {
			t.Errorf("embedded answer %q is not a 5-letter word", w)
		}
		if !l.IsAllowed(w) {
			t.Errorf("answer %q not allowed", w)
		}
	}
	if !l.IsAllowed("llama") || l.IsAnswer("llama") {
		t.Error("llama should be an allowed guess but not an answer")
	}
}

func TestLoad_BothFiles(t *testing.T) {
	ans := writeList(t, "answers.txt", "# header\nCrane\n\n  slate \ntoolong\nab1de\n")
	all := writeList(t, "allowed.txt", "geese\nllama\n")

	l, err := Load(ans, all)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := l.Answers(); len(got) != 2 || got[0] != "crane" || got[1] != "slate" {
		t.Fatalf("Answers() = %v", got)
	}
	for _, w := range []string{"crane", "SLATE", "geese", "llama"} {
		if !l.IsAllowed(w) {
			t.Errorf("IsAllowed(%q) = false", w)
		}
	}
	if l.IsAllowed("toolong") || l.IsAllowed("ab1de") {
		t.Error("invalid words must be filtered out")
	}
	if l.IsAnswer("geese") {
		t.Error("geese is not an answer")
	}
}

func TestLoad_AllowedOnly(t *testing.T) {
	all := writeList(t, "allowed.txt", "crane\nslate\n")
	l, err := Load("", all)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if a, g := l.Stats(); a != 2 || g != 2 {
		t.Errorf("Stats() = (%d, %d), want (2, 2)", a, g)
	}
}

func TestLoad_AnswersOnlyFallsBack(t *testing.T) {
	l, err := Load(writeList(t, "a.txt", "crane\n"), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def, err := Load("", "")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}
	la, lg := l.Stats()
	da, dg := def.Stats()
	if la != da || lg != dg {
		t.Errorf("Stats() = (%d, %d), want embedded (%d, %d)", la, lg, da, dg)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load("/does/not/exist", "/does/not/exist"); err == nil {
		t.Error("expected error for missing file")
	}
	empty := writeList(t, "empty.txt", "# nothing\n")
	if _, err := Load("", empty); !errors.Is(err, ErrNoAnswers) {
		t.Errorf("expected ErrNoAnswers, got %v", err)
	}
}

func TestNew_Deduplicates(t *testing.T) {
	l, err := New([]string{"crane", "CRANE", "slate"}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(l.Answers()) != 2 {
		t.Errorf("Answers() = %v", l.Answers())
	}
}
