package repl

import (
	"slices"
	"testing"

	"github.com/ardnew/calc/lang"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		input  string
		cursor int
		word   string
		start  int
		end    int
	}{
		{"sin", 3, "sin", 0, 3},
		{"sin", 1, "sin", 0, 3},
		{"1 + co", 6, "co", 4, 6},
		{"max(ab", 6, "ab", 4, 6},
		{"x=pi", 4, "pi", 2, 4},
		{"a + ", 4, "", 4, 4},
		{"", 0, "", 0, 0},
		{"2^sq", 4, "sq", 2, 4},
	}

	for _, tt := range tests {
		word, start, end := wordBounds(tt.input, tt.cursor)
		if word != tt.word || start != tt.start || end != tt.end {
			t.Errorf("wordBounds(%q, %d): expected (%q, %d, %d), got (%q, %d, %d)",
				tt.input, tt.cursor, tt.word, tt.start, tt.end, word, start, end)
		}
	}
}

func TestWordBounds_CursorPastEnd(t *testing.T) {
	word, start, end := wordBounds("pi", 10)
	if word != "pi" || start != 0 || end != 2 {
		t.Errorf("expected (pi, 0, 2), got (%q, %d, %d)", word, start, end)
	}
}

func TestNameCandidates(t *testing.T) {
	env := lang.NewEnv()
	env.SetVar("radius", 2)
	env.SetFunc("area", lang.Function{Param: "r"})

	names := nameCandidates(env)

	for _, want := range []string{"radius", "area", "sin", "pi", "help", "quit"} {
		if !slices.Contains(names, want) {
			t.Errorf("expected candidate %q in %v", want, names)
		}
	}

	if !slices.IsSorted(names) {
		t.Errorf("candidates must be sorted: %v", names)
	}
}

func TestNameCandidates_Deduplicated(t *testing.T) {
	env := lang.NewEnv()

	// Shadowing a builtin must not produce a duplicate candidate.
	env.SetFunc("sin", lang.Function{Param: "x"})

	names := nameCandidates(env)

	count := 0

	for _, name := range names {
		if name == "sin" {
			count++
		}
	}

	if count != 1 {
		t.Errorf("expected exactly one sin candidate, got %d", count)
	}
}

func TestIsFunction(t *testing.T) {
	env := lang.NewEnv()
	env.SetFunc("area", lang.Function{Param: "r"})
	env.SetVar("radius", 2)

	if !isFunction("area", env) {
		t.Error("user function must render with ()")
	}

	if !isFunction("sqrt", env) {
		t.Error("builtin must render with ()")
	}

	if isFunction("radius", env) {
		t.Error("variable must not render with ()")
	}

	if isFunction("pi", env) {
		t.Error("constant must not render with ()")
	}
}
