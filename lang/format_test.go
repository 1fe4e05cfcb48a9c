package lang

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{3, "3"},
		{0.5, "0.5"},
		{-2.25, "-2.25"},
		{1e21, "1e+21"},
		{math.Inf(1), "+Inf"},
	}

	for _, tt := range tests {
		if got := FormatValue(tt.value); got != tt.want {
			t.Errorf("FormatValue(%v): expected %q, got %q", tt.value, tt.want, got)
		}
	}
}

func TestFormat_Statements(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1+2*3", "1 + 2 * 3"},
		{"(1+2)*3", "(1 + 2) * 3"},
		{"2^3^2", "2 ^ 3 ^ 2"},
		{"2^(3^2)", "2 ^ (3 ^ 2)"},
		{"-5", "-5"},
		{"-(1+2)", "-(1 + 2)"},
		{"x = 5", "x = 5"},
		{"f(x)=x*2", "f(x) = x * 2"},
		{"max(1,2+3)", "max(1, 2 + 3)"},
		{"print 1+2", "print 1 + 2"},
	}

	for _, tt := range tests {
		tree := mustParse(t, tt.input)

		if got := Format(tree); got != tt.want {
			t.Errorf("Format(%q): expected %q, got %q", tt.input, tt.want, got)
		}
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	// Canonical text must parse back to the identical tree.
	inputs := []string{
		"1 + 2 * 3",
		"(1 + 2) * 3",
		"2^3^2",
		"1 - 2 - 3",
		"f(x) = x * (x + 1)",
		"print max(1, 2)",
		"-x + 2",
	}

	for _, input := range inputs {
		tree := mustParse(t, input)
		again := mustParse(t, Format(tree))

		if diff := cmp.Diff(tree, again); diff != "" {
			t.Errorf("%q does not round-trip (-first +second):\n%s", input, diff)
		}
	}
}
