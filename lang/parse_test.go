package lang

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, line string) Expr {
	t.Helper()

	tree, err := Parse(line)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	return tree
}

func TestParse_NumberLiteral(t *testing.T) {
	tree := mustParse(t, "42")

	want := &Number{Value: 42}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_NumberForms(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"0", 0},
		{"3.25", 3.25},
		{"1e3", 1000},
		{"2.5e-1", 0.25},
		{"1E2", 100},
	}

	for _, tt := range tests {
		tree := mustParse(t, tt.input)

		num, ok := tree.(*Number)
		if !ok {
			t.Errorf("%q: expected *Number, got %T", tt.input, tree)

			continue
		}

		if num.Value != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.input, tt.want, num.Value)
		}
	}
}

func TestParse_UnsignedLiteralHasNoUnaryNode(t *testing.T) {
	tree := mustParse(t, "5")

	if _, ok := tree.(*Unary); ok {
		t.Fatal("unsigned literal must not produce a unary node")
	}
}

func TestParse_NegativeLiteral(t *testing.T) {
	tree := mustParse(t, "-5")

	want := &Unary{Op: "-", Operand: &Number{Value: 5}}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Precedence(t *testing.T) {
	tree := mustParse(t, "1 + 2 * 3")

	want := &Binary{
		Op:   "+",
		Left: &Number{Value: 1},
		Right: &Binary{
			Op:    "*",
			Left:  &Number{Value: 2},
			Right: &Number{Value: 3},
		},
	}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_SumLeftAssociative(t *testing.T) {
	tree := mustParse(t, "1 - 2 - 3")

	want := &Binary{
		Op: "-",
		Left: &Binary{
			Op:    "-",
			Left:  &Number{Value: 1},
			Right: &Number{Value: 2},
		},
		Right: &Number{Value: 3},
	}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_PowerLeftAssociative(t *testing.T) {
	tree := mustParse(t, "2^3^2")

	want := &Binary{
		Op: "^",
		Left: &Binary{
			Op:    "^",
			Left:  &Number{Value: 2},
			Right: &Number{Value: 3},
		},
		Right: &Number{Value: 2},
	}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_ParenGrouping(t *testing.T) {
	tree := mustParse(t, "(1 + 2) * 3")

	want := &Binary{
		Op: "*",
		Left: &Binary{
			Op:    "+",
			Left:  &Number{Value: 1},
			Right: &Number{Value: 2},
		},
		Right: &Number{Value: 3},
	}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Assignment(t *testing.T) {
	tree := mustParse(t, "x = 5")

	want := &Assign{Name: "x", Value: &Number{Value: 5}}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_FunctionDefinition(t *testing.T) {
	tree := mustParse(t, "f(x) = x * 2")

	want := &FuncDef{
		Name:  "f",
		Param: "x",
		Body: &Binary{
			Op:    "*",
			Left:  &Variable{Name: "x"},
			Right: &Number{Value: 2},
		},
	}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_CallVersusDefinition(t *testing.T) {
	// Identical prefix "f ( x )" must diverge only at the "=" token.
	tree := mustParse(t, "f(x)")

	want := &Call{Name: "f", Args: []Expr{&Variable{Name: "x"}}}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_CallMultipleArgs(t *testing.T) {
	tree := mustParse(t, "max(1, 2 + 3)")

	want := &Call{
		Name: "max",
		Args: []Expr{
			&Number{Value: 1},
			&Binary{
				Op:    "+",
				Left:  &Number{Value: 2},
				Right: &Number{Value: 3},
			},
		},
	}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_PrintStatement(t *testing.T) {
	tree := mustParse(t, "print 1 + 2")

	want := &Print{
		Inner: &Binary{
			Op:    "+",
			Left:  &Number{Value: 1},
			Right: &Number{Value: 2},
		},
	}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_AssignmentToPrintName(t *testing.T) {
	// "print" is not a reserved word: assignment wins over print statement.
	tree := mustParse(t, "print = 5")

	want := &Assign{Name: "print", Value: &Number{Value: 5}}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Error(t *testing.T) {
	tests := []string{
		"1 +",
		"(1 + 2",
		"f(x =",
		"* 3",
		"1 2",
		"",
	}

	for _, input := range tests {
		tree, err := Parse(input)
		if err == nil {
			t.Errorf("%q: expected parse error, got tree %#v", input, tree)

			continue
		}

		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%q: expected *ParseError, got %T", input, err)
		}
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	_, err := Parse("1 + + +")

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}

	if perr.Line != 1 {
		t.Errorf("expected line 1, got %d", perr.Line)
	}

	if perr.Column < 1 {
		t.Errorf("expected positive column, got %d", perr.Column)
	}

	msg := perr.Error()
	if !strings.Contains(msg, "parse error at line 1") {
		t.Errorf("unexpected error message: %q", msg)
	}

	if !strings.Contains(msg, "^") {
		t.Errorf("expected caret marker in message: %q", msg)
	}
}

func TestParse_Pure(t *testing.T) {
	// Parsing holds no state: the same line always yields the same tree.
	first := mustParse(t, "x = sin(pi / 2)")
	second := mustParse(t, "x = sin(pi / 2)")

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("parse is not pure (-first +second):\n%s", diff)
	}
}
