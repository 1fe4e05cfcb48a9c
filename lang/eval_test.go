package lang

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

// evalLine parses and evaluates one statement in env, failing the test on
// any error.
func evalLine(t *testing.T, ev *Evaluator, env *Env, line string) float64 {
	t.Helper()

	tree, err := Parse(line)
	if err != nil {
		t.Fatalf("parse %q: %v", line, err)
	}

	val, err := ev.Eval(t.Context(), tree, env)
	if err != nil {
		t.Fatalf("eval %q: %v", line, err)
	}

	return val
}

// evalErr parses and evaluates one statement in env, failing the test unless
// evaluation returns an error.
func evalErr(t *testing.T, ev *Evaluator, env *Env, line string) error {
	t.Helper()

	tree, err := Parse(line)
	if err != nil {
		t.Fatalf("parse %q: %v", line, err)
	}

	_, err = ev.Eval(t.Context(), tree, env)
	if err == nil {
		t.Fatalf("eval %q: expected error", line)
	}

	return err
}

func TestEval_LiteralRoundTrip(t *testing.T) {
	ev := NewEvaluator()
	env := NewEnv()

	if got := evalLine(t, ev, env, "42"); got != 42 {
		t.Errorf("expected 42, got %v", got)
	}

	if got := evalLine(t, ev, env, "2.5e-1"); got != 0.25 {
		t.Errorf("expected 0.25, got %v", got)
	}
}

func TestEval_Arithmetic(t *testing.T) {
	ev := NewEvaluator()
	env := NewEnv()

	tests := []struct {
		input string
		want  float64
	}{
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"10 - 2 - 3", 5},
		{"8 / 2 / 2", 2},
		{"2 - -3", 5},
		{"-2^2", 4}, // unary binds tighter than ^: (-2)^2
	}

	for _, tt := range tests {
		if got := evalLine(t, ev, env, tt.input); got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.input, tt.want, got)
		}
	}
}

func TestEval_PowerLeftAssociative(t *testing.T) {
	ev := NewEvaluator()
	env := NewEnv()

	// (2^3)^2 = 64, not 2^(3^2) = 512
	if got := evalLine(t, ev, env, "2^3^2"); got != 64 {
		t.Errorf("expected 64, got %v", got)
	}
}

func TestEval_AssignThenReference(t *testing.T) {
	ev := NewEvaluator()
	env := NewEnv()

	if got := evalLine(t, ev, env, "x = 5"); got != 5 {
		t.Errorf("assignment should evaluate to 5, got %v", got)
	}

	if got := evalLine(t, ev, env, "x + 1"); got != 6 {
		t.Errorf("expected 6, got %v", got)
	}
}

func TestEval_UndefinedVariable(t *testing.T) {
	ev := NewEvaluator()
	env := NewEnv()

	err := evalErr(t, ev, env, "bogus + 1")
	if !errors.Is(err, ErrUndefinedVariable) {
		t.Errorf("expected ErrUndefinedVariable, got %v", err)
	}
}

func TestEval_ErrorLeavesBindingsIntact(t *testing.T) {
	ev := NewEvaluator()
	env := NewEnv()

	evalLine(t, ev, env, "x = 5")
	evalErr(t, ev, env, "x + bogus")

	// Earlier bindings survive a failed statement.
	if got := evalLine(t, ev, env, "x"); got != 5 {
		t.Errorf("expected 5, got %v", got)
	}
}

func TestEval_UserFunction(t *testing.T) {
	ev := NewEvaluator()
	env := NewEnv()

	if got := evalLine(t, ev, env, "f(x) = x * 2"); got != 0 {
		t.Errorf("definition should evaluate to 0, got %v", got)
	}

	if got := evalLine(t, ev, env, "f(10)"); got != 20 {
		t.Errorf("expected 20, got %v", got)
	}
}

func TestEval_CallEnvSnapshotsVariables(t *testing.T) {
	ev := NewEvaluator()
	env := NewEnv()

	evalLine(t, ev, env, "x = 1")
	evalLine(t, ev, env, "f(y) = x + y")

	if got := evalLine(t, ev, env, "f(2)"); got != 3 {
		t.Errorf("expected 3, got %v", got)
	}

	// The parameter binding is call-local and never leaks out.
	err := evalErr(t, ev, env, "y")
	if !errors.Is(err, ErrUndefinedVariable) {
		t.Errorf("expected ErrUndefinedVariable, got %v", err)
	}
}

func TestEval_ParamShadowsVariable(t *testing.T) {
	ev := NewEvaluator()
	env := NewEnv()

	evalLine(t, ev, env, "x = 1")
	evalLine(t, ev, env, "g(x) = x * 10")

	if got := evalLine(t, ev, env, "g(5)"); got != 50 {
		t.Errorf("expected 50, got %v", got)
	}

	// The caller's binding is untouched after the call returns.
	if got := evalLine(t, ev, env, "x"); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
}

func TestEval_FunctionsSharedByReference(t *testing.T) {
	ev := NewEvaluator()
	env := NewEnv()

	evalLine(t, ev, env, "f(x) = x + 1")
	evalLine(t, ev, env, "g(y) = f(y) * 2")

	if got := evalLine(t, ev, env, "g(3)"); got != 8 {
		t.Errorf("expected 8, got %v", got)
	}
}

func TestEval_ArityCheckedBeforeArguments(t *testing.T) {
	ev := NewEvaluator()
	env := NewEnv()

	evalLine(t, ev, env, "f(x) = x")

	// Both arguments reference undefined names; the arity error must win
	// because it is raised before any argument is evaluated.
	err := evalErr(t, ev, env, "f(bogus, bogus)")
	if !errors.Is(err, ErrArityMismatch) {
		t.Errorf("expected ErrArityMismatch, got %v", err)
	}
}

func TestEval_UnknownFunction(t *testing.T) {
	ev := NewEvaluator()
	env := NewEnv()

	err := evalErr(t, ev, env, "nosuch(1)")
	if !errors.Is(err, ErrUnknownFunction) {
		t.Errorf("expected ErrUnknownFunction, got %v", err)
	}

	// A builtin called with the wrong argument count is equally unknown.
	err = evalErr(t, ev, env, "sin(1, 2)")
	if !errors.Is(err, ErrUnknownFunction) {
		t.Errorf("expected ErrUnknownFunction, got %v", err)
	}
}

func TestEval_UserFunctionShadowsBuiltin(t *testing.T) {
	ev := NewEvaluator()
	env := NewEnv()

	evalLine(t, ev, env, "sin(x) = x")

	if got := evalLine(t, ev, env, "sin(0.5)"); got != 0.5 {
		t.Errorf("expected shadowed sin to return 0.5, got %v", got)
	}
}

func TestEval_Builtins(t *testing.T) {
	ev := NewEvaluator()
	env := NewEnv()

	tests := []struct {
		input string
		want  float64
	}{
		{"sin(0)", 0},
		{"cos(0)", 1},
		{"sqrt(9)", 3},
		{"log(e)", 1},
		{"log10(100)", 2},
		{"floor(1.7)", 1},
		{"ceil(1.2)", 2},
		{"max(2, 7)", 7},
		{"min(2, 7)", 2},
		{"fact(4)", 24},
	}

	for _, tt := range tests {
		got := evalLine(t, ev, env, tt.input)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%q: expected %v, got %v", tt.input, tt.want, got)
		}
	}
}

func TestEval_ReservedConstants(t *testing.T) {
	ev := NewEvaluator()
	env := NewEnv()

	if got := evalLine(t, ev, env, "pi"); got != math.Pi {
		t.Errorf("expected pi, got %v", got)
	}

	if got := evalLine(t, ev, env, "e"); got != math.E {
		t.Errorf("expected e, got %v", got)
	}

	// Assignment succeeds and evaluates to the assigned value, but can
	// never shadow a reserved constant.
	if got := evalLine(t, ev, env, "pi = 3"); got != 3 {
		t.Errorf("assignment should evaluate to 3, got %v", got)
	}

	if got := evalLine(t, ev, env, "pi"); got != math.Pi {
		t.Errorf("reserved pi must shadow the assignment, got %v", got)
	}
}

func TestEval_NamedConstantsShadowable(t *testing.T) {
	ev := NewEvaluator()
	env := NewEnv()

	if got := evalLine(t, ev, env, "tau"); got != 2*math.Pi {
		t.Errorf("expected tau, got %v", got)
	}

	evalLine(t, ev, env, "tau = 1")

	if got := evalLine(t, ev, env, "tau"); got != 1 {
		t.Errorf("assignment must shadow tau, got %v", got)
	}
}

func TestEval_DivisionByZero(t *testing.T) {
	ev := NewEvaluator()
	env := NewEnv()

	if got := evalLine(t, ev, env, "1 / 0"); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf, got %v", got)
	}

	if got := evalLine(t, ev, env, "-1 / 0"); !math.IsInf(got, -1) {
		t.Errorf("expected -Inf, got %v", got)
	}

	if got := evalLine(t, ev, env, "0 / 0"); !math.IsNaN(got) {
		t.Errorf("expected NaN, got %v", got)
	}
}

func TestEval_PrintWritesSink(t *testing.T) {
	var out bytes.Buffer

	ev := NewEvaluator(WithOutput(&out))
	env := NewEnv()

	if got := evalLine(t, ev, env, "print 1 + 2"); got != 3 {
		t.Errorf("print should evaluate to 3, got %v", got)
	}

	if out.String() != "3\n" {
		t.Errorf("expected sink %q, got %q", "3\n", out.String())
	}
}

func TestEval_PrintDefaultsToDiscard(t *testing.T) {
	ev := NewEvaluator()
	env := NewEnv()

	// No sink injected: evaluation succeeds and nothing is emitted.
	if got := evalLine(t, ev, env, "print 7"); got != 7 {
		t.Errorf("expected 7, got %v", got)
	}
}
