package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestEvalStmt_PrintsResult(t *testing.T) {
	var out bytes.Buffer

	sess := newSession(&out)

	evalStmt(t.Context(), sess, "1 + 2 * 3", &out)

	if out.String() != "= 7\n" {
		t.Errorf("expected %q, got %q", "= 7\n", out.String())
	}
}

func TestEvalStmt_SharedEnvironment(t *testing.T) {
	var out bytes.Buffer

	sess := newSession(&out)

	evalStmt(t.Context(), sess, "x = 4", &out)
	evalStmt(t.Context(), sess, "f(y) = y * x", &out)
	evalStmt(t.Context(), sess, "f(2)", &out)

	want := "= 4\n= 0\n= 8\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

func TestEvalStmt_ReportsErrors(t *testing.T) {
	var out bytes.Buffer

	sess := newSession(&out)

	evalStmt(t.Context(), sess, "bogus + 1", &out)

	if !strings.HasPrefix(out.String(), "error: ") {
		t.Errorf("expected error report, got %q", out.String())
	}

	out.Reset()

	evalStmt(t.Context(), sess, "1 +", &out)

	if !strings.Contains(out.String(), "parse error") {
		t.Errorf("expected parse error report, got %q", out.String())
	}
}
