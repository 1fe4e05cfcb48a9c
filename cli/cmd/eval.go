package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/calc/lang"
	"github.com/ardnew/calc/log"
)

// Eval evaluates statements given as arguments, or read from stdin when no
// arguments are given.
type Eval struct {
	Stmts []string `arg:"" help:"Statement(s) to evaluate" name:"stmt" optional:""`
}

// Run executes the eval command.
//
// All statements share one environment, so an assignment in one argument is
// visible to the next. A statement that fails to parse or evaluate is
// reported and skipped.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	sess := newSession(os.Stdout)

	if len(e.Stmts) > 0 {
		for _, stmt := range e.Stmts {
			evalStmt(ctx, sess, stmt, os.Stdout)
		}

		return nil
	}

	log.DebugContext(ctx, "eval reading stdin")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		stmt := strings.TrimSpace(scanner.Text())
		if stmt == "" {
			continue
		}

		evalStmt(ctx, sess, stmt, os.Stdout)
	}

	err = scanner.Err()
	if err != nil {
		return lang.ErrReadInput.Wrap(err).
			With(slog.String("command", "eval"))
	}

	return nil
}

// evalStmt evaluates one statement and prints its result or error on out.
func evalStmt(ctx context.Context, sess *session, stmt string, out io.Writer) {
	result, err := sess.run(ctx, stmt)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)

		return
	}

	fmt.Fprintf(out, "= %s\n", lang.FormatValue(result))
}
