package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/calc/lang"
	"github.com/ardnew/calc/log"
)

// Run evaluates statements from source files line by line.
type Run struct {
	Paths []string `arg:"" help:"Source file(s) to evaluate" name:"path" type:"existingfile"`
}

// Run executes the run command.
//
// Each non-blank line of each file is parsed and evaluated as one statement.
// A line that fails to parse or evaluate is reported and skipped; evaluation
// continues with the next line. All files share one environment, so
// assignments and function definitions carry forward across lines and files.
func (r *Run) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	sess := newSession(os.Stdout)

	for _, path := range r.Paths {
		err := runFile(ctx, sess, path, os.Stdout)
		if err != nil {
			return lang.WrapError(err).
				With(
					slog.String("command", "run"),
					slog.String("path", path),
				)
		}
	}

	return nil
}

// runFile evaluates every non-blank line of the file at path in the session
// environment, reporting each result or error on out.
func runFile(
	ctx context.Context,
	sess *session,
	path string,
	out io.Writer,
) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	log.DebugContext(ctx, "run file", slog.String("path", path))

	scanner := bufio.NewScanner(file)

	for num := 1; scanner.Scan(); num++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		result, err := sess.run(ctx, line)
		if err != nil {
			var parseErr *lang.ParseError
			if errors.As(err, &parseErr) {
				fmt.Fprintf(out, "Line %d: parse error: %s\n", num, parseErr.Message)
			} else {
				fmt.Fprintf(out, "Line %d: error evaluating '%s': %v\n", num, line, err)
			}

			continue
		}

		fmt.Fprintf(out, "Line %d: %s = %s\n", num, line, lang.FormatValue(result))
	}

	return scanner.Err()
}
