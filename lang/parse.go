package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Parse converts one line of source text into exactly one statement tree.
// The parser is pure: the same line always produces the same tree or the
// same error, and no state is held across calls.
//
// A line that fails to match the statement grammar in its entirety returns
// a *ParseError identifying the offending position; no partial tree is
// produced.
func Parse(line string, opts ...Option) (Expr, error) {
	cfg := makeConfig(opts...)

	cfg.logger.Trace(
		"parse start",
		slog.Int("source_length", len(line)),
	)

	stmt, err := stmtParser.ParseString("", line)
	if err != nil {
		return nil, newParseError(err, line)
	}

	tree := stmt.lower()

	cfg.logger.Trace("parse complete")

	return tree, nil
}

// ParseError reports a line that failed to match the statement grammar.
// It carries the offending position and, when available, the token the
// parser expected.
type ParseError struct {
	Message string
	Source  string // the original input line
	Line    int
	Column  int
}

// newParseError converts a participle error into a *ParseError with the
// source line attached for snippet rendering.
func newParseError(err error, source string) error {
	var perr participle.Error
	if !errors.As(err, &perr) {
		return &ParseError{
			Message: err.Error(),
			Source:  source,
			Line:    1,
			Column:  1,
		}
	}

	pos := perr.Position()

	return &ParseError{
		Message: perr.Message(),
		Source:  source,
		Line:    max(pos.Line, 1),
		Column:  max(pos.Column, 1),
	}
}

// Error implements the error interface. The message includes the offending
// source line with a caret marking the error column.
func (e *ParseError) Error() string {
	var buf strings.Builder

	buf.WriteString("parse error at line ")
	buf.WriteString(strconv.Itoa(e.Line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(e.Column))
	buf.WriteString(": ")
	buf.WriteString(e.Message)

	snippet := e.Snippet()
	if snippet != "" {
		buf.WriteString("\n")
		buf.WriteString(snippet)
	}

	return buf.String()
}

// Snippet renders the offending source line with a caret marking the error
// column, or "" if the source is unavailable.
func (e *ParseError) Snippet() string {
	lines := strings.Split(e.Source, "\n")
	if e.Source == "" || e.Line < 1 || e.Line > len(lines) {
		return ""
	}

	var src strings.Builder

	text := lines[e.Line-1]

	// Print the line with line number
	src.WriteString("  ")
	src.WriteString(strconv.Itoa(e.Line))
	src.WriteString(" | ")
	src.WriteString(text)
	src.WriteRune('\n')

	// Print marker pointing to the column
	// Calculate the width needed for line number display
	lineNumWidth := len(strconv.Itoa(e.Line))
	// +5 accounts for: 2 leading spaces + " | " (3 chars)
	padding := strings.Repeat(" ", lineNumWidth+5)

	if e.Column > 0 {
		padding += strings.Repeat(" ", e.Column-1)
	}

	src.WriteString(padding + "^")

	return src.String()
}

// LogValue implements slog.LogValuer for structured logging.
func (e *ParseError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", e.Message),
		slog.Int("line", e.Line),
		slog.Int("column", e.Column),
	)
}
