package cmd

import (
	"context"
	"io"

	"github.com/ardnew/calc/lang"
)

// session couples an environment with an evaluator so that assignments and
// function definitions on earlier statements are visible to later ones.
// Each command constructs exactly one session per invocation.
type session struct {
	env  *lang.Env
	eval *lang.Evaluator
}

// newSession returns a session whose print statements write to out.
func newSession(out io.Writer) *session {
	return &session{
		env:  lang.NewEnv(),
		eval: lang.NewEvaluator(lang.WithOutput(out)),
	}
}

// run parses and evaluates a single statement in the session environment.
func (s *session) run(ctx context.Context, stmt string) (float64, error) {
	expr, err := lang.Parse(stmt)
	if err != nil {
		return 0, err
	}

	return s.eval.Eval(ctx, expr, s.env)
}
