package lang

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/ardnew/calc/log"
)

// config holds the options shared by parsing and evaluation.
type config struct {
	out    io.Writer
	logger log.Logger
}

// Option configures parsing or evaluation behavior.
type Option func(*config)

// WithOutput sets the sink that print statements write to. The default is
// io.Discard, so drivers must inject their output stream explicitly.
func WithOutput(w io.Writer) Option {
	return func(cfg *config) {
		if w != nil {
			cfg.out = w
		}
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// makeConfig applies defaults followed by the given options.
func makeConfig(opts ...Option) config {
	cfg := config{out: io.Discard}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Evaluator reduces an expression tree plus an environment to a float64,
// applying side effects (variable and function binding, printing) as it
// goes. It holds no state between statements beyond its configuration.
type Evaluator struct {
	cfg config
}

// NewEvaluator creates an Evaluator with the given options.
func NewEvaluator(opts ...Option) *Evaluator {
	return &Evaluator{cfg: makeConfig(opts...)}
}

// Eval walks the tree in a single synchronous pass, terminal on producing
// a value or an error. An error aborts only the current statement:
// bindings made by earlier statements remain intact.
//
// Division by zero yields IEEE infinity or NaN per floating-point rules,
// never an error.
func (ev *Evaluator) Eval(
	ctx context.Context,
	expr Expr,
	env *Env,
) (float64, error) {
	ev.cfg.logger.TraceContext(ctx, "eval statement")

	return ev.eval(ctx, expr, env)
}

func (ev *Evaluator) eval(
	ctx context.Context,
	expr Expr,
	env *Env,
) (float64, error) {
	switch n := expr.(type) {
	case *Number:
		return n.Value, nil

	case *Variable:
		return ev.lookup(n.Name, env)

	case *Unary:
		return ev.evalUnary(ctx, n, env)

	case *Binary:
		return ev.evalBinary(ctx, n, env)

	case *Call:
		return ev.evalCall(ctx, n, env)

	case *Assign:
		val, err := ev.eval(ctx, n.Value, env)
		if err != nil {
			return 0, err
		}

		env.SetVar(n.Name, val)

		return val, nil

	case *FuncDef:
		env.SetFunc(n.Name, Function{Param: n.Param, Body: n.Body})

		ev.cfg.logger.TraceContext(
			ctx,
			"function defined",
			slog.String("name", n.Name),
			slog.String("param", n.Param),
		)

		// A definition evaluates to the zero sentinel.
		return 0, nil

	case *Print:
		val, err := ev.eval(ctx, n.Inner, env)
		if err != nil {
			return 0, err
		}

		fmt.Fprintln(ev.cfg.out, FormatValue(val))

		return val, nil

	default:
		return 0, ErrUnknownOperator.
			Wrap(fmt.Errorf("unhandled node %T", expr))
	}
}

// lookup resolves a variable reference. The reserved constants pi and e
// are checked ahead of the variable table and permanently shadow any user
// assignment; the remaining named constants are checked after it.
func (ev *Evaluator) lookup(name string, env *Env) (float64, error) {
	if val, ok := reserved[name]; ok {
		return val, nil
	}

	if val, ok := env.Var(name); ok {
		return val, nil
	}

	if val, ok := constants[name]; ok {
		return val, nil
	}

	return 0, ErrUndefinedVariable.
		Wrap(fmt.Errorf("%q", name)).
		With(slog.String("name", name))
}

func (ev *Evaluator) evalUnary(
	ctx context.Context,
	n *Unary,
	env *Env,
) (float64, error) {
	val, err := ev.eval(ctx, n.Operand, env)
	if err != nil {
		return 0, err
	}

	switch n.Op {
	case "+":
		return val, nil

	case "-":
		return -val, nil

	default:
		return 0, ErrUnknownOperator.
			Wrap(fmt.Errorf("unary %q", n.Op)).
			With(slog.String("op", n.Op))
	}
}

func (ev *Evaluator) evalBinary(
	ctx context.Context,
	n *Binary,
	env *Env,
) (float64, error) {
	lhs, err := ev.eval(ctx, n.Left, env)
	if err != nil {
		return 0, err
	}

	rhs, err := ev.eval(ctx, n.Right, env)
	if err != nil {
		return 0, err
	}

	switch n.Op {
	case "+":
		return lhs + rhs, nil

	case "-":
		return lhs - rhs, nil

	case "*":
		return lhs * rhs, nil

	case "/":
		return lhs / rhs, nil

	case "^":
		return math.Pow(lhs, rhs), nil

	default:
		return 0, ErrUnknownOperator.
			Wrap(fmt.Errorf("binary %q", n.Op)).
			With(slog.String("op", n.Op))
	}
}

// evalCall resolves a call name against the user function table first, and
// falls back to the built-in table only when no user function shadows the
// name.
func (ev *Evaluator) evalCall(
	ctx context.Context,
	n *Call,
	env *Env,
) (float64, error) {
	if fn, ok := env.Func(n.Name); ok {
		return ev.callUser(ctx, n, fn, env)
	}

	b, ok := builtins[n.Name]
	if !ok || len(n.Args) != b.arity {
		return 0, ErrUnknownFunction.
			Wrap(fmt.Errorf("%q with %d argument(s)", n.Name, len(n.Args))).
			With(
				slog.String("name", n.Name),
				slog.Int("args", len(n.Args)),
			)
	}

	args := make([]float64, len(n.Args))

	for i, arg := range n.Args {
		val, err := ev.eval(ctx, arg, env)
		if err != nil {
			return 0, err
		}

		args[i] = val
	}

	return b.call(args), nil
}

// callUser invokes a user-defined function. The arity check precedes
// argument evaluation so a rejected call never evaluates side-effecting
// argument expressions. The body is evaluated in a transient call-local
// environment discarded on return; recursion is bounded only by the native
// call stack.
func (ev *Evaluator) callUser(
	ctx context.Context,
	n *Call,
	fn Function,
	env *Env,
) (float64, error) {
	if len(n.Args) != 1 {
		return 0, ErrArityMismatch.
			Wrap(fmt.Errorf(
				"%s expects 1 argument, got %d", n.Name, len(n.Args),
			)).
			With(
				slog.String("name", n.Name),
				slog.Int("expected", 1),
				slog.Int("got", len(n.Args)),
			)
	}

	arg, err := ev.eval(ctx, n.Args[0], env)
	if err != nil {
		return 0, err
	}

	ev.cfg.logger.TraceContext(
		ctx,
		"call user function",
		slog.String("name", n.Name),
		slog.Float64("arg", arg),
	)

	return ev.eval(ctx, fn.Body, env.callEnv(fn.Param, arg))
}
