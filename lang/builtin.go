package lang

import (
	"maps"
	"math"
	"slices"
)

// builtin is a fixed-arity entry in the built-in function table. The table
// is consulted only when no user function shadows the name.
type builtin struct {
	call  func(args []float64) float64
	arity int
}

// arity1 adapts a one-argument math function into a builtin entry.
func arity1(fn func(float64) float64) builtin {
	return builtin{
		arity: 1,
		call:  func(args []float64) float64 { return fn(args[0]) },
	}
}

// arity2 adapts a two-argument math function into a builtin entry.
func arity2(fn func(float64, float64) float64) builtin {
	return builtin{
		arity: 2,
		call:  func(args []float64) float64 { return fn(args[0], args[1]) },
	}
}

// builtins is the fixed built-in function table. Angles are in radians.
//
//nolint:gochecknoglobals
var builtins = map[string]builtin{
	"sin":  arity1(math.Sin),
	"cos":  arity1(math.Cos),
	"tan":  arity1(math.Tan),
	"sinh": arity1(math.Sinh),
	"cosh": arity1(math.Cosh),
	"tanh": arity1(math.Tanh),
	"asin": arity1(math.Asin),
	"acos": arity1(math.Acos),
	"atan": arity1(math.Atan),

	"sqrt":  arity1(math.Sqrt),
	"cbrt":  arity1(math.Cbrt),
	"log":   arity1(math.Log),
	"log2":  arity1(math.Log2),
	"log10": arity1(math.Log10),

	"floor": arity1(math.Floor),
	"ceil":  arity1(math.Ceil),
	"trunc": arity1(math.Trunc),
	"round": arity1(math.Round),

	// Factorial extended to the reals via the gamma function.
	"fact": arity1(func(x float64) float64 { return math.Gamma(x + 1) }),

	"max": arity2(math.Max),
	"min": arity2(math.Min),
}

// BuiltinNames returns the names in the built-in function table in sorted
// order.
func BuiltinNames() []string {
	return slices.Sorted(maps.Keys(builtins))
}
