// Package lang implements the calc language: single-line statements parsed
// into an expression tree and evaluated against a mutable environment of
// float64 variables and single-parameter user functions.
//
// # Grammar
//
// The grammar is declared declaratively with participle struct tags and
// consumed by a generated recursive parser. Precedence low to high, all
// binary levels left-associative, unary binds tighter than any binary
// operator:
//
//	statement     → function_def | assignment | print_stmt | expression
//	print_stmt    → "print" expression
//	assignment    → ident "=" expression
//	function_def  → ident "(" ident ")" "=" expression
//	expression    → sum
//	sum           → product ( ("+"|"-") product )*
//	product       → power ( ("*"|"/") power )*
//	power         → unary ( "^" unary )*
//	unary         → ("+"|"-")? primary
//	primary       → number | function_call | ident | "(" expression ")"
//	function_call → ident "(" expression ("," expression)* ")"
//
// Note that "^" is left-associative: a^b^c parses as (a^b)^c. Every binary
// level folds left with the identical construction, and exponentiation is
// deliberately not special-cased.
//
// # Evaluation
//
// Statements are evaluated one at a time against an [Env]:
//
//	env := lang.NewEnv()
//	ev := lang.NewEvaluator(lang.WithOutput(os.Stdout))
//
//	stmt, err := lang.Parse("f(x) = x * 2")
//	val, err := ev.Eval(ctx, stmt, env)
//
// Assignments and function definitions mutate the environment in place.
// Each user-function call evaluates the body in a transient call-local
// environment: a snapshot of the caller's variables with the parameter
// bound to the evaluated argument. The function table is shared by
// reference, so user functions can call other user functions, but no
// closure over later caller bindings exists.
//
// # Name resolution
//
// The reserved constants pi and e resolve ahead of the variable table and
// cannot be shadowed by assignment. The named constants tau, inf, and nan
// resolve after the variable table and can be shadowed. Call names resolve
// to user functions first, then to the built-in table; defining f(x) with
// the name of a built-in shadows that built-in.
//
// # Limits
//
// There is no recursion depth limit beyond the native call stack. A user
// function that recurses without bound exhausts the stack and crashes the
// process; this is a documented resource limit, not a recoverable error.
package lang
