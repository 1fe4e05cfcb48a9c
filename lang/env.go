package lang

import (
	"maps"
	"math"
	"slices"
)

// Function is a user-defined single-parameter function: a parameter name
// and an unevaluated body tree.
type Function struct {
	Param string
	Body  Expr
}

// Env is the mutable state threaded through evaluation: a variable table
// and a function table. The two namespaces are independent; a name may be
// bound in both at once. An Env is owned exclusively by one evaluation
// loop and is not safe for concurrent use.
type Env struct {
	vars  map[string]float64
	funcs map[string]Function
}

// NewEnv creates an empty environment. One Env instance lives for an
// entire session; Assign and FuncDef statements mutate it in place.
func NewEnv() *Env {
	return &Env{
		vars:  make(map[string]float64),
		funcs: make(map[string]Function),
	}
}

// Var returns the value bound to name in the variable table.
func (e *Env) Var(name string) (float64, bool) {
	v, ok := e.vars[name]

	return v, ok
}

// SetVar binds name to val, overwriting any prior binding.
func (e *Env) SetVar(name string, val float64) {
	e.vars[name] = val
}

// Func returns the user function bound to name.
func (e *Env) Func(name string) (Function, bool) {
	fn, ok := e.funcs[name]

	return fn, ok
}

// SetFunc binds name to fn, overwriting any prior definition.
func (e *Env) SetFunc(name string, fn Function) {
	e.funcs[name] = fn
}

// VarNames returns the bound variable names in sorted order.
func (e *Env) VarNames() []string {
	return slices.Sorted(maps.Keys(e.vars))
}

// FuncNames returns the defined function names in sorted order.
func (e *Env) FuncNames() []string {
	return slices.Sorted(maps.Keys(e.funcs))
}

// callEnv builds the transient call-local environment for one user-function
// invocation: a snapshot of the caller's variables with the parameter bound
// to the evaluated argument. The function table is shared by reference and
// must not be mutated through the returned Env mid-call; the calc grammar
// cannot express such a mutation, since definitions are statements and a
// function body is an expression.
func (e *Env) callEnv(param string, arg float64) *Env {
	vars := maps.Clone(e.vars)
	vars[param] = arg

	return &Env{vars: vars, funcs: e.funcs}
}

// reserved holds the constants resolved ahead of the variable table.
// Assigning to these names succeeds but can never shadow them.
//
//nolint:gochecknoglobals
var reserved = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// constants holds the named constants resolved after the variable table,
// so an assignment to one of these names shadows it.
//
//nolint:gochecknoglobals
var constants = map[string]float64{
	"tau": 2 * math.Pi,
	"inf": math.Inf(1),
	"nan": math.NaN(),
}

// ConstantNames returns every constant name, reserved or shadowable, in
// sorted order.
func ConstantNames() []string {
	names := slices.Collect(maps.Keys(reserved))
	names = slices.AppendSeq(names, maps.Keys(constants))
	slices.Sort(names)

	return names
}
