package lang

// Expr is the expression tree produced by [Parse]. A tree is immutable once
// built: each node exclusively owns its children, and a tree is produced
// once per input line and discarded after evaluation.
//
// The statement forms ([Assign], [FuncDef], [Print]) are ordinary tree
// variants that the parser only ever produces at the root.
type Expr interface {
	exprNode()
}

// Number is a numeric literal. The literal itself is unsigned; a leading
// sign belongs to the enclosing [Unary].
type Number struct {
	Value float64
}

// Variable is a reference to a variable or named constant.
type Variable struct {
	Name string
}

// Unary applies a prefix "+" or "-" to its operand. The parser does not
// produce a Unary node for unsigned operands.
type Unary struct {
	Op      string
	Operand Expr
}

// Binary applies one of "+", "-", "*", "/", "^" to its operands.
type Binary struct {
	Op    string
	Left  Expr
	Right Expr
}

// Call invokes a user-defined or built-in function by name.
type Call struct {
	Name string
	Args []Expr
}

// Assign binds the evaluated value to a variable name.
type Assign struct {
	Name  string
	Value Expr
}

// FuncDef binds a single-parameter function body to a name. The body is
// not evaluated at definition time.
type FuncDef struct {
	Name  string
	Param string
	Body  Expr
}

// Print evaluates its inner expression and writes the value to the
// evaluator's output sink.
type Print struct {
	Inner Expr
}

func (*Number) exprNode()   {}
func (*Variable) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Call) exprNode()     {}
func (*Assign) exprNode()   {}
func (*FuncDef) exprNode()  {}
func (*Print) exprNode()    {}
