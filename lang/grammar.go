package lang

// This file declares the grammar consumed by participle. The exported tree
// in ast.go is deliberately decoupled from these capture structs: the
// grammar encodes how statements read, the lowering methods encode how the
// tree folds (left-associative at every binary level).

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// calcLexer tokenizes one line of source. Identifiers start with a letter
// and continue with letters, digits, or underscores. Number literals are
// unsigned; a leading sign is parsed as a unary operator.
//
//nolint:gochecknoglobals
var calcLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `\d+(?:\.\d+)?(?:[eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[-+*/^=(),]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

// stmtParser is the compiled statement grammar. Lookahead must reach past
// "ident ( ident )" so function definitions diverge from call expressions
// only at the "=" token.
//
//nolint:gochecknoglobals
var stmtParser = participle.MustBuild[statement](
	participle.Lexer(calcLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(8),
)

// statement → function_def | assignment | print_stmt | expression.
type statement struct {
	FuncDef *funcDefStmt `  @@`
	Assign  *assignStmt  `| @@`
	Print   *printStmt   `| @@`
	Expr    *sumExpr     `| @@`
}

// function_def → ident "(" ident ")" "=" expression.
type funcDefStmt struct {
	Name  string   `@Ident "("`
	Param string   `@Ident ")" "="`
	Body  *sumExpr `@@`
}

// assignment → ident "=" expression.
type assignStmt struct {
	Name  string   `@Ident "="`
	Value *sumExpr `@@`
}

// print_stmt → "print" expression.
type printStmt struct {
	Inner *sumExpr `"print" @@`
}

// sum → product ( ("+"|"-") product )*.
type sumExpr struct {
	First *productExpr `@@`
	Rest  []*sumOp     `@@*`
}

type sumOp struct {
	Op      string       `@("+" | "-")`
	Operand *productExpr `@@`
}

// product → power ( ("*"|"/") power )*.
type productExpr struct {
	First *powerExpr   `@@`
	Rest  []*productOp `@@*`
}

type productOp struct {
	Op      string     `@("*" | "/")`
	Operand *powerExpr `@@`
}

// power → unary ( "^" unary )*. Folding left like every other binary level
// makes "^" left-associative: a^b^c is (a^b)^c.
type powerExpr struct {
	First *unaryExpr `@@`
	Rest  []*powerOp `@@*`
}

type powerOp struct {
	Op      string     `@"^"`
	Operand *unaryExpr `@@`
}

// unary → ("+"|"-")? primary.
type unaryExpr struct {
	Op      string       `@("+" | "-")?`
	Operand *primaryExpr `@@`
}

// primary → number | function_call | ident | "(" expression ")".
type primaryExpr struct {
	Number *float64  `  @Number`
	Call   *callExpr `| @@`
	Ident  *string   `| @Ident`
	Paren  *sumExpr  `| "(" @@ ")"`
}

// function_call → ident "(" expression ("," expression)* ")".
type callExpr struct {
	Name string     `@Ident "("`
	Args []*sumExpr `@@ ("," @@)* ")"`
}

// lower converts the capture tree into the exported expression tree.
func (s *statement) lower() Expr {
	switch {
	case s.FuncDef != nil:
		return &FuncDef{
			Name:  s.FuncDef.Name,
			Param: s.FuncDef.Param,
			Body:  s.FuncDef.Body.lower(),
		}

	case s.Assign != nil:
		return &Assign{
			Name:  s.Assign.Name,
			Value: s.Assign.Value.lower(),
		}

	case s.Print != nil:
		return &Print{Inner: s.Print.Inner.lower()}

	default:
		return s.Expr.lower()
	}
}

func (s *sumExpr) lower() Expr {
	acc := s.First.lower()
	for _, op := range s.Rest {
		acc = &Binary{Op: op.Op, Left: acc, Right: op.Operand.lower()}
	}

	return acc
}

func (p *productExpr) lower() Expr {
	acc := p.First.lower()
	for _, op := range p.Rest {
		acc = &Binary{Op: op.Op, Left: acc, Right: op.Operand.lower()}
	}

	return acc
}

func (p *powerExpr) lower() Expr {
	acc := p.First.lower()
	for _, op := range p.Rest {
		acc = &Binary{Op: op.Op, Left: acc, Right: op.Operand.lower()}
	}

	return acc
}

func (u *unaryExpr) lower() Expr {
	operand := u.Operand.lower()
	if u.Op == "" {
		// Unsigned operands degrade transparently to the primary.
		return operand
	}

	return &Unary{Op: u.Op, Operand: operand}
}

func (p *primaryExpr) lower() Expr {
	switch {
	case p.Number != nil:
		return &Number{Value: *p.Number}

	case p.Call != nil:
		args := make([]Expr, len(p.Call.Args))
		for i, arg := range p.Call.Args {
			args[i] = arg.lower()
		}

		return &Call{Name: p.Call.Name, Args: args}

	case p.Ident != nil:
		return &Variable{Name: *p.Ident}

	default:
		return p.Paren.lower()
	}
}
