package lang

import (
	"strconv"
	"strings"
)

// FormatValue renders an evaluation result the way drivers display it:
// the shortest decimal representation that round-trips the float64.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Binding strengths used when rendering a tree back to source text.
// Atoms and calls never need parentheses.
const (
	precSum = iota + 1
	precProduct
	precPower
	precUnary
	precAtom
)

// opPrec returns the binding strength of a binary operator.
func opPrec(op string) int {
	switch op {
	case "+", "-":
		return precSum

	case "*", "/":
		return precProduct

	case "^":
		return precPower

	default:
		return precAtom
	}
}

// prec returns the binding strength of a rendered subtree.
func prec(e Expr) int {
	switch n := e.(type) {
	case *Binary:
		return opPrec(n.Op)

	case *Unary:
		return precUnary

	default:
		return precAtom
	}
}

// Format renders a tree as canonical source text that parses back to the
// same tree. Parentheses are emitted only where a child binds looser than
// its context requires; since every binary level is left-associative, the
// right operand needs them one level earlier than the left.
func Format(e Expr) string {
	switch n := e.(type) {
	case *Number:
		return FormatValue(n.Value)

	case *Variable:
		return n.Name

	case *Unary:
		return n.Op + wrap(n.Operand, precUnary)

	case *Binary:
		p := opPrec(n.Op)

		return wrap(n.Left, p) + " " + n.Op + " " + wrap(n.Right, p+1)

	case *Call:
		args := make([]string, len(n.Args))
		for i, arg := range n.Args {
			args[i] = Format(arg)
		}

		return n.Name + "(" + strings.Join(args, ", ") + ")"

	case *Assign:
		return n.Name + " = " + Format(n.Value)

	case *FuncDef:
		return n.Name + "(" + n.Param + ") = " + Format(n.Body)

	case *Print:
		return "print " + Format(n.Inner)

	default:
		return ""
	}
}

// wrap renders a child subtree, parenthesized when it binds looser than
// the surrounding context.
func wrap(e Expr, minPrec int) string {
	s := Format(e)
	if prec(e) < minPrec {
		return "(" + s + ")"
	}

	return s
}
