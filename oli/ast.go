package oli

import (
	"fmt"
	"strconv"
)

// Expression is the closed set of expression node shapes. The parser
// builds the tree bottom-up and never mutates a node after constructing
// it; each composite node exclusively owns its children.
type Expression interface {
	exprNode()
	String() string
}

// ValueKind discriminates the payload of a literal expression.
type ValueKind int

const (
	ValueNumber ValueKind = iota
	ValueString
	ValueTrue
	ValueFalse
	ValueNil
)

// LiteralValue is the value carried by a literal expression node: one of
// number, string, true, false, or nil.
type LiteralValue struct {
	Kind   ValueKind
	Number float64
	Text   string
}

func (v LiteralValue) String() string {
	switch v.Kind {
	case ValueNumber:
		return formatNumber(v.Number)
	case ValueString:
		return v.Text
	case ValueTrue:
		return "True"
	case ValueFalse:
		return "False"
	default:
		return "Nil"
	}
}

type LiteralExpr struct {
	Value LiteralValue
}

func (e *LiteralExpr) exprNode()      {}
func (e *LiteralExpr) String() string { return e.Value.String() }

// GroupingExpr records that its inner expression was parenthesized. The
// parser has already resolved precedence structurally; the node exists
// so the rendering stays lossless.
type GroupingExpr struct {
	Expr Expression
}

func (e *GroupingExpr) exprNode()      {}
func (e *GroupingExpr) String() string { return fmt.Sprintf("(group %s)", e.Expr) }

type UnaryExpr struct {
	Operator Token
	Right    Expression
}

func (e *UnaryExpr) exprNode() {}
func (e *UnaryExpr) String() string {
	return fmt.Sprintf("(%s %s)", e.Operator.Lexeme, e.Right)
}

// BinaryExpr is an infix operation, already left-associated by the
// parser.
type BinaryExpr struct {
	Left     Expression
	Operator Token
	Right    Expression
}

func (e *BinaryExpr) exprNode() {}
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Operator.Lexeme, e.Left, e.Right)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
