package object

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

type ValueType string

const (
	INTEGER_VAL  ValueType = "Integer"
	FLOAT_VAL    ValueType = "Float"
	ERROR_VAL    ValueType = "Error"
	SYMBOL_VAL   ValueType = "Symbol"
	SEXPR_VAL    ValueType = "S-Expression"
	QEXPR_VAL    ValueType = "Q-Expression"
	FUNCTION_VAL ValueType = "Function"
)

// VariadicMarker in a formals list collects the remaining arguments into the
// single symbol that follows it.
const VariadicMarker = "&"

// Value is the closed set of runtime data. The unexported marker keeps
// implementations inside this package, so every type switch over Value can
// list all variants and panic on anything else.
type Value interface {
	Type() ValueType
	Inspect() string
	// Copy returns a value sharing no mutable structure with the receiver.
	Copy() Value
	value()
}

// Function is implemented by Builtin and Closure.
type Function interface {
	Value
	function()
}

type Integer struct {
	Value int64
}

func (i *Integer) Type() ValueType { return INTEGER_VAL }
func (i *Integer) Inspect() string { return strconv.FormatInt(i.Value, 10) }
func (i *Integer) Copy() Value     { return &Integer{Value: i.Value} }
func (i *Integer) value()          {}

type Float struct {
	Value float64
}

func (f *Float) Type() ValueType { return FLOAT_VAL }
func (f *Float) Inspect() string { return fmt.Sprintf("%f", f.Value) }
func (f *Float) Copy() Value     { return &Float{Value: f.Value} }
func (f *Float) value()          {}

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Type() ValueType { return ERROR_VAL }
func (e *Error) Inspect() string { return "Error: " + e.Message }
func (e *Error) Copy() Value     { return &Error{Kind: e.Kind, Message: e.Message} }
func (e *Error) value()          {}

type Symbol struct {
	Name string
}

func (s *Symbol) Type() ValueType { return SYMBOL_VAL }
func (s *Symbol) Inspect() string { return s.Name }
func (s *Symbol) Copy() Value     { return &Symbol{Name: s.Name} }
func (s *Symbol) value()          {}

// SExpression is code awaiting evaluation.
type SExpression struct {
	Cells []Value
}

func (s *SExpression) Type() ValueType { return SEXPR_VAL }
func (s *SExpression) Inspect() string { return inspectCells('(', s.Cells, ')') }
func (s *SExpression) Copy() Value     { return &SExpression{Cells: copyCells(s.Cells)} }
func (s *SExpression) value()          {}

// QExpression holds the same cells as an SExpression but is never reduced
// implicitly.
type QExpression struct {
	Cells []Value
}

func (q *QExpression) Type() ValueType { return QEXPR_VAL }
func (q *QExpression) Inspect() string { return inspectCells('{', q.Cells, '}') }
func (q *QExpression) Copy() Value     { return &QExpression{Cells: copyCells(q.Cells)} }
func (q *QExpression) value()          {}

// BuiltinOp identifies a primitive operation; the evaluator owns the table
// mapping each op to its implementation.
type BuiltinOp int

type Builtin struct {
	Op   BuiltinOp
	Name string
}

func (b *Builtin) Type() ValueType { return FUNCTION_VAL }
func (b *Builtin) Inspect() string { return "<builtin>" }
func (b *Builtin) Copy() Value     { return &Builtin{Op: b.Op, Name: b.Name} }
func (b *Builtin) value()          {}
func (b *Builtin) function()       {}

// Closure is a user-defined function. Env holds the arguments bound so far
// by partial application.
type Closure struct {
	Formals *QExpression
	Body    *QExpression
	Env     *Environment
}

func (c *Closure) Type() ValueType { return FUNCTION_VAL }
func (c *Closure) Inspect() string {
	var out bytes.Buffer

	out.WriteString("(\\ ")
	out.WriteString(c.Formals.Inspect())
	out.WriteString(" ")
	out.WriteString(c.Body.Inspect())
	out.WriteString(")")

	return out.String()
}
func (c *Closure) Copy() Value {
	return &Closure{
		Formals: c.Formals.Copy().(*QExpression),
		Body:    c.Body.Copy().(*QExpression),
		Env:     c.Env.Copy(),
	}
}
func (c *Closure) value()    {}
func (c *Closure) function() {}

func copyCells(cells []Value) []Value {
	if cells == nil {
		return nil
	}
	out := make([]Value, len(cells))
	for i, c := range cells {
		out[i] = c.Copy()
	}
	return out
}

func inspectCells(open byte, cells []Value, close byte) string {
	var out bytes.Buffer

	elements := make([]string, 0, len(cells))
	for _, c := range cells {
		elements = append(elements, c.Inspect())
	}

	out.WriteByte(open)
	out.WriteString(strings.Join(elements, " "))
	out.WriteByte(close)

	return out.String()
}

func IsError(v Value) bool {
	if v != nil {
		return v.Type() == ERROR_VAL
	}
	return false
}
