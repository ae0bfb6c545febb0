package evaluator

import (
	"strconv"
	"tinylisp/internal/ast"
	"tinylisp/internal/object"
)

// Read converts a parsed tree into values. The program root becomes an
// S-Expression holding each top-level form.
func Read(node *ast.Node) object.Value {
	switch node.Tag {
	case ast.NUMBER:
		n, err := strconv.ParseInt(node.Contents, 10, 64)
		if err != nil {
			return object.NewError(object.INVALID_NUMBER_LITERAL, "invalid number")
		}
		return &object.Integer{Value: n}

	case ast.FLOAT:
		f, err := strconv.ParseFloat(node.Contents, 64)
		if err != nil {
			return object.NewError(object.INVALID_NUMBER_LITERAL, "invalid number")
		}
		return &object.Float{Value: f}

	case ast.SYMBOL:
		return &object.Symbol{Name: node.Contents}

	case ast.PROGRAM, ast.SEXPR:
		return &object.SExpression{Cells: readCells(node)}

	case ast.QEXPR:
		return &object.QExpression{Cells: readCells(node)}

	default:
		return object.NewError(object.TYPE_MISMATCH, "cannot read node tagged '%s'", node.Tag)
	}
}

func readCells(node *ast.Node) []object.Value {
	exprs := node.Expressions()
	cells := make([]object.Value, 0, len(exprs))
	for _, child := range exprs {
		cells = append(cells, Read(child))
	}
	return cells
}
