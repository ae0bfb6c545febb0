package evaluator

import "tinylisp/internal/object"

func funcList(env *object.Environment, name string, args []object.Value) object.Value {
	cells := make([]object.Value, len(args))
	copy(cells, args)
	return &object.QExpression{Cells: cells}
}

// funcHead returns a Q-Expression holding only the first element.
func funcHead(env *object.Environment, name string, args []object.Value) object.Value {
	q, err := singleNonEmpty(name, args)
	if err != nil {
		return err
	}
	return &object.QExpression{Cells: []object.Value{q.Cells[0]}}
}

func funcTail(env *object.Environment, name string, args []object.Value) object.Value {
	q, err := singleNonEmpty(name, args)
	if err != nil {
		return err
	}
	return &object.QExpression{Cells: append([]object.Value(nil), q.Cells[1:]...)}
}

func funcInit(env *object.Environment, name string, args []object.Value) object.Value {
	q, err := singleNonEmpty(name, args)
	if err != nil {
		return err
	}
	return &object.QExpression{Cells: append([]object.Value(nil), q.Cells[:len(q.Cells)-1]...)}
}

func funcLen(env *object.Environment, name string, args []object.Value) object.Value {
	q, err := singleNonEmpty(name, args)
	if err != nil {
		return err
	}
	return &object.Integer{Value: int64(len(q.Cells))}
}

// funcEval evaluates the contents of a Q-Expression as code.
func funcEval(env *object.Environment, name string, args []object.Value) object.Value {
	if len(args) != 1 {
		return arityError(name, len(args), 1)
	}
	q, err := qexprArg(name, args, 0)
	if err != nil {
		return err
	}
	return Eval(env, &object.SExpression{Cells: q.Cells})
}

func funcJoin(env *object.Environment, name string, args []object.Value) object.Value {
	if len(args) == 0 {
		return object.NewError(object.ARITY_MISMATCH, "Function '%s' passed no arguments!", name)
	}

	var cells []object.Value
	for i := range args {
		q, err := qexprArg(name, args, i)
		if err != nil {
			return err
		}
		cells = append(cells, q.Cells...)
	}
	return &object.QExpression{Cells: cells}
}

// funcCons prepends a value to a Q-Expression.
func funcCons(env *object.Environment, name string, args []object.Value) object.Value {
	if len(args) != 2 {
		return arityError(name, len(args), 2)
	}
	q, err := qexprArg(name, args, 1)
	if err != nil {
		return err
	}

	cells := make([]object.Value, 0, len(q.Cells)+1)
	cells = append(cells, args[0])
	cells = append(cells, q.Cells...)
	return &object.QExpression{Cells: cells}
}

func singleNonEmpty(name string, args []object.Value) (*object.QExpression, *object.Error) {
	if len(args) != 1 {
		return nil, arityError(name, len(args), 1)
	}
	q, err := qexprArg(name, args, 0)
	if err != nil {
		return nil, err
	}
	if len(q.Cells) == 0 {
		return nil, emptyError(name)
	}
	return q, nil
}
