package evaluator

import "tinylisp/internal/object"

// funcDef binds names in the global environment.
func funcDef(env *object.Environment, name string, args []object.Value) object.Value {
	return bindNames(name, args, env.Define)
}

// funcPut binds names in the calling environment only.
func funcPut(env *object.Environment, name string, args []object.Value) object.Value {
	return bindNames(name, args, env.Put)
}

func bindNames(name string, args []object.Value, bind func(string, object.Value)) object.Value {
	if len(args) == 0 {
		return object.NewError(object.ARITY_MISMATCH, "Function '%s' passed no arguments!", name)
	}
	names, err := qexprArg(name, args, 0)
	if err != nil {
		return err
	}

	for _, cell := range names.Cells {
		if _, ok := cell.(*object.Symbol); !ok {
			return object.NewError(object.NON_SYMBOL_IN_NAMES,
				"Function '%s' cannot define non-symbol. Got %s, Expected %s.",
				name, cell.Type(), object.SYMBOL_VAL)
		}
	}

	values := args[1:]
	if len(names.Cells) != len(values) {
		return object.NewError(object.ARITY_MISMATCH,
			"Function '%s' passed incorrect number of values to symbols. Got %d, Expected %d.",
			name, len(values), len(names.Cells))
	}

	for i, cell := range names.Cells {
		bind(cell.(*object.Symbol).Name, values[i])
	}
	return &object.SExpression{}
}

// funcLambda builds a closure from a formals list and a body.
func funcLambda(env *object.Environment, name string, args []object.Value) object.Value {
	if len(args) != 2 {
		return arityError(name, len(args), 2)
	}
	formals, err := qexprArg(name, args, 0)
	if err != nil {
		return err
	}
	body, err := qexprArg(name, args, 1)
	if err != nil {
		return err
	}
	if err := validateFormals(formals); err != nil {
		return err
	}

	return &object.Closure{
		Formals: formals,
		Body:    body,
		Env:     object.NewEnvironment(),
	}
}

// validateFormals requires symbols only, with '&' at most once and only in
// second to last position.
func validateFormals(formals *object.QExpression) *object.Error {
	for i, cell := range formals.Cells {
		sym, ok := cell.(*object.Symbol)
		if !ok {
			return nonSymbolFormal(cell)
		}
		if sym.Name == object.VariadicMarker && i != len(formals.Cells)-2 {
			return malformedVariadic()
		}
	}
	return nil
}
