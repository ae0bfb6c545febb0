package evaluator

import (
	"fmt"
	"log/slog"
	"tinylisp/internal/object"
)

// Eval reduces v in env. Errors are returned as *object.Error values.
func Eval(env *object.Environment, v object.Value) object.Value {
	switch v := v.(type) {
	case *object.Symbol:
		return env.Get(v.Name)

	case *object.SExpression:
		return evalSExpression(env, v)

	case *object.Integer, *object.Float, *object.Error, *object.QExpression,
		*object.Builtin, *object.Closure:
		return v

	default:
		panic(fmt.Sprintf("eval: unhandled value variant %T", v))
	}
}

func evalSExpression(env *object.Environment, sexpr *object.SExpression) object.Value {
	cells := make([]object.Value, len(sexpr.Cells))
	for i, cell := range sexpr.Cells {
		cells[i] = Eval(env, cell)
	}

	for _, cell := range cells {
		if object.IsError(cell) {
			return cell
		}
	}

	switch len(cells) {
	case 0:
		return sexpr
	case 1:
		return cells[0]
	}

	fn, ok := cells[0].(object.Function)
	if !ok {
		return object.NewError(object.NOT_A_FUNCTION,
			"S-Expression starts with incorrect type. Got %s, Expected %s.",
			cells[0].Type(), object.FUNCTION_VAL)
	}

	return Apply(env, fn, cells[1:])
}

// Apply calls f with already evaluated args. env is the calling environment.
func Apply(env *object.Environment, f object.Function, args []object.Value) object.Value {
	switch fn := f.(type) {
	case *object.Builtin:
		return callBuiltin(env, fn, args)
	case *object.Closure:
		return applyClosure(env, fn, args)
	default:
		panic(fmt.Sprintf("apply: unhandled function variant %T", f))
	}
}

func applyClosure(env *object.Environment, fn *object.Closure, args []object.Value) object.Value {
	// bindings accumulate in a private copy; fn itself is left untouched
	callEnv := fn.Env.Copy()
	if callEnv == nil {
		callEnv = object.NewEnvironment()
	}
	formals := fn.Formals.Copy().(*object.QExpression).Cells

	given, total := len(args), len(formals)

	for len(args) > 0 {
		if len(formals) == 0 {
			return object.NewError(object.ARITY_MISMATCH,
				"Function passed too many arguments. Got %d, Expected %d.", given, total)
		}

		name, ok := formalName(formals[0])
		if !ok {
			return nonSymbolFormal(formals[0])
		}
		formals = formals[1:]

		if name == object.VariadicMarker {
			if len(formals) != 1 {
				return malformedVariadic()
			}
			rest, ok := formalName(formals[0])
			if !ok {
				return nonSymbolFormal(formals[0])
			}
			formals = formals[1:]
			callEnv.Put(rest, &object.QExpression{Cells: args})
			args = nil
			break
		}

		callEnv.Put(name, args[0])
		args = args[1:]
	}

	if len(formals) > 0 {
		if name, _ := formalName(formals[0]); name == object.VariadicMarker {
			if len(formals) != 2 {
				return malformedVariadic()
			}
			rest, ok := formalName(formals[1])
			if !ok {
				return nonSymbolFormal(formals[1])
			}
			callEnv.Put(rest, &object.QExpression{})
			formals = nil
		}
	}

	if len(formals) > 0 {
		slog.Debug("partial application",
			slog.Int("given", given),
			slog.Int("remaining", len(formals)))
		return &object.Closure{
			Formals: &object.QExpression{Cells: formals},
			Body:    fn.Body.Copy().(*object.QExpression),
			Env:     callEnv,
		}
	}

	callEnv.Parent = env
	slog.Debug("applying closure",
		slog.Uint64("env", callEnv.ID),
		slog.Int("args", given))

	body := fn.Body.Copy().(*object.QExpression)
	return Eval(callEnv, &object.SExpression{Cells: body.Cells})
}

func formalName(v object.Value) (string, bool) {
	sym, ok := v.(*object.Symbol)
	if !ok {
		return "", false
	}
	return sym.Name, true
}

func nonSymbolFormal(v object.Value) *object.Error {
	return object.NewError(object.NON_SYMBOL_IN_NAMES,
		"Cannot define non-symbol. Got %s, Expected %s.", v.Type(), object.SYMBOL_VAL)
}

func malformedVariadic() *object.Error {
	return object.NewError(object.MALFORMED_VARIADIC_FORMAL,
		"Function format invalid. Symbol '&' not followed by single symbol.")
}
