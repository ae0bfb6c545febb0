package evaluator

import (
	"math"
	"tinylisp/internal/object"
)

const numberType object.ValueType = "Number"

// arithmetic folds op left to right over its arguments. A single argument to
// '-' is negated.
func arithmetic(op object.BuiltinOp) builtinFn {
	return func(env *object.Environment, name string, args []object.Value) object.Value {
		if len(args) == 0 {
			return object.NewError(object.ARITY_MISMATCH, "Function '%s' passed no arguments!", name)
		}
		for i, arg := range args {
			switch arg.(type) {
			case *object.Integer, *object.Float:
			default:
				return typeError(name, i, arg.Type(), numberType)
			}
		}

		if op == OpSub && len(args) == 1 {
			return negate(args[0])
		}

		acc := args[0]
		for _, arg := range args[1:] {
			acc = binaryOp(op, acc, arg)
			if object.IsError(acc) {
				return acc
			}
		}
		return acc
	}
}

func negate(v object.Value) object.Value {
	switch v := v.(type) {
	case *object.Integer:
		return &object.Integer{Value: -v.Value}
	case *object.Float:
		return &object.Float{Value: -v.Value}
	default:
		panic("negate: not a number")
	}
}

func binaryOp(op object.BuiltinOp, x, y object.Value) object.Value {
	xi, xInt := x.(*object.Integer)
	yi, yInt := y.(*object.Integer)
	if xInt && yInt {
		return integerOp(op, xi.Value, yi.Value)
	}
	return floatOp(op, toFloat(x), toFloat(y))
}

func toFloat(v object.Value) float64 {
	switch v := v.(type) {
	case *object.Integer:
		return float64(v.Value)
	case *object.Float:
		return v.Value
	default:
		panic("toFloat: not a number")
	}
}

func divisionByZero() *object.Error {
	return object.NewError(object.DIVISION_BY_ZERO, "Division By Zero!")
}

func integerOp(op object.BuiltinOp, x, y int64) object.Value {
	switch op {
	case OpAdd:
		return &object.Integer{Value: x + y}
	case OpSub:
		return &object.Integer{Value: x - y}
	case OpMul:
		return &object.Integer{Value: x * y}
	case OpDiv:
		if y == 0 {
			return divisionByZero()
		}
		return &object.Integer{Value: x / y}
	case OpMod:
		if y == 0 {
			return divisionByZero()
		}
		return &object.Integer{Value: x % y}
	case OpPow:
		return integerPow(x, y)
	case OpMin:
		return &object.Integer{Value: min(x, y)}
	case OpMax:
		return &object.Integer{Value: max(x, y)}
	default:
		return object.NewError(object.UNKNOWN_OPERATION, "Unknown Function '%s'", builtinNames[op])
	}
}

// integerPow raises base to exp by repeated squaring. Negative exponents
// truncate toward zero the way integer division does.
func integerPow(base, exp int64) object.Value {
	if exp < 0 {
		switch base {
		case 0:
			return divisionByZero()
		case 1:
			return &object.Integer{Value: 1}
		case -1:
			if exp%2 == 0 {
				return &object.Integer{Value: 1}
			}
			return &object.Integer{Value: -1}
		default:
			return &object.Integer{Value: 0}
		}
	}

	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		exp >>= 1
		if exp > 0 {
			base *= base
		}
	}
	return &object.Integer{Value: result}
}

func floatOp(op object.BuiltinOp, x, y float64) object.Value {
	switch op {
	case OpAdd:
		return &object.Float{Value: x + y}
	case OpSub:
		return &object.Float{Value: x - y}
	case OpMul:
		return &object.Float{Value: x * y}
	case OpDiv:
		if y == 0 {
			return divisionByZero()
		}
		return &object.Float{Value: x / y}
	case OpMod:
		if y == 0 {
			return divisionByZero()
		}
		return &object.Float{Value: math.Mod(x, y)}
	case OpPow:
		return &object.Float{Value: math.Pow(x, y)}
	case OpMin:
		return &object.Float{Value: math.Min(x, y)}
	case OpMax:
		return &object.Float{Value: math.Max(x, y)}
	default:
		return object.NewError(object.UNKNOWN_OPERATION, "Unknown Function '%s'", builtinNames[op])
	}
}
