package evaluator

import (
	"log/slog"
	"tinylisp/internal/object"
)

const (
	OpAdd object.BuiltinOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpMin
	OpMax

	// list functions
	OpList
	OpHead
	OpTail
	OpEval
	OpJoin
	OpCons
	OpLen
	OpInit

	// definition functions
	OpDef
	OpPut
	OpLambda

	opCount
)

// builtinNames holds the canonical name each op is registered under.
var builtinNames = [opCount]string{
	OpAdd:    "+",
	OpSub:    "-",
	OpMul:    "*",
	OpDiv:    "/",
	OpMod:    "%",
	OpPow:    "^",
	OpMin:    "min",
	OpMax:    "max",
	OpList:   "list",
	OpHead:   "head",
	OpTail:   "tail",
	OpEval:   "eval",
	OpJoin:   "join",
	OpCons:   "cons",
	OpLen:    "len",
	OpInit:   "init",
	OpDef:    "def",
	OpPut:    "=",
	OpLambda: "\\",
}

type builtinFn func(env *object.Environment, name string, args []object.Value) object.Value

// filled in by init: several entries call back into Eval
var builtins [opCount]builtinFn

func init() {
	builtins = [opCount]builtinFn{
		OpAdd: arithmetic(OpAdd),
		OpSub: arithmetic(OpSub),
		OpMul: arithmetic(OpMul),
		OpDiv: arithmetic(OpDiv),
		OpMod: arithmetic(OpMod),
		OpPow: arithmetic(OpPow),
		OpMin: arithmetic(OpMin),
		OpMax: arithmetic(OpMax),

		OpList: funcList,
		OpHead: funcHead,
		OpTail: funcTail,
		OpEval: funcEval,
		OpJoin: funcJoin,
		OpCons: funcCons,
		OpLen:  funcLen,
		OpInit: funcInit,

		OpDef:    funcDef,
		OpPut:    funcPut,
		OpLambda: funcLambda,
	}
}

// NewGlobalEnvironment returns a root environment with every builtin bound
// under its canonical name.
func NewGlobalEnvironment() *object.Environment {
	env := object.NewEnvironment()
	for op := object.BuiltinOp(0); op < opCount; op++ {
		env.Put(builtinNames[op], &object.Builtin{Op: op, Name: builtinNames[op]})
	}
	return env
}

func callBuiltin(env *object.Environment, b *object.Builtin, args []object.Value) object.Value {
	if b.Op < 0 || b.Op >= opCount || builtins[b.Op] == nil {
		return object.NewError(object.UNKNOWN_OPERATION, "Unknown Function '%s'", b.Name)
	}
	name := builtinNames[b.Op]
	slog.Debug("calling builtin", slog.String("name", name), slog.Int("args", len(args)))
	return builtins[b.Op](env, name, args)
}

func arityError(name string, got, want int) *object.Error {
	return object.NewError(object.ARITY_MISMATCH,
		"Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
		name, got, want)
}

func typeError(name string, index int, got, want object.ValueType) *object.Error {
	return object.NewError(object.TYPE_MISMATCH,
		"Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.",
		name, index, got, want)
}

func emptyError(name string) *object.Error {
	return object.NewError(object.EMPTY_CONTAINER_ACCESS, "Function '%s' passed {}!", name)
}

// qexprArg checks that args[index] is a Q-Expression.
func qexprArg(name string, args []object.Value, index int) (*object.QExpression, *object.Error) {
	q, ok := args[index].(*object.QExpression)
	if !ok {
		return nil, typeError(name, index, args[index].Type(), object.QEXPR_VAL)
	}
	return q, nil
}
