package object

import "fmt"

type ErrorKind int

const (
	UNBOUND_SYMBOL ErrorKind = iota
	TYPE_MISMATCH
	ARITY_MISMATCH
	DIVISION_BY_ZERO
	INVALID_NUMBER_LITERAL
	MALFORMED_VARIADIC_FORMAL
	EMPTY_CONTAINER_ACCESS
	NON_SYMBOL_IN_NAMES
	NOT_A_FUNCTION
	UNKNOWN_OPERATION
)

var errorKindNames = [...]string{
	UNBOUND_SYMBOL:            "UnboundSymbol",
	TYPE_MISMATCH:             "TypeMismatch",
	ARITY_MISMATCH:            "ArityMismatch",
	DIVISION_BY_ZERO:          "DivisionByZero",
	INVALID_NUMBER_LITERAL:    "InvalidNumberLiteral",
	MALFORMED_VARIADIC_FORMAL: "MalformedVariadicFormal",
	EMPTY_CONTAINER_ACCESS:    "EmptyContainerAccess",
	NON_SYMBOL_IN_NAMES:       "NonSymbolInFormalsOrNamesList",
	NOT_A_FUNCTION:            "NotAFunction",
	UNKNOWN_OPERATION:         "UnknownOperation",
}

func (k ErrorKind) String() string {
	if k >= 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func NewError(kind ErrorKind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}
