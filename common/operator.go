package common

import "errors"

// BinaryOperator is the semantic kind of a binary operator application.
type BinaryOperator int

// Enumeration of binary operators.
const (
	OpAdd BinaryOperator = iota
	OpSub
	OpMul
	OpDiv
	OpMod

	OpAnd
	OpOr
	OpNor

	OpLess
	OpLessOrEqual
	OpGreater
	OpGreaterOrEqual

	OpEquals
	OpNotEquals
)

// binaryOperatorSpellings maps each binary operator to its canonical text.
var binaryOperatorSpellings = [...]string{
	OpAdd:            "+",
	OpSub:            "-",
	OpMul:            "*",
	OpDiv:            "/",
	OpMod:            "mod",
	OpAnd:            "and",
	OpOr:             "or",
	OpNor:            "nor",
	OpLess:           "<",
	OpLessOrEqual:    "<=",
	OpGreater:        ">",
	OpGreaterOrEqual: ">=",
	OpEquals:         "==",
	OpNotEquals:      "!=",
}

// BinaryOperators returns every binary operator in declaration order.
func BinaryOperators() []BinaryOperator {
	ops := make([]BinaryOperator, len(binaryOperatorSpellings))
	for i := range ops {
		ops[i] = BinaryOperator(i)
	}

	return ops
}

func (op BinaryOperator) String() string {
	if 0 <= op && int(op) < len(binaryOperatorSpellings) {
		return binaryOperatorSpellings[op]
	}

	return "<invalid operator>"
}

// -----------------------------------------------------------------------------

// UnaryOperator is the semantic kind of a prefix operator application.
type UnaryOperator int

// Enumeration of unary operators.
const (
	OpNeg UnaryOperator = iota
	OpNot
)

func (op UnaryOperator) String() string {
	switch op {
	case OpNeg:
		return "-"
	case OpNot:
		return "not"
	default:
		return "<invalid operator>"
	}
}

// -----------------------------------------------------------------------------

// ErrNotBinaryOperator is returned when a token that does not spell a binary
// operator is converted into one.  Seeing this error means the parser asked for
// a conversion it had not checked was valid.
var ErrNotBinaryOperator = errors.New("token is not a binary operator")

// ErrNotUnaryOperator is the unary counterpart of ErrNotBinaryOperator.
var ErrNotUnaryOperator = errors.New("token is not a unary operator")
