package syntax

import "fentc/common"

// binaryOperators maps each binary operator token kind to its operator.
var binaryOperators = map[int]common.BinaryOperator{
	TOK_PLUS:  common.OpAdd,
	TOK_MINUS: common.OpSub,
	TOK_STAR:  common.OpMul,
	TOK_DIV:   common.OpDiv,
	TOK_MOD:   common.OpMod,
	TOK_AND:   common.OpAnd,
	TOK_OR:    common.OpOr,
	TOK_NOR:   common.OpNor,
	TOK_LT:    common.OpLess,
	TOK_LTEQ:  common.OpLessOrEqual,
	TOK_GT:    common.OpGreater,
	TOK_GTEQ:  common.OpGreaterOrEqual,
	TOK_EQ:    common.OpEquals,
	TOK_NEQ:   common.OpNotEquals,
}

// BinaryOperatorOf converts a token kind into the binary operator it spells.
// It fails with common.ErrNotBinaryOperator for every other token kind.
func BinaryOperatorOf(kind int) (common.BinaryOperator, error) {
	if op, ok := binaryOperators[kind]; ok {
		return op, nil
	}

	return 0, common.ErrNotBinaryOperator
}

// UnaryOperatorOf converts a token kind into the prefix operator it spells.
func UnaryOperatorOf(kind int) (common.UnaryOperator, error) {
	switch kind {
	case TOK_MINUS:
		return common.OpNeg, nil
	case TOK_NOT:
		return common.OpNot, nil
	default:
		return 0, common.ErrNotUnaryOperator
	}
}
