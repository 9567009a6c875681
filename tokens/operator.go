package tokens

import "fmt"

type Operator uint8

const (
	OperatorAssignment Operator = iota + 1
	OperatorEqualTo
	OperatorAddition
	OperatorIncrement
	OperatorAdditionAssignment
	OperatorSubtraction
	OperatorDecrement
	OperatorSubtractionAssignment
	OperatorLambda
	OperatorMultiplication
	OperatorMultiplicationAssignment
	OperatorDivision
	OperatorDivisionAssignment
	OperatorRemainder
	OperatorRemainderAssignment
	OperatorBitwiseAnd
	OperatorLogicalAnd
	OperatorBitwiseAndAssignment
	OperatorBitwiseIor
	OperatorLogicalIor
	OperatorBitwiseIorAssignment
	OperatorBitwiseXor
	OperatorBitwiseXorAssignment
	OperatorBitwiseComplement
	OperatorLogicalComplement
	OperatorNotEqualTo
	OperatorLessThan
	OperatorLessThanOrEqualTo
	OperatorLeftShift
	OperatorLeftShiftAssignment
	OperatorGreaterThan
	OperatorGreaterThanOrEqualTo
	OperatorRightShift
	OperatorRightShiftAssignment
	OperatorUnsignedRightShift
	OperatorUnsignedRightShiftAssignment
	OperatorTernaryQuestion
	OperatorTernaryColon
	numOperators
)

var operatorSpellings = [numOperators]string{
	OperatorAssignment:                   "=",
	OperatorEqualTo:                      "==",
	OperatorAddition:                     "+",
	OperatorIncrement:                    "++",
	OperatorAdditionAssignment:           "+=",
	OperatorSubtraction:                  "-",
	OperatorDecrement:                    "--",
	OperatorSubtractionAssignment:        "-=",
	OperatorLambda:                       "->",
	OperatorMultiplication:               "*",
	OperatorMultiplicationAssignment:     "*=",
	OperatorDivision:                     "/",
	OperatorDivisionAssignment:           "/=",
	OperatorRemainder:                    "%",
	OperatorRemainderAssignment:          "%=",
	OperatorBitwiseAnd:                   "&",
	OperatorLogicalAnd:                   "&&",
	OperatorBitwiseAndAssignment:         "&=",
	OperatorBitwiseIor:                   "|",
	OperatorLogicalIor:                   "||",
	OperatorBitwiseIorAssignment:         "|=",
	OperatorBitwiseXor:                   "^",
	OperatorBitwiseXorAssignment:         "^=",
	OperatorBitwiseComplement:            "~",
	OperatorLogicalComplement:            "!",
	OperatorNotEqualTo:                   "!=",
	OperatorLessThan:                     "<",
	OperatorLessThanOrEqualTo:            "<=",
	OperatorLeftShift:                    "<<",
	OperatorLeftShiftAssignment:          "<<=",
	OperatorGreaterThan:                  ">",
	OperatorGreaterThanOrEqualTo:         ">=",
	OperatorRightShift:                   ">>",
	OperatorRightShiftAssignment:         ">>=",
	OperatorUnsignedRightShift:           ">>>",
	OperatorUnsignedRightShiftAssignment: ">>>=",
	OperatorTernaryQuestion:              "?",
	OperatorTernaryColon:                 ":",
}

var operatorNames = [numOperators]string{
	OperatorAssignment:                   "ASSIGNMENT",
	OperatorEqualTo:                      "EQUAL_TO",
	OperatorAddition:                     "ADDITION",
	OperatorIncrement:                    "INCREMENT",
	OperatorAdditionAssignment:           "ADDITION_ASSIGNMENT",
	OperatorSubtraction:                  "SUBTRACTION",
	OperatorDecrement:                    "DECREMENT",
	OperatorSubtractionAssignment:        "SUBTRACTION_ASSIGNMENT",
	OperatorLambda:                       "LAMBDA",
	OperatorMultiplication:               "MULTIPLICATION",
	OperatorMultiplicationAssignment:     "MULTIPLICATION_ASSIGNMENT",
	OperatorDivision:                     "DIVISION",
	OperatorDivisionAssignment:           "DIVISION_ASSIGNMENT",
	OperatorRemainder:                    "REMAINDER",
	OperatorRemainderAssignment:          "REMAINDER_ASSIGNMENT",
	OperatorBitwiseAnd:                   "BITWISE_AND",
	OperatorLogicalAnd:                   "LOGICAL_AND",
	OperatorBitwiseAndAssignment:         "BITWISE_AND_ASSIGNMENT",
	OperatorBitwiseIor:                   "BITWISE_IOR",
	OperatorLogicalIor:                   "LOGICAL_IOR",
	OperatorBitwiseIorAssignment:         "BITWISE_IOR_ASSIGNMENT",
	OperatorBitwiseXor:                   "BITWISE_XOR",
	OperatorBitwiseXorAssignment:         "BITWISE_XOR_ASSIGNMENT",
	OperatorBitwiseComplement:            "BITWISE_COMPLEMENT",
	OperatorLogicalComplement:            "LOGICAL_COMPLEMENT",
	OperatorNotEqualTo:                   "NOT_EQUAL_TO",
	OperatorLessThan:                     "LESS_THAN",
	OperatorLessThanOrEqualTo:            "LESS_THAN_OR_EQUAL_TO",
	OperatorLeftShift:                    "LEFT_SHIFT",
	OperatorLeftShiftAssignment:          "LEFT_SHIFT_ASSIGNMENT",
	OperatorGreaterThan:                  "GREATER_THAN",
	OperatorGreaterThanOrEqualTo:         "GREATER_THAN_OR_EQUAL_TO",
	OperatorRightShift:                   "RIGHT_SHIFT",
	OperatorRightShiftAssignment:         "RIGHT_SHIFT_ASSIGNMENT",
	OperatorUnsignedRightShift:           "UNSIGNED_RIGHT_SHIFT",
	OperatorUnsignedRightShiftAssignment: "UNSIGNED_RIGHT_SHIFT_ASSIGNMENT",
	OperatorTernaryQuestion:              "TERNARY1",
	OperatorTernaryColon:                 "TERNARY2",
}

var operators = func() map[string]Operator {
	ret := make(map[string]Operator, numOperators)
	for v := OperatorAssignment; v < numOperators; v++ {
		ret[operatorSpellings[v]] = v
	}
	return ret
}()

// maxOperatorLen is the length in characters of the longest spelling.
var maxOperatorLen = func() int {
	ret := 0
	for v := OperatorAssignment; v < numOperators; v++ {
		ret = max(ret, len(operatorSpellings[v]))
	}
	return ret
}()

// LookupOperator matches the exact spelling; prefixes of longer operators match their own entry.
func LookupOperator(spelling string) (Operator, bool) {
	v, ok := operators[spelling]
	return v, ok
}

func MaxOperatorLen() int {
	return maxOperatorLen
}

func Operators() []Operator {
	ret := make([]Operator, 0, numOperators-1)
	for v := OperatorAssignment; v < numOperators; v++ {
		ret = append(ret, v)
	}
	return ret
}

// String returns the spelling.
func (o Operator) String() string {
	if o >= OperatorAssignment && o < numOperators {
		return operatorSpellings[o]
	}
	return fmt.Sprintf("Operator(%d)", o)
}

func (o Operator) Name() string {
	if o >= OperatorAssignment && o < numOperators {
		return operatorNames[o]
	}
	return o.String()
}
