package typecheck

import (
	"fmt"

	"github.com/masroof-maindak/nuktah/internal/token"
)

// ErrorKind classifies a type-check failure.
type ErrorKind int

const (
	MismatchedVarDecl ErrorKind = iota
	MismatchedReturn
	NonBooleanCondition
	ArityMismatch
	ArgumentTypeMismatch
	OperandTypeViolation
	BreakOutsideLoop
	GeneralExpressionMismatch
)

// Error is the type checker's classified failure type.
type Error struct {
	Kind ErrorKind
	Name string
	Pos  token.Position
}

func (e *Error) Error() string {
	switch e.Kind {
	case MismatchedVarDecl:
		return fmt.Sprintf("initializer type does not match declared type of %q", e.Name)
	case MismatchedReturn:
		return "return expression type does not match the function's declared return type"
	case NonBooleanCondition:
		return "condition expression is not of type Bool"
	case ArityMismatch:
		return fmt.Sprintf("call to %q has the wrong number of arguments", e.Name)
	case ArgumentTypeMismatch:
		return fmt.Sprintf("call to %q has an argument of the wrong type", e.Name)
	case OperandTypeViolation:
		return "operand type violates the operator's typing rule"
	case BreakOutsideLoop:
		return "break used outside any for-loop"
	case GeneralExpressionMismatch:
		return "expression's operand types do not match"
	default:
		return "type error"
	}
}
