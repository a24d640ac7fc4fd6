package scope

import (
	"fmt"

	"github.com/masroof-maindak/nuktah/internal/token"
)

// ErrorKind classifies a scope-analysis failure.
type ErrorKind int

const (
	UndeclaredVariableCalled ErrorKind = iota
	UndefinedFunctionCalled
	VariableRedefinition
	FunctionPrototypeRedefinition
)

// Error is the scope analyzer's classified failure type.
type Error struct {
	Kind ErrorKind
	Name string
	Pos  token.Position
}

func (e *Error) Error() string {
	switch e.Kind {
	case UndeclaredVariableCalled:
		return fmt.Sprintf("undeclared variable %q referenced", e.Name)
	case UndefinedFunctionCalled:
		return fmt.Sprintf("call to undefined function %q", e.Name)
	case VariableRedefinition:
		return fmt.Sprintf("%q redefined in a visible scope", e.Name)
	case FunctionPrototypeRedefinition:
		return fmt.Sprintf("function %q redefines an existing root-scope name", e.Name)
	default:
		return "scope error"
	}
}
