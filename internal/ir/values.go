package ir

import "fmt"

// Value is an IR operand: an integer, float, string, or boolean literal,
// or a name (a variable or a compiler-generated temporary). Mirrors the
// ast package's tagged-sum style rather than a single struct with a kind
// field.
type Value interface {
	valueNode()
	String() string
}

// IntValue is a 64-bit signed integer literal operand.
type IntValue struct{ Val int64 }

func (IntValue) valueNode() {}
func (v IntValue) String() string { return fmt.Sprintf("%d", v.Val) }

// FloatValue is a 64-bit float literal operand.
type FloatValue struct{ Val float64 }

func (FloatValue) valueNode() {}
func (v FloatValue) String() string { return fmt.Sprintf("%g", v.Val) }

// StringValue is a string literal operand.
type StringValue struct{ Val string }

func (StringValue) valueNode() {}
func (v StringValue) String() string { return fmt.Sprintf("%q", v.Val) }

// BoolValue is a boolean literal operand.
type BoolValue struct{ Val bool }

func (BoolValue) valueNode() {}
func (v BoolValue) String() string {
	if v.Val {
		return "true"
	}
	return "false"
}

// NameValue is a variable or compiler-generated temporary (`tN`).
type NameValue struct{ Name string }

func (NameValue) valueNode() {}
func (v NameValue) String() string { return v.Name }
