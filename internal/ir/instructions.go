package ir

import (
	"github.com/masroof-maindak/nuktah/internal/token"
)

// Instruction is one three-address-code operation. Assign/BinOp/UnaryOp/Call
// target a destination name; Label/Jump/CondJump/FnDecl/Return/Nop carry no
// destination.
type Instruction interface {
	instrNode()
}

// Assign is `dest = value`.
type Assign struct {
	Dest  string
	Value Value
}

func (Assign) instrNode() {}

// BinOp is `dest = left op right`.
type BinOp struct {
	Dest  string
	Left  Value
	Op    token.Kind
	Right Value
}

func (BinOp) instrNode() {}

// UnaryOp is `dest = op operand`.
type UnaryOp struct {
	Dest    string
	Op      token.Kind
	Operand Value
}

func (UnaryOp) instrNode() {}

// Label marks the start of a basic block.
type Label struct {
	Name string
}

func (Label) instrNode() {}

// Jump is an unconditional branch to Target.
type Jump struct {
	Target string
}

func (Jump) instrNode() {}

// CondJump branches to TrueLabel when Cond holds, FalseLabel otherwise.
type CondJump struct {
	Cond       Value
	TrueLabel  string
	FalseLabel string
}

func (CondJump) instrNode() {}

// FnDecl opens a function body; it is always the first instruction of the
// block it belongs to.
type FnDecl struct {
	Name string
}

func (FnDecl) instrNode() {}

// Return optionally carries a value; Value is nil for a bare `wapsi.`.
type Return struct {
	Value Value
}

func (Return) instrNode() {}

// Call is `dest = fn(args...)`.
type Call struct {
	Dest string
	Fn   string
	Args []Value
}

func (Call) instrNode() {}

// Nop is emitted for a `toro` reached outside any loop; the front end
// never reaches it once the type checker has run, but the builder does
// not assume that and must still produce something.
type Nop struct{}

func (Nop) instrNode() {}
