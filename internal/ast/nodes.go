// Package ast defines the abstract syntax tree for Nuktah: a translation
// unit of top-level declarations, built out of nested tagged sums.
//
// The expression grammar is a strict precedence lattice. Rather
// than a single Expr type carrying an operator field, each precedence
// level that admits a binary operator gets its own concrete Go type, so
// the type system itself guarantees `+` can never appear where `||` is
// expected. A level with no operator present at a given point in the tree
// is simply represented by its next-higher-precedence child directly —
// the Expr interface is the sum type, no wrapper is needed for the
// pass-through case.
package ast

import (
	"fmt"

	"github.com/masroof-maindak/nuktah/internal/token"
)

// Position is a source location, shared with the token package.
type Position = token.Position

// Node is the base interface every AST node satisfies.
type Node interface {
	Pos() Position
	String() string
}

// TranslationUnit is the root of the AST: the ordered sequence of
// top-level declarations in a source file.
type TranslationUnit struct {
	pos   Position
	Decls []Decl
}

func (tu *TranslationUnit) Pos() Position { return tu.pos }
func (tu *TranslationUnit) String() string {
	return fmt.Sprintf("TranslationUnit{Decls: %d}", len(tu.Decls))
}

func NewTranslationUnit(pos Position, decls []Decl) *TranslationUnit {
	return &TranslationUnit{pos: pos, Decls: decls}
}

// Decl is a top-level declaration: a variable or a function.
type Decl interface {
	Node
	declNode()
}

// VarDecl is a variable declaration: a type keyword, a name, and a
// required initializer expression. Used both at top level and as a
// statement inside a block (and as a for-loop's optional init clause).
type VarDecl struct {
	pos  Position
	Type token.Kind // one of INT_KW, FLOAT_KW, STRING_KW, BOOL_KW
	Name string
	Init Expr
}

func (v *VarDecl) Pos() Position  { return v.pos }
func (v *VarDecl) String() string { return fmt.Sprintf("VarDecl{%s: %s}", v.Type, v.Name) }
func (v *VarDecl) declNode()      {}
func (v *VarDecl) stmtNode()      {}

func NewVarDecl(pos Position, typ token.Kind, name string, init Expr) *VarDecl {
	return &VarDecl{pos: pos, Type: typ, Name: name, Init: init}
}

// Param is one function parameter: a type keyword and a name.
type Param struct {
	pos  Position
	Type token.Kind
	Name string
}

func (p *Param) Pos() Position  { return p.pos }
func (p *Param) String() string { return fmt.Sprintf("Param{%s: %s}", p.Type, p.Name) }

func NewParam(pos Position, typ token.Kind, name string) *Param {
	return &Param{pos: pos, Type: typ, Name: name}
}

// FnDecl is a function declaration: a return type (including VOID_KW,
// which is legal only here, never in a VarDecl), a name, ordered
// parameters, and a body block.
type FnDecl struct {
	pos        Position
	Name       string
	Params     []*Param
	ReturnType token.Kind
	Body       *Block
}

func (f *FnDecl) Pos() Position  { return f.pos }
func (f *FnDecl) String() string { return fmt.Sprintf("FnDecl{Name: %s}", f.Name) }
func (f *FnDecl) declNode()      {}

func NewFnDecl(pos Position, name string, params []*Param, ret token.Kind, body *Block) *FnDecl {
	return &FnDecl{pos: pos, Name: name, Params: params, ReturnType: ret, Body: body}
}

// Stmt is any statement that may appear inside a block.
type Stmt interface {
	Node
	stmtNode()
}

// Block is an ordered sequence of statements delimited by braces.
type Block struct {
	pos   Position
	Stmts []Stmt
}

func (b *Block) Pos() Position  { return b.pos }
func (b *Block) String() string { return fmt.Sprintf("Block{Stmts: %d}", len(b.Stmts)) }

func NewBlock(pos Position, stmts []Stmt) *Block {
	return &Block{pos: pos, Stmts: stmts}
}

// ExprStmt is an expression used in statement position. Expr is nil when
// the statement is just the bare terminator.
type ExprStmt struct {
	pos  Position
	Expr Expr
}

func (e *ExprStmt) Pos() Position  { return e.pos }
func (e *ExprStmt) String() string { return "ExprStmt" }
func (e *ExprStmt) stmtNode()      {}

func NewExprStmt(pos Position, expr Expr) *ExprStmt {
	return &ExprStmt{pos: pos, Expr: expr}
}

// IfStmt is a conditional with a required then-block and a possibly-empty
// else-block.
type IfStmt struct {
	pos   Position
	Cond  Expr
	Then  *Block
	Else  *Block
}

func (i *IfStmt) Pos() Position  { return i.pos }
func (i *IfStmt) String() string { return "IfStmt" }
func (i *IfStmt) stmtNode()      {}

func NewIfStmt(pos Position, cond Expr, then, els *Block) *IfStmt {
	return &IfStmt{pos: pos, Cond: cond, Then: then, Else: els}
}

// ForStmt is a loop with an optional init declaration, an optional
// condition, an optional update expression, and a body. An absent Cond or
// Update clause is a nil Expr, not a sentinel node.
type ForStmt struct {
	pos    Position
	Init   *VarDecl // nil if the for-header had no init
	Cond   Expr     // nil if the for-header's condition was empty
	Update Expr     // nil if the for-header's update clause was empty
	Body   *Block
}

func (f *ForStmt) Pos() Position  { return f.pos }
func (f *ForStmt) String() string { return "ForStmt" }
func (f *ForStmt) stmtNode()      {}

func NewForStmt(pos Position, init *VarDecl, cond, update Expr, body *Block) *ForStmt {
	return &ForStmt{pos: pos, Init: init, Cond: cond, Update: update, Body: body}
}

// ReturnStmt optionally carries a value; a bare `wapsi.` has Expr == nil
// and types as Void.
type ReturnStmt struct {
	pos  Position
	Expr Expr
}

func (r *ReturnStmt) Pos() Position  { return r.pos }
func (r *ReturnStmt) String() string { return "ReturnStmt" }
func (r *ReturnStmt) stmtNode()      {}

func NewReturnStmt(pos Position, expr Expr) *ReturnStmt {
	return &ReturnStmt{pos: pos, Expr: expr}
}

// BreakStmt is legal only inside a for-loop; legality is checked by the
// type checker, not the parser.
type BreakStmt struct {
	pos Position
}

func (b *BreakStmt) Pos() Position  { return b.pos }
func (b *BreakStmt) String() string { return "BreakStmt" }
func (b *BreakStmt) stmtNode()      {}

func NewBreakStmt(pos Position) *BreakStmt {
	return &BreakStmt{pos: pos}
}

// Expr is any node in the precedence lattice, from a full assignment down
// to a bare primary.
type Expr interface {
	Node
	exprNode()
}

// AssignExpr is `target = value`, right-associative: Value may itself be
// another AssignExpr.
type AssignExpr struct {
	pos    Position
	Target Expr
	Value  Expr
}

func (a *AssignExpr) Pos() Position  { return a.pos }
func (a *AssignExpr) String() string { return "AssignExpr{=}" }
func (a *AssignExpr) exprNode()      {}

func NewAssignExpr(pos Position, target, value Expr) *AssignExpr {
	return &AssignExpr{pos: pos, Target: target, Value: value}
}

// binaryLevel is embedded by every left-associative binary-operator node
// to avoid repeating Pos/field plumbing across the seven lattice levels
// that share this exact shape.
type binaryLevel struct {
	pos   Position
	Left  Expr
	Op    token.Kind
	Right Expr
}

func (b *binaryLevel) Pos() Position { return b.pos }

// BoolExpr is `&&` / `||`.
type BoolExpr struct{ binaryLevel }

func (b *BoolExpr) String() string { return fmt.Sprintf("BoolExpr{%s}", b.Op) }
func (b *BoolExpr) exprNode()      {}
func NewBoolExpr(pos Position, l Expr, op token.Kind, r Expr) *BoolExpr {
	return &BoolExpr{binaryLevel{pos, l, op, r}}
}

// BitOrExpr is `|`.
type BitOrExpr struct{ binaryLevel }

func (b *BitOrExpr) String() string { return fmt.Sprintf("BitOrExpr{%s}", b.Op) }
func (b *BitOrExpr) exprNode()      {}
func NewBitOrExpr(pos Position, l Expr, op token.Kind, r Expr) *BitOrExpr {
	return &BitOrExpr{binaryLevel{pos, l, op, r}}
}

// BitAndExpr is `&`.
type BitAndExpr struct{ binaryLevel }

func (b *BitAndExpr) String() string { return fmt.Sprintf("BitAndExpr{%s}", b.Op) }
func (b *BitAndExpr) exprNode()      {}
func NewBitAndExpr(pos Position, l Expr, op token.Kind, r Expr) *BitAndExpr {
	return &BitAndExpr{binaryLevel{pos, l, op, r}}
}

// CompExpr is `<` / `>` / `==`.
type CompExpr struct{ binaryLevel }

func (b *CompExpr) String() string { return fmt.Sprintf("CompExpr{%s}", b.Op) }
func (b *CompExpr) exprNode()      {}
func NewCompExpr(pos Position, l Expr, op token.Kind, r Expr) *CompExpr {
	return &CompExpr{binaryLevel{pos, l, op, r}}
}

// ShiftExpr is `<<` / `>>`.
type ShiftExpr struct{ binaryLevel }

func (b *ShiftExpr) String() string { return fmt.Sprintf("ShiftExpr{%s}", b.Op) }
func (b *ShiftExpr) exprNode()      {}
func NewShiftExpr(pos Position, l Expr, op token.Kind, r Expr) *ShiftExpr {
	return &ShiftExpr{binaryLevel{pos, l, op, r}}
}

// AddExpr is `+` / `-`.
type AddExpr struct{ binaryLevel }

func (b *AddExpr) String() string { return fmt.Sprintf("AddExpr{%s}", b.Op) }
func (b *AddExpr) exprNode()      {}
func NewAddExpr(pos Position, l Expr, op token.Kind, r Expr) *AddExpr {
	return &AddExpr{binaryLevel{pos, l, op, r}}
}

// MulExpr is `*` / `/` / `%`.
type MulExpr struct{ binaryLevel }

func (b *MulExpr) String() string { return fmt.Sprintf("MulExpr{%s}", b.Op) }
func (b *MulExpr) exprNode()      {}
func NewMulExpr(pos Position, l Expr, op token.Kind, r Expr) *MulExpr {
	return &MulExpr{binaryLevel{pos, l, op, r}}
}

// ExpExpr is `^`, right-associative: Right may itself be an ExpExpr.
type ExpExpr struct {
	pos   Position
	Left  Expr
	Right Expr
}

func (e *ExpExpr) Pos() Position  { return e.pos }
func (e *ExpExpr) String() string { return "ExpExpr{^}" }
func (e *ExpExpr) exprNode()      {}

func NewExpExpr(pos Position, l, r Expr) *ExpExpr {
	return &ExpExpr{pos: pos, Left: l, Right: r}
}

// UnaryExpr is a prefix `-`, `!`, or `~`.
type UnaryExpr struct {
	pos  Position
	Op   token.Kind
	Expr Expr
}

func (u *UnaryExpr) Pos() Position  { return u.pos }
func (u *UnaryExpr) String() string { return fmt.Sprintf("UnaryExpr{%s}", u.Op) }
func (u *UnaryExpr) exprNode()      {}

func NewUnaryExpr(pos Position, op token.Kind, expr Expr) *UnaryExpr {
	return &UnaryExpr{pos: pos, Op: op, Expr: expr}
}

// Ident is a bare identifier used in primary position.
type Ident struct {
	pos  Position
	Name string
}

func (i *Ident) Pos() Position  { return i.pos }
func (i *Ident) String() string { return fmt.Sprintf("Ident{%s}", i.Name) }
func (i *Ident) exprNode()      {}

func NewIdent(pos Position, name string) *Ident {
	return &Ident{pos: pos, Name: name}
}

// LitKind classifies a Literal's value.
type LitKind int

const (
	IntLit LitKind = iota
	FloatLit
	StringLit
	BoolLit
)

// Literal is an integer, float, string, or boolean constant.
type Literal struct {
	pos  Position
	Kind LitKind
	Val  string // the literal's canonical text; parsed by the type checker/IR builder as needed
}

func (l *Literal) Pos() Position  { return l.pos }
func (l *Literal) String() string { return fmt.Sprintf("Literal{%v: %s}", l.Kind, l.Val) }
func (l *Literal) exprNode()      {}

func NewLiteral(pos Position, kind LitKind, val string) *Literal {
	return &Literal{pos: pos, Kind: kind, Val: val}
}

// ParenExpr is a parenthesized sub-expression; it exists as its own node
// (rather than being collapsed away) so positions and pretty-printing
// reflect the source exactly.
type ParenExpr struct {
	pos  Position
	Expr Expr
}

func (p *ParenExpr) Pos() Position  { return p.pos }
func (p *ParenExpr) String() string { return "ParenExpr" }
func (p *ParenExpr) exprNode()      {}

func NewParenExpr(pos Position, expr Expr) *ParenExpr {
	return &ParenExpr{pos: pos, Expr: expr}
}

// CallExpr is a call by callee name with ordered actual arguments.
type CallExpr struct {
	pos    Position
	Callee string
	Args   []Expr
}

func (c *CallExpr) Pos() Position  { return c.pos }
func (c *CallExpr) String() string { return fmt.Sprintf("CallExpr{%s, Args: %d}", c.Callee, len(c.Args)) }
func (c *CallExpr) exprNode()      {}

func NewCallExpr(pos Position, callee string, args []Expr) *CallExpr {
	return &CallExpr{pos: pos, Callee: callee, Args: args}
}
