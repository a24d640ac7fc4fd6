// Package ir lowers a type-checked AST into an ordered sequence of
// labeled basic blocks of three-address instructions. It mirrors the
// bottom-up, temporary-per-node lowering of a TAC generator: every
// operator and call node materializes a fresh temporary (a parenthesized
// expression or an assignment yields its inner or right-hand value), and every
// control-flow construct expands into explicit labels and jumps rather
// than a structured IR.
package ir

import (
	"strconv"

	"github.com/samber/lo"

	"github.com/masroof-maindak/nuktah/internal/ast"
	"github.com/masroof-maindak/nuktah/internal/token"
)

// Block is a labeled run of instructions. A function's own block uses
// "fn_<name>" as Label metadata rather than carrying an explicit Label
// instruction; every other block boundary (if/else/end, loop
// head/body/end) is introduced by an explicit Label instruction that
// also appears as the block's first entry.
type Block struct {
	Label  string
	Instrs []Instruction
}

// Build lowers tu and groups the resulting instruction stream into
// blocks.
func Build(tu *ast.TranslationUnit) []Block {
	return Group(Lower(tu))
}

// Lower produces the flat instruction stream for tu, in source order,
// without grouping it into blocks.
func Lower(tu *ast.TranslationUnit) []Instruction {
	b := &builder{}
	b.lowerTranslationUnit(tu)
	return b.instrs
}

// Group partitions a flat instruction stream into blocks at every FnDecl
// or Label instruction.
func Group(instrs []Instruction) []Block {
	var blocks []Block
	var cur *Block

	flush := func() {
		if cur != nil {
			blocks = append(blocks, *cur)
			cur = nil
		}
	}

	for _, instr := range instrs {
		switch v := instr.(type) {
		case FnDecl:
			flush()
			cur = &Block{Label: "fn_" + v.Name, Instrs: []Instruction{instr}}
		case Label:
			flush()
			cur = &Block{Label: v.Name, Instrs: []Instruction{instr}}
		default:
			if cur == nil {
				cur = &Block{Instrs: nil}
			}
			cur.Instrs = append(cur.Instrs, instr)
		}
	}
	flush()

	return blocks
}

// Flatten re-joins blocks back into one ordered instruction stream, the
// shape the CLI's numbered listing renders from.
func Flatten(blocks []Block) []Instruction {
	return lo.FlatMap(blocks, func(b Block, _ int) []Instruction { return b.Instrs })
}

// builder accumulates a flat instruction stream. Temporaries and labels
// live in disjoint namespaces ("tN" / "LN"); a stack of enclosing loop
// end-labels lets lowerStmt resolve `break`.
type builder struct {
	instrs   []Instruction
	tempCtr  int
	labelCtr int
	loopEnds []string
}

func (b *builder) emit(i Instruction) { b.instrs = append(b.instrs, i) }

func (b *builder) newTemp() string {
	t := "t" + strconv.Itoa(b.tempCtr)
	b.tempCtr++
	return t
}

func (b *builder) newLabel() string {
	l := "L" + strconv.Itoa(b.labelCtr)
	b.labelCtr++
	return l
}

func (b *builder) lowerTranslationUnit(tu *ast.TranslationUnit) {
	for _, decl := range tu.Decls {
		switch d := decl.(type) {
		case *ast.VarDecl:
			v := b.lowerExpr(d.Init)
			b.emit(Assign{Dest: d.Name, Value: v})
		case *ast.FnDecl:
			b.emit(FnDecl{Name: d.Name})
			b.lowerBlock(d.Body)
		}
	}
}

func (b *builder) lowerBlock(blk *ast.Block) {
	for _, s := range blk.Stmts {
		b.lowerStmt(s)
	}
}

func (b *builder) lowerStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		v := b.lowerExpr(s.Init)
		b.emit(Assign{Dest: s.Name, Value: v})

	case *ast.ExprStmt:
		if s.Expr != nil {
			b.lowerExpr(s.Expr)
		}

	case *ast.ReturnStmt:
		if s.Expr == nil {
			b.emit(Return{})
			return
		}
		b.emit(Return{Value: b.lowerExpr(s.Expr)})

	case *ast.BreakStmt:
		if len(b.loopEnds) == 0 {
			b.emit(Nop{})
			return
		}
		b.emit(Jump{Target: b.loopEnds[len(b.loopEnds)-1]})

	case *ast.IfStmt:
		b.lowerIf(s)

	case *ast.ForStmt:
		b.lowerFor(s)
	}
}

func (b *builder) lowerIf(s *ast.IfStmt) {
	cond := b.lowerExpr(s.Cond)
	thenL, elseL, endL := b.newLabel(), b.newLabel(), b.newLabel()

	b.emit(CondJump{Cond: cond, TrueLabel: thenL, FalseLabel: elseL})
	b.emit(Label{Name: thenL})
	b.lowerBlock(s.Then)
	b.emit(Jump{Target: endL})
	b.emit(Label{Name: elseL})
	b.lowerBlock(s.Else)
	b.emit(Label{Name: endL})
}

func (b *builder) lowerFor(s *ast.ForStmt) {
	if s.Init != nil {
		v := b.lowerExpr(s.Init.Init)
		b.emit(Assign{Dest: s.Init.Name, Value: v})
	}

	loopL, bodyL, endL := b.newLabel(), b.newLabel(), b.newLabel()
	b.loopEnds = append(b.loopEnds, endL)

	b.emit(Label{Name: loopL})
	var cond Value = BoolValue{Val: true}
	if s.Cond != nil {
		cond = b.lowerExpr(s.Cond)
	}
	b.emit(CondJump{Cond: cond, TrueLabel: bodyL, FalseLabel: endL})
	b.emit(Label{Name: bodyL})
	b.lowerBlock(s.Body)
	if s.Update != nil {
		b.lowerExpr(s.Update)
	}
	b.emit(Jump{Target: loopL})

	b.loopEnds = b.loopEnds[:len(b.loopEnds)-1]
	b.emit(Label{Name: endL})
}

func (b *builder) lowerExpr(expr ast.Expr) Value {
	switch e := expr.(type) {
	case nil:
		return nil

	case *ast.Literal:
		return b.lowerLiteral(e)

	case *ast.Ident:
		return NameValue{Name: e.Name}

	case *ast.ParenExpr:
		return b.lowerExpr(e.Expr)

	case *ast.CallExpr:
		args := make([]Value, len(e.Args))
		for i, a := range e.Args {
			args[i] = b.lowerExpr(a)
		}
		dest := b.newTemp()
		b.emit(Call{Dest: dest, Fn: e.Callee, Args: args})
		return NameValue{Name: dest}

	case *ast.AssignExpr:
		rhs := b.lowerExpr(e.Value)
		// Semantically the target is always an identifier; a
		// non-identifier target (malformed but not rejected upstream)
		// is still lowered for its side effects and otherwise ignored.
		if lhs, ok := b.lowerExpr(e.Target).(NameValue); ok {
			b.emit(Assign{Dest: lhs.Name, Value: rhs})
		}
		return rhs

	case *ast.UnaryExpr:
		v := b.lowerExpr(e.Expr)
		dest := b.newTemp()
		b.emit(UnaryOp{Dest: dest, Op: e.Op, Operand: v})
		return NameValue{Name: dest}

	case *ast.ExpExpr:
		return b.lowerBinary(e.Left, token.CARET, e.Right)
	case *ast.MulExpr:
		return b.lowerBinary(e.Left, e.Op, e.Right)
	case *ast.AddExpr:
		return b.lowerBinary(e.Left, e.Op, e.Right)
	case *ast.ShiftExpr:
		return b.lowerBinary(e.Left, e.Op, e.Right)
	case *ast.CompExpr:
		return b.lowerBinary(e.Left, e.Op, e.Right)
	case *ast.BitAndExpr:
		return b.lowerBinary(e.Left, e.Op, e.Right)
	case *ast.BitOrExpr:
		return b.lowerBinary(e.Left, e.Op, e.Right)
	case *ast.BoolExpr:
		return b.lowerBinary(e.Left, e.Op, e.Right)

	default:
		return nil
	}
}

func (b *builder) lowerLiteral(l *ast.Literal) Value {
	switch l.Kind {
	case ast.IntLit:
		n, _ := strconv.ParseInt(l.Val, 10, 64)
		return IntValue{Val: n}
	case ast.FloatLit:
		f, _ := strconv.ParseFloat(l.Val, 64)
		return FloatValue{Val: f}
	case ast.StringLit:
		return StringValue{Val: l.Val}
	case ast.BoolLit:
		return BoolValue{Val: l.Val == "sach"}
	default:
		return nil
	}
}

func (b *builder) lowerBinary(left ast.Expr, op token.Kind, right ast.Expr) Value {
	l := b.lowerExpr(left)
	r := b.lowerExpr(right)
	dest := b.newTemp()
	b.emit(BinOp{Dest: dest, Left: l, Op: op, Right: r})
	return NameValue{Name: dest}
}
