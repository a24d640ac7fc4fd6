// internal/ir/render.go

package ir

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/masroof-maindak/nuktah/internal/token"
)

// opStrings spells each operator kind the way it appears in source; the
// listing reuses source spelling rather than kind names.
var opStrings = map[token.Kind]string{
	token.PLUS:    "+",
	token.MINUS:   "-",
	token.STAR:    "*",
	token.SLASH:   "/",
	token.PERCENT: "%",
	token.CARET:   "^",
	token.EQ:      "==",
	token.LT:      "<",
	token.GT:      ">",
	token.AMP:     "&",
	token.PIPE:    "|",
	token.AND:     "&&",
	token.OR:      "||",
	token.SHL:     "<<",
	token.SHR:     ">>",
	token.NOT:     "!",
	token.TILDE:   "~",
}

// OpString renders an operator token kind as its source spelling, falling
// back to the kind's name for anything outside the operator set.
func OpString(op token.Kind) string {
	if s, ok := opStrings[op]; ok {
		return s
	}
	return op.String()
}

// renderInstr expands one instruction into its listing line(s). Only
// CondJump produces more than one: it expands to an `ifTrue` line and the
// fall-through `goto`.
func renderInstr(instr Instruction) []string {
	switch v := instr.(type) {
	case Assign:
		return []string{fmt.Sprintf("%s = %s", v.Dest, v.Value)}
	case BinOp:
		return []string{fmt.Sprintf("%s = %s %s %s", v.Dest, v.Left, OpString(v.Op), v.Right)}
	case UnaryOp:
		return []string{fmt.Sprintf("%s = %s %s", v.Dest, OpString(v.Op), v.Operand)}
	case Label:
		return []string{v.Name + ":"}
	case Jump:
		return []string{"goto " + v.Target}
	case CondJump:
		return []string{
			fmt.Sprintf("ifTrue %s goto %s", v.Cond, v.TrueLabel),
			"goto " + v.FalseLabel,
		}
	case FnDecl:
		return []string{"BeginFunc " + v.Name}
	case Return:
		if v.Value == nil {
			return []string{"return"}
		}
		return []string{"return " + v.Value.String()}
	case Call:
		args := lo.Map(v.Args, func(a Value, _ int) string { return a.String() })
		return []string{fmt.Sprintf("%s = call %s(%s)", v.Dest, v.Fn, strings.Join(args, ", "))}
	case Nop:
		return []string{"nop"}
	default:
		return nil
	}
}

// Listing renders blocks as the final numbered instruction listing: one
// line per rendered instruction, each prefixed with its zero-padded index.
func Listing(blocks []Block) []string {
	lines := lo.FlatMap(Flatten(blocks), func(i Instruction, _ int) []string {
		return renderInstr(i)
	})
	return lo.Map(lines, func(line string, i int) string {
		return fmt.Sprintf("%03d: %s", i, line)
	})
}
