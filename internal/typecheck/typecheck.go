// Package typecheck walks the AST against an already-built Environment,
// synthesizing and checking types per the operator-typing table. It
// re-enters scopes the scope analyzer already created by replaying the
// same per-parent, per-kind child-creation order — "the n-th FnBlock (or
// ForBlock/IfBlock) child of this parent" — rather than threading scope
// IDs through the AST.
package typecheck

import (
	"github.com/masroof-maindak/nuktah/internal/ast"
	"github.com/masroof-maindak/nuktah/internal/environment"
	"github.com/masroof-maindak/nuktah/internal/token"
)

// Check walks tu against env, returning the first classified *Error
// encountered, or nil if every expression and statement satisfies the
// typing rules.
func Check(tu *ast.TranslationUnit, env *environment.Environment) error {
	root := environment.RootID
	fnCtr := 0

	for _, decl := range tu.Decls {
		switch d := decl.(type) {
		case *ast.VarDecl:
			if err := checkVarDecl(env, root, d); err != nil {
				return err
			}

		case *ast.FnDecl:
			fnCtr++
			fnID, ok := env.NthChildOfKind(root, fnCtr, environment.FnBlock)
			if !ok {
				panic("typecheck: scope analysis and type check disagree on FnBlock order")
			}
			retType := tokenKindToType(d.ReturnType)
			if err := checkBlock(env, d.Body, retType, fnID); err != nil {
				return err
			}
		}
	}

	return nil
}

func tokenKindToType(k token.Kind) environment.Type {
	switch k {
	case token.INT_KW:
		return environment.Int
	case token.FLOAT_KW:
		return environment.Float
	case token.STRING_KW:
		return environment.String
	case token.BOOL_KW:
		return environment.Bool
	case token.VOID_KW:
		return environment.Void
	default:
		panic("typecheck: token kind is not a type keyword")
	}
}

func checkVarDecl(env *environment.Environment, scopeID environment.ID, v *ast.VarDecl) error {
	t, err := synthType(env, scopeID, v.Init)
	if err != nil {
		return err
	}
	if want := tokenKindToType(v.Type); t != want {
		return &Error{Kind: MismatchedVarDecl, Name: v.Name, Pos: v.Pos()}
	}
	return nil
}

// checkBlock walks a block's statements against scopeID, a scope the
// caller already resolved. It keeps its own per-kind counters for ForBlock
// and IfBlock children, scoped to this one parent.
func checkBlock(env *environment.Environment, block *ast.Block, retType environment.Type, scopeID environment.ID) error {
	forCtr, ifCtr := 0, 0

	for _, stmt := range block.Stmts {
		switch s := stmt.(type) {
		case *ast.VarDecl:
			if err := checkVarDecl(env, scopeID, s); err != nil {
				return err
			}

		case *ast.ExprStmt:
			// A discarded expression still has to be well-typed: this is
			// where a bare call statement gets its arity and argument
			// types checked.
			if s.Expr != nil {
				if _, err := synthType(env, scopeID, s.Expr); err != nil {
					return err
				}
			}

		case *ast.ReturnStmt:
			t := environment.Void
			if s.Expr != nil {
				var err error
				t, err = synthType(env, scopeID, s.Expr)
				if err != nil {
					return err
				}
			}
			if t != retType {
				return &Error{Kind: MismatchedReturn, Pos: s.Pos()}
			}

		case *ast.BreakStmt:
			if !env.HasForBlockAncestor(scopeID) {
				return &Error{Kind: BreakOutsideLoop, Pos: s.Pos()}
			}

		case *ast.IfStmt:
			if s.Cond != nil {
				condType, err := synthType(env, scopeID, s.Cond)
				if err != nil {
					return err
				}
				if condType != environment.Bool {
					return &Error{Kind: NonBooleanCondition, Pos: s.Pos()}
				}
			}

			for _, blk := range []*ast.Block{s.Then, s.Else} {
				ifCtr++
				childID, ok := env.NthChildOfKind(scopeID, ifCtr, environment.IfBlock)
				if !ok {
					panic("typecheck: scope analysis and type check disagree on IfBlock order")
				}
				if err := checkBlock(env, blk, retType, childID); err != nil {
					return err
				}
			}

		case *ast.ForStmt:
			forCtr++
			forID, ok := env.NthChildOfKind(scopeID, forCtr, environment.ForBlock)
			if !ok {
				panic("typecheck: scope analysis and type check disagree on ForBlock order")
			}

			// The init declaration lives in the for's own scope, so its
			// initializer is checked there, same as the cond/update.
			if s.Init != nil {
				if err := checkVarDecl(env, forID, s.Init); err != nil {
					return err
				}
			}

			// An omitted condition carries no Bool requirement: there is
			// nothing written to type-check.
			if s.Cond != nil {
				condType, err := synthType(env, forID, s.Cond)
				if err != nil {
					return err
				}
				if condType != environment.Bool {
					return &Error{Kind: NonBooleanCondition, Pos: s.Pos()}
				}
			}
			if s.Update != nil {
				if _, err := synthType(env, forID, s.Update); err != nil {
					return err
				}
			}

			if err := checkBlock(env, s.Body, retType, forID); err != nil {
				return err
			}
		}
	}

	return nil
}

// synthType synthesizes expr's type per the operator-typing table,
// returning the first violation encountered as a classified *Error.
func synthType(env *environment.Environment, scopeID environment.ID, expr ast.Expr) (environment.Type, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		switch e.Kind {
		case ast.IntLit:
			return environment.Int, nil
		case ast.FloatLit:
			return environment.Float, nil
		case ast.StringLit:
			return environment.String, nil
		case ast.BoolLit:
			return environment.Bool, nil
		}
		return 0, &Error{Kind: GeneralExpressionMismatch, Pos: e.Pos()}

	case *ast.Ident:
		info, ok := env.LookupClimb(scopeID, e.Name, true)
		if !ok {
			return 0, &Error{Kind: GeneralExpressionMismatch, Name: e.Name, Pos: e.Pos()}
		}
		return info.Type, nil

	case *ast.ParenExpr:
		return synthType(env, scopeID, e.Expr)

	case *ast.CallExpr:
		return synthCall(env, scopeID, e)

	case *ast.UnaryExpr:
		return synthUnary(env, scopeID, e)

	case *ast.ExpExpr:
		return synthNumericSame(env, scopeID, e.Left, e.Right, e.Pos())

	case *ast.MulExpr:
		return synthNumericSame(env, scopeID, e.Left, e.Right, e.Pos())

	case *ast.AddExpr:
		return synthNumericSame(env, scopeID, e.Left, e.Right, e.Pos())

	case *ast.BitAndExpr:
		return synthNumericSame(env, scopeID, e.Left, e.Right, e.Pos())

	case *ast.BitOrExpr:
		return synthNumericSame(env, scopeID, e.Left, e.Right, e.Pos())

	case *ast.ShiftExpr:
		lt, err := synthType(env, scopeID, e.Left)
		if err != nil {
			return 0, err
		}
		rt, err := synthType(env, scopeID, e.Right)
		if err != nil {
			return 0, err
		}
		if lt != environment.Int || rt != environment.Int {
			return 0, &Error{Kind: OperandTypeViolation, Pos: e.Pos()}
		}
		return environment.Int, nil

	case *ast.CompExpr:
		lt, err := synthType(env, scopeID, e.Left)
		if err != nil {
			return 0, err
		}
		rt, err := synthType(env, scopeID, e.Right)
		if err != nil {
			return 0, err
		}
		if lt != rt {
			return 0, &Error{Kind: OperandTypeViolation, Pos: e.Pos()}
		}
		return environment.Bool, nil

	case *ast.BoolExpr:
		lt, err := synthType(env, scopeID, e.Left)
		if err != nil {
			return 0, err
		}
		rt, err := synthType(env, scopeID, e.Right)
		if err != nil {
			return 0, err
		}
		if lt != environment.Bool || rt != environment.Bool {
			return 0, &Error{Kind: OperandTypeViolation, Pos: e.Pos()}
		}
		return environment.Bool, nil

	case *ast.AssignExpr:
		lt, err := synthType(env, scopeID, e.Target)
		if err != nil {
			return 0, err
		}
		rt, err := synthType(env, scopeID, e.Value)
		if err != nil {
			return 0, err
		}
		if lt != rt {
			return 0, &Error{Kind: GeneralExpressionMismatch, Pos: e.Pos()}
		}
		return lt, nil

	default:
		return 0, &Error{Kind: GeneralExpressionMismatch, Pos: expr.Pos()}
	}
}

// synthNumericSame implements the shared rule for `^ * / % + -` and binary
// `& |`: both sides numeric, same type, result that type.
func synthNumericSame(env *environment.Environment, scopeID environment.ID, left, right ast.Expr, pos token.Position) (environment.Type, error) {
	lt, err := synthType(env, scopeID, left)
	if err != nil {
		return 0, err
	}
	rt, err := synthType(env, scopeID, right)
	if err != nil {
		return 0, err
	}
	if lt != rt || (lt != environment.Int && lt != environment.Float) {
		return 0, &Error{Kind: OperandTypeViolation, Pos: pos}
	}
	return lt, nil
}

func synthUnary(env *environment.Environment, scopeID environment.ID, u *ast.UnaryExpr) (environment.Type, error) {
	t, err := synthType(env, scopeID, u.Expr)
	if err != nil {
		return 0, err
	}
	switch u.Op {
	case token.MINUS:
		if t != environment.Int && t != environment.Float {
			return 0, &Error{Kind: OperandTypeViolation, Pos: u.Pos()}
		}
		return t, nil
	case token.NOT, token.TILDE:
		if t != environment.Bool {
			return 0, &Error{Kind: OperandTypeViolation, Pos: u.Pos()}
		}
		return environment.Bool, nil
	default:
		return 0, &Error{Kind: OperandTypeViolation, Pos: u.Pos()}
	}
}

func synthCall(env *environment.Environment, scopeID environment.ID, c *ast.CallExpr) (environment.Type, error) {
	params, ok := env.FunctionParamTypes(c.Callee)
	if !ok {
		return 0, &Error{Kind: GeneralExpressionMismatch, Name: c.Callee, Pos: c.Pos()}
	}
	if len(params) != len(c.Args) {
		return 0, &Error{Kind: ArityMismatch, Name: c.Callee, Pos: c.Pos()}
	}
	for i, arg := range c.Args {
		t, err := synthType(env, scopeID, arg)
		if err != nil {
			return 0, err
		}
		if t != params[i] {
			return 0, &Error{Kind: ArgumentTypeMismatch, Name: c.Callee, Pos: c.Pos()}
		}
	}

	info, ok := env.LookupLocal(environment.RootID, c.Callee)
	if !ok {
		return 0, &Error{Kind: GeneralExpressionMismatch, Name: c.Callee, Pos: c.Pos()}
	}
	return info.Type, nil
}
