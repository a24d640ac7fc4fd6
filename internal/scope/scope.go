// Package scope walks a translation unit's AST, populating an Environment
// (internal/environment) and enforcing Nuktah's declaration rules: no
// shadowing anywhere in a visible chain, and every identifier use or call
// must resolve.
package scope

import (
	"github.com/masroof-maindak/nuktah/internal/ast"
	"github.com/masroof-maindak/nuktah/internal/environment"
	"github.com/masroof-maindak/nuktah/internal/token"
)

// Analyze builds a fully populated Environment from tu, or returns the
// first classified *Error encountered.
func Analyze(tu *ast.TranslationUnit) (*environment.Environment, error) {
	env := environment.New()
	root := environment.RootID

	for _, decl := range tu.Decls {
		switch d := decl.(type) {
		case *ast.VarDecl:
			if err := declareVar(env, root, d); err != nil {
				return nil, err
			}

		case *ast.FnDecl:
			if err := declareFn(env, root, d); err != nil {
				return nil, err
			}
		}
	}

	return env, nil
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
		panic("scope: token kind is not a type keyword")
	}
}

// declareVar checks the declaration for a redeclaration collision, scans
// its initializer, and only then inserts the new binding. The initializer
// is scanned before the binding lands, so a declaration never resolves
// against itself: `ginti x = x.` is an undeclared-variable error.
func declareVar(env *environment.Environment, scopeID environment.ID, v *ast.VarDecl) error {
	if env.ExistsInChain(scopeID, v.Name) {
		return &Error{Kind: VariableRedefinition, Name: v.Name, Pos: v.Pos()}
	}
	if err := scanExpr(env, scopeID, v.Init); err != nil {
		return err
	}
	env.InsertSymbol(scopeID, v.Name, environment.SymbolInfo{IsVariable: true, Type: tokenKindToType(v.Type)}, false)
	return nil
}

// declareFn inserts the function's name at root and populates its own
// FnBlock scope with its parameters, then walks its body. The function's
// name lives in the parent (root) scope; its parameter bindings live in
// the function's own scope.
func declareFn(env *environment.Environment, root environment.ID, f *ast.FnDecl) error {
	if env.ExistsInChain(root, f.Name) {
		return &Error{Kind: FunctionPrototypeRedefinition, Name: f.Name, Pos: f.Pos()}
	}
	env.InsertSymbol(root, f.Name, environment.SymbolInfo{IsVariable: false, Type: tokenKindToType(f.ReturnType)}, false)

	fnID := env.CreateScope(&root, environment.FnBlock)
	env.AttachChild(root, fnID, f.Name)

	for _, p := range f.Params {
		if env.ExistsInChain(fnID, p.Name) {
			return &Error{Kind: VariableRedefinition, Name: p.Name, Pos: p.Pos()}
		}
		env.InsertSymbol(fnID, p.Name, environment.SymbolInfo{IsVariable: true, Type: tokenKindToType(p.Type)}, true)
	}

	return analyzeBlock(env, f.Body, fnID)
}

// analyzeBlock walks stmts, descending into scopeID (already created by the
// caller) without creating a further nested scope of its own — a block's
// statements share their enclosing construct's scope.
func analyzeBlock(env *environment.Environment, block *ast.Block, scopeID environment.ID) error {
	for _, stmt := range block.Stmts {
		if err := analyzeStmt(env, stmt, scopeID); err != nil {
			return err
		}
	}
	return nil
}

func analyzeStmt(env *environment.Environment, stmt ast.Stmt, scopeID environment.ID) error {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		return declareVar(env, scopeID, s)

	case *ast.ExprStmt:
		return scanExpr(env, scopeID, s.Expr)

	case *ast.ReturnStmt:
		return scanExpr(env, scopeID, s.Expr)

	case *ast.BreakStmt:
		return nil

	case *ast.IfStmt:
		// The condition is evaluated in the enclosing scope, before either
		// branch is entered.
		if err := scanExpr(env, scopeID, s.Cond); err != nil {
			return err
		}

		thenID := env.CreateScope(&scopeID, environment.IfBlock)
		env.AttachChild(scopeID, thenID, "")
		if err := analyzeBlock(env, s.Then, thenID); err != nil {
			return err
		}

		elseID := env.CreateScope(&scopeID, environment.IfBlock)
		env.AttachChild(scopeID, elseID, "")
		return analyzeBlock(env, s.Else, elseID)

	case *ast.ForStmt:
		forID := env.CreateScope(&scopeID, environment.ForBlock)
		env.AttachChild(scopeID, forID, "")

		if s.Init != nil {
			if err := declareVar(env, forID, s.Init); err != nil {
				return err
			}
		}
		// cond/update resolve against the for's own scope so the loop
		// variable is visible.
		if err := scanExpr(env, forID, s.Cond); err != nil {
			return err
		}
		if err := scanExpr(env, forID, s.Update); err != nil {
			return err
		}
		return analyzeBlock(env, s.Body, forID)

	default:
		return nil
	}
}

// scanExpr recursively checks every identifier reference and call callee
// in expr against scopeID via climbing lookup. The precedence lattice's
// pass-through levels collapse into the Expr interface, so one type switch
// covers every level instead of a dozen per-level walkers.
func scanExpr(env *environment.Environment, scopeID environment.ID, expr ast.Expr) error {
	if expr == nil {
		return nil
	}

	switch e := expr.(type) {
	case *ast.Ident:
		if _, ok := env.LookupClimb(scopeID, e.Name, true); !ok {
			return &Error{Kind: UndeclaredVariableCalled, Name: e.Name, Pos: e.Pos()}
		}
		return nil

	case *ast.Literal:
		return nil

	case *ast.ParenExpr:
		return scanExpr(env, scopeID, e.Expr)

	case *ast.CallExpr:
		if info, ok := env.LookupLocal(environment.RootID, e.Callee); !ok || info.IsVariable {
			return &Error{Kind: UndefinedFunctionCalled, Name: e.Callee, Pos: e.Pos()}
		}
		for _, arg := range e.Args {
			if err := scanExpr(env, scopeID, arg); err != nil {
				return err
			}
		}
		return nil

	case *ast.AssignExpr:
		if err := scanExpr(env, scopeID, e.Target); err != nil {
			return err
		}
		return scanExpr(env, scopeID, e.Value)

	case *ast.UnaryExpr:
		return scanExpr(env, scopeID, e.Expr)

	case *ast.ExpExpr:
		if err := scanExpr(env, scopeID, e.Left); err != nil {
			return err
		}
		return scanExpr(env, scopeID, e.Right)

	case *ast.BoolExpr:
		return scanBinary(env, scopeID, e.Left, e.Right)
	case *ast.BitOrExpr:
		return scanBinary(env, scopeID, e.Left, e.Right)
	case *ast.BitAndExpr:
		return scanBinary(env, scopeID, e.Left, e.Right)
	case *ast.CompExpr:
		return scanBinary(env, scopeID, e.Left, e.Right)
	case *ast.ShiftExpr:
		return scanBinary(env, scopeID, e.Left, e.Right)
	case *ast.AddExpr:
		return scanBinary(env, scopeID, e.Left, e.Right)
	case *ast.MulExpr:
		return scanBinary(env, scopeID, e.Left, e.Right)

	default:
		return nil
	}
}

func scanBinary(env *environment.Environment, scopeID environment.ID, left, right ast.Expr) error {
	if err := scanExpr(env, scopeID, left); err != nil {
		return err
	}
	return scanExpr(env, scopeID, right)
}
