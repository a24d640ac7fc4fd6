// internal/parser/parser_test.go
package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/masroof-maindak/nuktah/internal/ast"
	"github.com/masroof-maindak/nuktah/internal/lexer"
	"github.com/masroof-maindak/nuktah/internal/parser"
)

func parseSource(t *testing.T, src string) (*ast.TranslationUnit, error) {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	require.NoError(t, err)
	return parser.ParseFile(toks)
}

func TestParseIdentityFunction(t *testing.T) {
	tu, err := parseSource(t, `fn ginti id(ginti x) { wapsi x. }.`)
	require.NoError(t, err)
	require.Len(t, tu.Decls, 1)

	fn, ok := tu.Decls[0].(*ast.FnDecl)
	require.True(t, ok)
	require.Equal(t, "id", fn.Name)
	require.Len(t, fn.Params, 1)
	require.Equal(t, "x", fn.Params[0].Name)
	require.Len(t, fn.Body.Stmts, 1)

	ret, ok := fn.Body.Stmts[0].(*ast.ReturnStmt)
	require.True(t, ok)
	ident, ok := ret.Expr.(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, "x", ident.Name)
}

func TestParseShadowCandidateShape(t *testing.T) {
	// Scope analysis rejects this, but it must still parse cleanly.
	tu, err := parseSource(t, `fn khali f() { ginti x = 1. agar (x==1) { ginti x = 2. } warna { }. }.`)
	require.NoError(t, err)
	require.Len(t, tu.Decls, 1)

	fn := tu.Decls[0].(*ast.FnDecl)
	require.Len(t, fn.Body.Stmts, 2)

	ifStmt, ok := fn.Body.Stmts[1].(*ast.IfStmt)
	require.True(t, ok)
	require.Len(t, ifStmt.Then.Stmts, 1)
	require.Empty(t, ifStmt.Else.Stmts)
}

func TestParseArityMismatchShape(t *testing.T) {
	tu, err := parseSource(t, `fn ginti g(ginti a, ginti b) { wapsi a+b. }. fn khali h() { g(1). }.`)
	require.NoError(t, err)
	require.Len(t, tu.Decls, 2)

	h := tu.Decls[1].(*ast.FnDecl)
	stmt := h.Body.Stmts[0].(*ast.ExprStmt)
	call, ok := stmt.Expr.(*ast.CallExpr)
	require.True(t, ok)
	require.Equal(t, "g", call.Callee)
	require.Len(t, call.Args, 1)
}

func TestParseForWithEmptyPieces(t *testing.T) {
	tu, err := parseSource(t, `fn khali f() { duhrao (ginti i = 0. i+1. ) { toro. }. }.`)
	require.NoError(t, err)
	fn := tu.Decls[0].(*ast.FnDecl)
	forStmt := fn.Body.Stmts[0].(*ast.ForStmt)
	require.NotNil(t, forStmt.Init)
	require.NotNil(t, forStmt.Cond)
	require.Nil(t, forStmt.Update)
	require.Len(t, forStmt.Body.Stmts, 1)
}

func TestParseBreakOutsideLoopShape(t *testing.T) {
	tu, err := parseSource(t, `fn khali f() { toro. }.`)
	require.NoError(t, err)
	fn := tu.Decls[0].(*ast.FnDecl)
	_, ok := fn.Body.Stmts[0].(*ast.BreakStmt)
	require.True(t, ok)
}

func TestParseIfElseLiteralCond(t *testing.T) {
	tu, err := parseSource(t, `fn khali f() { agar (sach) { } warna { }. }.`)
	require.NoError(t, err)
	fn := tu.Decls[0].(*ast.FnDecl)
	ifStmt := fn.Body.Stmts[0].(*ast.IfStmt)
	lit, ok := ifStmt.Cond.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, ast.BoolLit, lit.Kind)
}

func TestParseAddLeftAssociative(t *testing.T) {
	tu, err := parseSource(t, `ginti x = 1-2-3.`)
	require.NoError(t, err)
	v := tu.Decls[0].(*ast.VarDecl)
	outer, ok := v.Init.(*ast.AddExpr)
	require.True(t, ok)
	require.Equal(t, "MINUS", outer.Op.String())

	inner, ok := outer.Left.(*ast.AddExpr)
	require.True(t, ok)
	leftLit := inner.Left.(*ast.Literal)
	require.Equal(t, "1", leftLit.Val)
	midLit := inner.Right.(*ast.Literal)
	require.Equal(t, "2", midLit.Val)
	rightLit := outer.Right.(*ast.Literal)
	require.Equal(t, "3", rightLit.Val)
}

func TestParseAssignRightAssociative(t *testing.T) {
	tu, err := parseSource(t, `fn khali f() { ginti a = 0. ginti b = 0. ginti c = 0. a=b=c. }.`)
	require.NoError(t, err)
	fn := tu.Decls[0].(*ast.FnDecl)
	stmt := fn.Body.Stmts[3].(*ast.ExprStmt)
	outer, ok := stmt.Expr.(*ast.AssignExpr)
	require.True(t, ok)
	require.Equal(t, "a", outer.Target.(*ast.Ident).Name)

	inner, ok := outer.Value.(*ast.AssignExpr)
	require.True(t, ok)
	require.Equal(t, "b", inner.Target.(*ast.Ident).Name)
	require.Equal(t, "c", inner.Value.(*ast.Ident).Name)
}

func TestParseUnaryExpBindingOrder(t *testing.T) {
	// -a^2^3 parses as Exp(Unary(-, a), Exp(2, 3)): unary recurses into
	// itself rather than into exp, so the prefix claims only `a`.
	tu, err := parseSource(t, `ginti x = -a^2^3.`)
	require.NoError(t, err)
	v := tu.Decls[0].(*ast.VarDecl)

	top, ok := v.Init.(*ast.ExpExpr)
	require.True(t, ok)

	unary, ok := top.Left.(*ast.UnaryExpr)
	require.True(t, ok)
	require.Equal(t, "a", unary.Expr.(*ast.Ident).Name)

	rightExp, ok := top.Right.(*ast.ExpExpr)
	require.True(t, ok)
	require.Equal(t, "2", rightExp.Left.(*ast.Literal).Val)
	require.Equal(t, "3", rightExp.Right.(*ast.Literal).Val)
}

func TestParseBlockDoesNotConsumeClosingBrace(t *testing.T) {
	tu, err := parseSource(t, `fn khali f() { ginti x = 1. }. fn khali g() { }.`)
	require.NoError(t, err)
	require.Len(t, tu.Decls, 2)
}

func TestParseStringLiteralConsumesDelimitingQuotes(t *testing.T) {
	tu, err := parseSource(t, `jumla s = "hello world".`)
	require.NoError(t, err)
	v := tu.Decls[0].(*ast.VarDecl)
	lit, ok := v.Init.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, ast.StringLit, lit.Kind)
	require.Equal(t, "hello world", lit.Val)
}

func TestParseEmptyStringFails(t *testing.T) {
	_, err := parseSource(t, `jumla s = "".`)
	require.Error(t, err)
	perr, ok := err.(*parser.Error)
	require.True(t, ok)
	require.Equal(t, parser.MissingLiteral, perr.Kind)
}

func TestParseMissingDotFails(t *testing.T) {
	_, err := parseSource(t, `ginti x = 1`)
	require.Error(t, err)
	perr, ok := err.(*parser.Error)
	require.True(t, ok)
	require.Equal(t, parser.UnexpectedEOF, perr.Kind)
}

func TestParseMissingParenFails(t *testing.T) {
	_, err := parseSource(t, `fn khali f( { }.`)
	require.Error(t, err)
}

func TestParseVarDeclMissingInitializerFails(t *testing.T) {
	_, err := parseSource(t, `fn khali f() { ginti x. }.`)
	require.Error(t, err)
}
