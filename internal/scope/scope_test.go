package scope_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/masroof-maindak/nuktah/internal/lexer"
	"github.com/masroof-maindak/nuktah/internal/parser"
	"github.com/masroof-maindak/nuktah/internal/scope"
)

func analyzeSource(t *testing.T, src string) error {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	require.NoError(t, err)
	tu, err := parser.ParseFile(toks)
	require.NoError(t, err)
	_, err = scope.Analyze(tu)
	return err
}

func TestIdentityFunctionScopesCleanly(t *testing.T) {
	err := analyzeSource(t, `fn ginti id(ginti x) { wapsi x. }.`)
	require.NoError(t, err)
}

func TestShadowedVariableIsRejected(t *testing.T) {
	err := analyzeSource(t, `fn khali f() { ginti x = 1. agar (x==1) { ginti x = 2. } warna { }. }.`)
	require.Error(t, err)
	serr, ok := err.(*scope.Error)
	require.True(t, ok)
	require.Equal(t, scope.VariableRedefinition, serr.Kind)
}

func TestUndeclaredVariableUse(t *testing.T) {
	err := analyzeSource(t, `fn khali f() { wapsi y. }.`)
	require.Error(t, err)
	serr := err.(*scope.Error)
	require.Equal(t, scope.UndeclaredVariableCalled, serr.Kind)
}

func TestUndefinedFunctionCall(t *testing.T) {
	err := analyzeSource(t, `fn khali f() { g(1). }.`)
	require.Error(t, err)
	serr := err.(*scope.Error)
	require.Equal(t, scope.UndefinedFunctionCalled, serr.Kind)
}

func TestFunctionPrototypeRedefinition(t *testing.T) {
	err := analyzeSource(t, `fn khali f() { }. fn ginti f() { wapsi 1. }.`)
	require.Error(t, err)
	serr := err.(*scope.Error)
	require.Equal(t, scope.FunctionPrototypeRedefinition, serr.Kind)
}

func TestSelfReferentialInitializerRejected(t *testing.T) {
	// The initializer is scanned before the new binding lands, so `x`
	// cannot resolve against its own declaration.
	err := analyzeSource(t, `ginti x = x.`)
	require.Error(t, err)
	serr := err.(*scope.Error)
	require.Equal(t, scope.UndeclaredVariableCalled, serr.Kind)
}

func TestForLoopVariableVisibleInCondAndUpdate(t *testing.T) {
	err := analyzeSource(t, `fn khali f() { duhrao (ginti i = 0. i<10. i=i+1) { }. }.`)
	require.NoError(t, err)
}

func TestCallingAnotherFunctionResolves(t *testing.T) {
	err := analyzeSource(t, `fn ginti g(ginti a, ginti b) { wapsi a+b. }. fn khali h() { g(1). }.`)
	require.NoError(t, err)
}

func TestVariableCannotShadowParam(t *testing.T) {
	err := analyzeSource(t, `fn ginti f(ginti x) { ginti x = 1. wapsi x. }.`)
	require.Error(t, err)
	serr := err.(*scope.Error)
	require.Equal(t, scope.VariableRedefinition, serr.Kind)
}
