// Package compiler sequences the front end's stages — lex, parse, scope
// analysis, type check, IR lowering — over one source string. The first
// stage to fail short-circuits the pipeline; its classified error is
// wrapped in a CompileError naming the stage it came from.
package compiler

import (
	"fmt"

	"github.com/masroof-maindak/nuktah/internal/ir"
	"github.com/masroof-maindak/nuktah/internal/lexer"
	"github.com/masroof-maindak/nuktah/internal/parser"
	"github.com/masroof-maindak/nuktah/internal/scope"
	"github.com/masroof-maindak/nuktah/internal/typecheck"
)

// Stage names the pipeline stage a CompileError came from.
type Stage string

const (
	StageLex       Stage = "lex"
	StageParse     Stage = "parse"
	StageScope     Stage = "scope"
	StageTypeCheck Stage = "typecheck"
)

// CompileError wraps one stage's classified error. The underlying
// *lexer.Error / *parser.Error / *scope.Error / *typecheck.Error stays
// reachable through errors.As.
type CompileError struct {
	Stage Stage
	Err   error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Compile runs the whole front end over src, returning the lowered basic
// blocks or a *CompileError wrapping the first stage failure.
func Compile(src string) ([]ir.Block, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, &CompileError{Stage: StageLex, Err: err}
	}

	tu, err := parser.ParseFile(tokens)
	if err != nil {
		return nil, &CompileError{Stage: StageParse, Err: err}
	}

	env, err := scope.Analyze(tu)
	if err != nil {
		return nil, &CompileError{Stage: StageScope, Err: err}
	}

	if err := typecheck.Check(tu, env); err != nil {
		return nil, &CompileError{Stage: StageTypeCheck, Err: err}
	}

	return ir.Build(tu), nil
}
