// internal/parser/parser.go

// Package parser implements a predictive recursive-descent parser turning a
// Nuktah token sequence into a translation-unit AST. Every grammar
// non-terminal gets one routine returning its AST node, or a classified
// *Error at the first offending token. No recovery is attempted: the
// specification treats error recovery as a non-goal, so a parse failure
// aborts the whole pipeline immediately.
package parser

import (
	"fmt"

	"github.com/masroof-maindak/nuktah/internal/ast"
	"github.com/masroof-maindak/nuktah/internal/token"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	UnexpectedEOF ErrorKind = iota
	UnexpectedToken
	MissingLiteral
	MissingType
	MissingInitializer
)

// Error is the parser's classified failure, carrying the offending token
// and position so a caller can name the failing construct.
type Error struct {
	Kind ErrorKind
	Want string
	Got  token.Token
	Pos  token.Position
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedEOF:
		return "unexpected end of input"
	case MissingLiteral:
		return fmt.Sprintf("expected a literal, got %s", e.Got)
	case MissingType:
		return fmt.Sprintf("expected a type keyword, got %s", e.Got)
	case MissingInitializer:
		return "variable declaration requires an initializer expression"
	default:
		return fmt.Sprintf("expected %s, got %s", e.Want, e.Got)
	}
}

// Parser consumes a TokenStream and produces AST nodes.
type Parser struct {
	s TokenStream
}

// NewParser wraps a token stream produced by the lexer.
func NewParser(s TokenStream) *Parser {
	return &Parser{s: s}
}

// ParseFile tokenizes nothing itself; it parses an already-lexed token
// sequence into a TranslationUnit, or returns the first *Error encountered.
func ParseFile(tokens []token.Token) (*ast.TranslationUnit, error) {
	p := NewParser(NewTokenStream(tokens))
	return p.parseTranslationUnit()
}

func (p *Parser) peek() token.Token { return p.s.Peek() }
func (p *Parser) next() token.Token { return p.s.Next() }

// accept consumes the next token if its kind matches k, without caring
// about its literal payload.
func (p *Parser) accept(k token.Kind) (token.Token, bool) {
	if p.peek().Kind == k {
		return p.next(), true
	}
	return token.Token{}, false
}

// expect requires the next token to carry exactly kind k.
func (p *Parser) expect(k token.Kind, want string) (token.Token, error) {
	tok := p.peek()
	if tok.Kind == token.EOF {
		return token.Token{}, &Error{Kind: UnexpectedEOF, Pos: tok.Pos()}
	}
	if tok.Kind != k {
		return token.Token{}, &Error{Kind: UnexpectedToken, Want: want, Got: tok, Pos: tok.Pos()}
	}
	return p.next(), nil
}

func (p *Parser) parseTranslationUnit() (*ast.TranslationUnit, error) {
	pos := p.peek().Pos()
	var decls []ast.Decl

	for !p.s.IsEOF() {
		d, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}

	return ast.NewTranslationUnit(pos, decls), nil
}

// parseDecl dispatches on the leading token: `fn` starts a function
// declaration, a primitive-type keyword starts a variable declaration.
func (p *Parser) parseDecl() (ast.Decl, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.FN:
		return p.parseFnDecl()
	case token.INT_KW, token.FLOAT_KW, token.STRING_KW, token.BOOL_KW:
		v, err := p.parseVarDecl()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.DOT, "."); err != nil {
			return nil, err
		}
		return v, nil
	case token.EOF:
		return nil, &Error{Kind: UnexpectedEOF, Pos: tok.Pos()}
	default:
		return nil, &Error{Kind: UnexpectedToken, Want: "declaration", Got: tok, Pos: tok.Pos()}
	}
}

// isTypeKeyword reports whether k names a type usable in a variable
// declaration; VOID_KW is excluded since only function return types allow
// void.
func isTypeKeyword(k token.Kind) bool {
	switch k {
	case token.INT_KW, token.FLOAT_KW, token.STRING_KW, token.BOOL_KW:
		return true
	}
	return false
}

// parseVarDecl parses `type name = expr`, stopping short of the trailing
// terminator: callers differ on what follows (a bare `.` at decl/stmt
// level, or the for-header's own `.`).
func (p *Parser) parseVarDecl() (*ast.VarDecl, error) {
	typTok := p.peek()
	if !isTypeKeyword(typTok.Kind) {
		return nil, &Error{Kind: MissingType, Got: typTok, Pos: typTok.Pos()}
	}
	p.next()

	nameTok, err := p.expect(token.IDENT, "identifier")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.ASSIGN, "="); err != nil {
		return nil, err
	}

	init, err := p.parseAssignExpr()
	if err != nil {
		return nil, err
	}
	if init == nil {
		return nil, &Error{Kind: MissingInitializer, Pos: nameTok.Pos()}
	}

	return ast.NewVarDecl(typTok.Pos(), typTok.Kind, nameTok.Literal, init), nil
}

// parseFnDecl parses `fn type name(params) { block }.`. Void is legal here,
// unlike in parseVarDecl.
func (p *Parser) parseFnDecl() (*ast.FnDecl, error) {
	pos := p.peek().Pos()
	p.next() // fn

	typTok := p.peek()
	if !isTypeKeyword(typTok.Kind) && typTok.Kind != token.VOID_KW {
		return nil, &Error{Kind: MissingType, Got: typTok, Pos: typTok.Pos()}
	}
	p.next()

	nameTok, err := p.expect(token.IDENT, "identifier")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.LPAREN, "("); err != nil {
		return nil, err
	}

	var params []*ast.Param
	if p.peek().Kind != token.RPAREN {
		for {
			pTypTok := p.peek()
			if !isTypeKeyword(pTypTok.Kind) {
				return nil, &Error{Kind: MissingType, Got: pTypTok, Pos: pTypTok.Pos()}
			}
			p.next()

			pNameTok, err := p.expect(token.IDENT, "identifier")
			if err != nil {
				return nil, err
			}
			params = append(params, ast.NewParam(pTypTok.Pos(), pTypTok.Kind, pNameTok.Literal))

			if _, ok := p.accept(token.COMMA); !ok {
				break
			}
		}
	}

	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.DOT, "."); err != nil {
		return nil, err
	}

	return ast.NewFnDecl(pos, nameTok.Literal, params, typTok.Kind, body), nil
}

// parseBlock parses `{ stmt* }`, consuming both braces.
func (p *Parser) parseBlock() (*ast.Block, error) {
	pos := p.peek().Pos()
	if _, err := p.expect(token.LBRACE, "{"); err != nil {
		return nil, err
	}

	var stmts []ast.Stmt
	for p.peek().Kind != token.RBRACE {
		if p.peek().Kind == token.EOF {
			return nil, &Error{Kind: UnexpectedEOF, Pos: p.peek().Pos()}
		}
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}

	if _, err := p.expect(token.RBRACE, "}"); err != nil {
		return nil, err
	}

	return ast.NewBlock(pos, stmts), nil
}

// parseStmt dispatches on the leading token per the statement-dispatch
// table: `for`/`if`/`return`/`break`/a type keyword each pick a dedicated
// routine, everything else falls through to an expression-statement.
func (p *Parser) parseStmt() (ast.Stmt, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.FOR:
		return p.parseForStmt()
	case token.IF:
		return p.parseIfStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.BREAK:
		p.next()
		if _, err := p.expect(token.DOT, "."); err != nil {
			return nil, err
		}
		return ast.NewBreakStmt(tok.Pos()), nil
	case token.INT_KW, token.FLOAT_KW, token.STRING_KW, token.BOOL_KW:
		v, err := p.parseVarDecl()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.DOT, "."); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return p.parseExprStmt()
	}
}

// parseExprStmt parses an expression followed by its terminator. A bare
// `.` with nothing preceding it parses to the empty expression-statement
// sugar.
func (p *Parser) parseExprStmt() (*ast.ExprStmt, error) {
	pos := p.peek().Pos()
	if _, ok := p.accept(token.DOT); ok {
		return ast.NewExprStmt(pos, nil), nil
	}

	e, err := p.parseAssignExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DOT, "."); err != nil {
		return nil, err
	}
	return ast.NewExprStmt(pos, e), nil
}

// parseReturnStmt parses `wapsi [expr].`.
func (p *Parser) parseReturnStmt() (*ast.ReturnStmt, error) {
	pos := p.peek().Pos()
	p.next() // wapsi

	if _, ok := p.accept(token.DOT); ok {
		return ast.NewReturnStmt(pos, nil), nil
	}

	e, err := p.parseAssignExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DOT, "."); err != nil {
		return nil, err
	}
	return ast.NewReturnStmt(pos, e), nil
}

// parseIfStmt parses `agar ( cond ) { then } [warna { else }].`. A missing
// else-branch produces an empty (non-nil) Block, so later walks always see
// two branch blocks.
func (p *Parser) parseIfStmt() (*ast.IfStmt, error) {
	pos := p.peek().Pos()
	p.next() // agar

	if _, err := p.expect(token.LPAREN, "("); err != nil {
		return nil, err
	}
	cond, err := p.parseAssignExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}

	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	els := ast.NewBlock(then.Pos(), nil)
	if _, ok := p.accept(token.ELSE); ok {
		els, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.DOT, "."); err != nil {
		return nil, err
	}

	return ast.NewIfStmt(pos, cond, then, els), nil
}

// parseForStmt parses `duhrao ( [init]. [cond]. [update] ) { body }.`. The
// init uses the bare terminator when absent; the update closes the header
// immediately with `)` when absent.
func (p *Parser) parseForStmt() (*ast.ForStmt, error) {
	pos := p.peek().Pos()
	p.next() // duhrao

	if _, err := p.expect(token.LPAREN, "("); err != nil {
		return nil, err
	}

	var init *ast.VarDecl
	if isTypeKeyword(p.peek().Kind) {
		v, err := p.parseVarDecl()
		if err != nil {
			return nil, err
		}
		init = v
	}
	if _, err := p.expect(token.DOT, "."); err != nil {
		return nil, err
	}

	var cond ast.Expr
	if p.peek().Kind != token.DOT {
		c, err := p.parseAssignExpr()
		if err != nil {
			return nil, err
		}
		cond = c
	}
	if _, err := p.expect(token.DOT, "."); err != nil {
		return nil, err
	}

	var update ast.Expr
	if p.peek().Kind != token.RPAREN {
		u, err := p.parseAssignExpr()
		if err != nil {
			return nil, err
		}
		update = u
	}
	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DOT, "."); err != nil {
		return nil, err
	}

	return ast.NewForStmt(pos, init, cond, update, body), nil
}
