// internal/parser/grammar.go

package parser

import (
	"github.com/masroof-maindak/nuktah/internal/ast"
	"github.com/masroof-maindak/nuktah/internal/token"
)

// parseAssignExpr is the top of the precedence lattice: `target = value`,
// right-associative via tail recursion. A primary in assignment-target
// position is not distinguished syntactically from any other bool-level
// expression; Target is whatever parseBoolExpr produced.
func (p *Parser) parseAssignExpr() (ast.Expr, error) {
	pos := p.peek().Pos()
	left, err := p.parseBoolExpr()
	if err != nil {
		return nil, err
	}

	if _, ok := p.accept(token.ASSIGN); ok {
		right, err := p.parseAssignExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewAssignExpr(pos, left, right), nil
	}

	return left, nil
}

// parseBoolExpr is `&&` / `||`, left-associative.
func (p *Parser) parseBoolExpr() (ast.Expr, error) {
	pos := p.peek().Pos()
	left, err := p.parseBitOrExpr()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind == token.AND || p.peek().Kind == token.OR {
		op := p.next().Kind
		right, err := p.parseBitOrExpr()
		if err != nil {
			return nil, err
		}
		left = ast.NewBoolExpr(pos, left, op, right)
	}
	return left, nil
}

// parseBitOrExpr is `|`, left-associative.
func (p *Parser) parseBitOrExpr() (ast.Expr, error) {
	pos := p.peek().Pos()
	left, err := p.parseBitAndExpr()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind == token.PIPE {
		op := p.next().Kind
		right, err := p.parseBitAndExpr()
		if err != nil {
			return nil, err
		}
		left = ast.NewBitOrExpr(pos, left, op, right)
	}
	return left, nil
}

// parseBitAndExpr is `&`, left-associative.
func (p *Parser) parseBitAndExpr() (ast.Expr, error) {
	pos := p.peek().Pos()
	left, err := p.parseCompExpr()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind == token.AMP {
		op := p.next().Kind
		right, err := p.parseCompExpr()
		if err != nil {
			return nil, err
		}
		left = ast.NewBitAndExpr(pos, left, op, right)
	}
	return left, nil
}

// parseCompExpr is `<` / `>` / `==`, left-associative.
func (p *Parser) parseCompExpr() (ast.Expr, error) {
	pos := p.peek().Pos()
	left, err := p.parseShiftExpr()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind == token.LT || p.peek().Kind == token.GT || p.peek().Kind == token.EQ {
		op := p.next().Kind
		right, err := p.parseShiftExpr()
		if err != nil {
			return nil, err
		}
		left = ast.NewCompExpr(pos, left, op, right)
	}
	return left, nil
}

// parseShiftExpr is `<<` / `>>`, left-associative.
func (p *Parser) parseShiftExpr() (ast.Expr, error) {
	pos := p.peek().Pos()
	left, err := p.parseAddExpr()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind == token.SHL || p.peek().Kind == token.SHR {
		op := p.next().Kind
		right, err := p.parseAddExpr()
		if err != nil {
			return nil, err
		}
		left = ast.NewShiftExpr(pos, left, op, right)
	}
	return left, nil
}

// parseAddExpr is `+` / `-`, left-associative.
func (p *Parser) parseAddExpr() (ast.Expr, error) {
	pos := p.peek().Pos()
	left, err := p.parseMulExpr()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind == token.PLUS || p.peek().Kind == token.MINUS {
		op := p.next().Kind
		right, err := p.parseMulExpr()
		if err != nil {
			return nil, err
		}
		left = ast.NewAddExpr(pos, left, op, right)
	}
	return left, nil
}

// parseMulExpr is `*` / `/` / `%`, left-associative.
func (p *Parser) parseMulExpr() (ast.Expr, error) {
	pos := p.peek().Pos()
	left, err := p.parseExpExpr()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind == token.STAR || p.peek().Kind == token.SLASH || p.peek().Kind == token.PERCENT {
		op := p.next().Kind
		right, err := p.parseExpExpr()
		if err != nil {
			return nil, err
		}
		left = ast.NewMulExpr(pos, left, op, right)
	}
	return left, nil
}

// parseExpExpr is `^`, right-associative. Its left operand is a single
// unary expression, never a nested exp-expression: chained prefix
// operators are handled entirely within parseUnaryExpr's own recursion, so
// `-a^2^3` parses as Exp(Unary(-, a), Exp(2, 3)) rather than
// Unary(-, Exp(a, Exp(2, 3))) — unary binds its operand before `^` ever
// gets a chance to claim it.
func (p *Parser) parseExpExpr() (ast.Expr, error) {
	pos := p.peek().Pos()
	left, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}
	if _, ok := p.accept(token.CARET); ok {
		right, err := p.parseExpExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewExpExpr(pos, left, right), nil
	}
	return left, nil
}

// parseUnaryExpr is a prefix `-`, `!`, or `~`, recursing into itself so
// chained prefixes (`--x`, `!!b`) nest correctly; falls through to
// parsePrimary once no prefix operator remains.
func (p *Parser) parseUnaryExpr() (ast.Expr, error) {
	tok := p.peek()
	if tok.Kind == token.MINUS || tok.Kind == token.NOT || tok.Kind == token.TILDE {
		p.next()
		operand, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr(tok.Pos(), tok.Kind, operand), nil
	}
	return p.parsePrimary()
}

// parsePrimary parses a literal, identifier, parenthesized sub-expression,
// or call. Two-token lookahead distinguishes a call from a bare variable
// reference: `IDENT (` is a call, any other continuation is a reference.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.peek()
	pos := tok.Pos()

	switch tok.Kind {
	case token.INT_LIT:
		p.next()
		return ast.NewLiteral(pos, ast.IntLit, tok.Literal), nil
	case token.FLOAT_LIT:
		p.next()
		return ast.NewLiteral(pos, ast.FloatLit, tok.Literal), nil
	case token.DQUOTE:
		// The lexer leaves the delimiting quotes in the stream around the
		// fused string fragment: `" STRING_LIT "`.
		p.next()
		strTok, err := p.expect(token.STRING_LIT, "string literal")
		if err != nil {
			if perr, ok := err.(*Error); ok && perr.Kind == UnexpectedToken {
				perr.Kind = MissingLiteral
			}
			return nil, err
		}
		if _, err := p.expect(token.DQUOTE, `"`); err != nil {
			return nil, err
		}
		return ast.NewLiteral(pos, ast.StringLit, strTok.Literal), nil
	case token.TRUE:
		p.next()
		return ast.NewLiteral(pos, ast.BoolLit, "sach"), nil
	case token.FALSE:
		p.next()
		return ast.NewLiteral(pos, ast.BoolLit, "jhoot"), nil
	case token.LPAREN:
		p.next()
		inner, err := p.parseAssignExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
		return ast.NewParenExpr(pos, inner), nil
	case token.IDENT:
		p.next()
		if _, ok := p.accept(token.LPAREN); ok {
			return p.parseCallArgs(pos, tok.Literal)
		}
		return ast.NewIdent(pos, tok.Literal), nil
	case token.EOF:
		return nil, &Error{Kind: UnexpectedEOF, Pos: pos}
	default:
		return nil, &Error{Kind: UnexpectedToken, Want: "expression", Got: tok, Pos: pos}
	}
}

// parseCallArgs parses the comma-separated actual argument list following
// an already-consumed `ident (`.
func (p *Parser) parseCallArgs(pos token.Position, callee string) (ast.Expr, error) {
	var args []ast.Expr
	if p.peek().Kind != token.RPAREN {
		for {
			arg, err := p.parseAssignExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if _, ok := p.accept(token.COMMA); !ok {
				break
			}
		}
	}
	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	return ast.NewCallExpr(pos, callee, args), nil
}
