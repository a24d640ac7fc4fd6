package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/masroof-maindak/nuktah/internal/token"
)

func TestTokenPos(t *testing.T) {
	tok := token.Token{Kind: token.IDENT, Literal: "x", Line: 5, Col: 10}
	pos := tok.Pos()
	assert.Equal(t, 5, pos.Line)
	assert.Equal(t, 10, pos.Col)
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok      token.Token
		expected string
	}{
		{token.Token{Kind: token.EOF}, "EOF"},
		{token.Token{Kind: token.IDENT, Literal: "foo"}, "IDENT(foo)"},
		{token.Token{Kind: token.FOR}, "FOR"},
		{token.Token{Kind: token.INT_LIT, Literal: "42"}, "INT_LIT(42)"},
		{token.Token{Kind: token.FLOAT_LIT, Literal: "3.14"}, "FLOAT_LIT(3.14)"},
		{token.Token{Kind: token.STRING_LIT, Literal: "hello"}, "STRING_LIT(hello)"},
		{token.Token{Kind: token.ASSIGN}, "ASSIGN"},
		{token.Token{Kind: token.EQ}, "EQ"},
		{token.Token{Kind: token.ILLEGAL, Literal: "@"}, "ILLEGAL(@)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.tok.String())
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "UNKNOWN", token.Kind(9999).String())
	assert.Equal(t, "IDENT", token.IDENT.String())
}

func TestKeywords(t *testing.T) {
	cases := map[string]token.Kind{
		"duhrao":  token.FOR,
		"agar":    token.IF,
		"warna":   token.ELSE,
		"wapsi":   token.RETURN,
		"dhancha": token.STRUCT,
		"toro":    token.BREAK,
		"ginti":   token.INT_KW,
		"asharia": token.FLOAT_KW,
		"jumla":   token.STRING_KW,
		"boli":    token.BOOL_KW,
		"khali":   token.VOID_KW,
		"fn":      token.FN,
		"sach":    token.TRUE,
		"jhoot":   token.FALSE,
	}

	for word, want := range cases {
		got, ok := token.IsKeyword(word)
		assert.True(t, ok, "expected %q to be a keyword", word)
		assert.Equal(t, want, got)
	}

	_, ok := token.IsKeyword("not_a_keyword")
	assert.False(t, ok)
}

func TestPunctuation(t *testing.T) {
	got, ok := token.IsPunct("=")
	assert.True(t, ok)
	assert.Equal(t, token.ASSIGN, got)

	_, ok = token.IsPunct("==")
	assert.False(t, ok, "fused operators are not in the single-char table")
}

func TestFusionTargets(t *testing.T) {
	assert.Equal(t, token.EQ, token.FusionTargets[token.ASSIGN])
	assert.Equal(t, token.SHL, token.FusionTargets[token.LT])
	assert.Equal(t, token.SHR, token.FusionTargets[token.GT])
	assert.Equal(t, token.AND, token.FusionTargets[token.AMP])
	assert.Equal(t, token.OR, token.FusionTargets[token.PIPE])
}
