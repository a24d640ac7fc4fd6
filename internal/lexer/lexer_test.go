package lexer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masroof-maindak/nuktah/internal/lexer"
	"github.com/masroof-maindak/nuktah/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeKeywordsAndIdent(t *testing.T) {
	toks, err := lexer.Tokenize(`fn ginti id(ginti x) { wapsi x. }.`)
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.FN, token.INT_KW, token.IDENT, token.LPAREN, token.INT_KW, token.IDENT, token.RPAREN,
		token.LBRACE, token.RETURN, token.IDENT, token.DOT, token.RBRACE, token.DOT, token.EOF,
	}, kinds(toks))
}

func TestTokenizeCompoundOperators(t *testing.T) {
	toks, err := lexer.Tokenize(`a==b && c||d << e >> f`)
	require.NoError(t, err)
	got := kinds(toks)
	assert.Contains(t, got, token.EQ)
	assert.Contains(t, got, token.AND)
	assert.Contains(t, got, token.OR)
	assert.Contains(t, got, token.SHL)
	assert.Contains(t, got, token.SHR)
	assert.NotContains(t, got, token.ASSIGN)
	assert.NotContains(t, got, token.AMP)
	assert.NotContains(t, got, token.PIPE)
}

func TestTokenizeFloatFusion(t *testing.T) {
	toks, err := lexer.Tokenize(`3.14`)
	require.NoError(t, err)
	require.Len(t, toks, 2) // FLOAT_LIT, EOF
	assert.Equal(t, token.FLOAT_LIT, toks[0].Kind)
	assert.Equal(t, "3.14", toks[0].Literal)
}

func TestTokenizeDotAsTerminatorWhenNotBetweenDigits(t *testing.T) {
	toks, err := lexer.Tokenize(`wapsi x.`)
	require.NoError(t, err)
	got := kinds(toks)
	assert.Contains(t, got, token.DOT)
}

func TestTokenizeStringLiteral(t *testing.T) {
	toks, err := lexer.Tokenize(`jumla s = "hello world".`)
	require.NoError(t, err)
	var found bool
	for _, tok := range toks {
		if tok.Kind == token.STRING_LIT {
			found = true
			assert.Equal(t, "hello world", tok.Literal)
		}
	}
	assert.True(t, found, "expected a STRING_LIT token")
}

func TestTokenizeEscapedQuote(t *testing.T) {
	toks, err := lexer.Tokenize(`"a\"b"`)
	require.NoError(t, err)
	var found bool
	for _, tok := range toks {
		if tok.Kind == token.STRING_LIT {
			found = true
			assert.Equal(t, `a\"b`, tok.Literal)
		}
	}
	assert.True(t, found)
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := lexer.Tokenize(`"unterminated`)
	require.Error(t, err)
	lexErr, ok := err.(*lexer.Error)
	require.True(t, ok)
	assert.Equal(t, lexer.UnterminatedString, lexErr.Kind)
}

func TestTokenizeInvalidIdentifier(t *testing.T) {
	_, err := lexer.Tokenize(`9abc`)
	require.Error(t, err)
}

func TestTokenizeComment(t *testing.T) {
	toks, err := lexer.Tokenize("ginti x = 1. $ this is ignored\nwapsi x.")
	require.NoError(t, err)
	for _, tok := range toks {
		assert.NotEqual(t, "ignored", tok.Literal)
	}
	got := kinds(toks)
	assert.Contains(t, got, token.RETURN)
}

func TestTokenizeWhitespaceStripped(t *testing.T) {
	toks, err := lexer.Tokenize("  \t\n  ginti x = 1.  \n")
	require.NoError(t, err)
	for _, tok := range toks {
		assert.NotEqual(t, token.WHITESPACE, tok.Kind)
		assert.NotEqual(t, token.NEWLINE, tok.Kind)
	}
}

func TestTokenizeRoundTripsTextModuloWhitespace(t *testing.T) {
	// For quote- and comment-free source, concatenating the emitted
	// tokens' literal text reproduces the input with whitespace stripped.
	srcs := []string{
		`fn ginti id(ginti x) { wapsi x. }.`,
		`ginti x = 1-2-3.`,
		`boli b = a==1 && c<2.`,
		`ginti y = 3.14 + n<<2.`,
	}
	strip := func(s string) string {
		return strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
				return -1
			}
			return r
		}, s)
	}

	for _, src := range srcs {
		toks, err := lexer.Tokenize(src)
		require.NoError(t, err)
		var sb strings.Builder
		for _, tok := range toks {
			sb.WriteString(tok.Literal)
		}
		assert.Equal(t, strip(src), sb.String(), "source: %s", src)
	}
}

func TestTokenizeBooleanLiterals(t *testing.T) {
	toks, err := lexer.Tokenize(`boli b = sach.`)
	require.NoError(t, err)
	got := kinds(toks)
	assert.Contains(t, got, token.TRUE)
}
