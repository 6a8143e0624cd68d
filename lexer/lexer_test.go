package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func types(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, t := range tokens {
		out[i] = t.Type
	}
	return out
}

func TestTokenizeEndsWithEof(t *testing.T) {
	tokens := Tokenize("a")
	require.NotEmpty(t, tokens)
	assert.Equal(t, Eof, tokens[len(tokens)-1].Type)
}

func TestTokenizeImplicitConcatenation(t *testing.T) {
	tokens := Tokenize("ab")
	assert.Equal(t, []TokenType{Symbol, Concatenation, Symbol, Eof}, types(tokens))
}

func TestTokenizeNoConcatenationAfterUnion(t *testing.T) {
	tokens := Tokenize("a|b")
	assert.Equal(t, []TokenType{Symbol, Union, Symbol, Eof}, types(tokens))
}

func TestTokenizeConcatenationBeforeGroup(t *testing.T) {
	tokens := Tokenize("a(b)")
	assert.Equal(t, []TokenType{Symbol, Concatenation, OpenParen, Symbol, CloseParen, Eof}, types(tokens))
}

func TestTokenizeConcatenationAfterClosure(t *testing.T) {
	tokens := Tokenize("a*b")
	assert.Equal(t, []TokenType{Symbol, ClosureStar, Concatenation, Symbol, Eof}, types(tokens))
}

func TestTokenizeClassRange(t *testing.T) {
	tokens := Tokenize("[a-z]")
	assert.Equal(t, []TokenType{OpenBracket, Symbol, Dash, Symbol, CloseBracket, Eof}, types(tokens))
}

func TestTokenizeClassImplicitUnion(t *testing.T) {
	tokens := Tokenize("[abc]")
	assert.Equal(t, []TokenType{OpenBracket, Symbol, Union, Symbol, Union, Symbol, CloseBracket, Eof}, types(tokens))
}

func TestTokenizeClassMixedRangeAndUnion(t *testing.T) {
	tokens := Tokenize("[a-zA-Z0-9]")
	assert.Equal(t, []TokenType{
		OpenBracket,
		Symbol, Dash, Symbol, // a-z
		Union,
		Symbol, Dash, Symbol, // A-Z
		Union,
		Symbol, Dash, Symbol, // 0-9
		CloseBracket, Eof,
	}, types(tokens))
}

func TestTokenizeLoneDashAtClassBoundary(t *testing.T) {
	// '-' right before ']' is a plain Symbol, not a Dash.
	tokens := Tokenize("[a-]")
	assert.Equal(t, []TokenType{OpenBracket, Symbol, Union, Symbol, CloseBracket, Eof}, types(tokens))
}

func TestTokenizeLoneDashAtClassStart(t *testing.T) {
	tokens := Tokenize("[-a]")
	assert.Equal(t, []TokenType{OpenBracket, Symbol, Union, Symbol, CloseBracket, Eof}, types(tokens))
}

func TestTokenizeUnterminatedClassEndsAtEof(t *testing.T) {
	tokens := Tokenize("[abc")
	assert.Equal(t, []TokenType{OpenBracket, Symbol, Union, Symbol, Union, Symbol, Eof}, types(tokens))
}

func TestTokenizeEofSpanIsAfterLastRune(t *testing.T) {
	tokens := Tokenize("ab")
	eof := tokens[len(tokens)-1]
	assert.Equal(t, 3, eof.Start)
	assert.Equal(t, 3, eof.End)
}
