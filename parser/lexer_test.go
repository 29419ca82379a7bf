package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sexpbuild/sexpcompile/ast"
	"github.com/sexpbuild/sexpcompile/reporter"
)

func pos(offset, line, col int) ast.SourcePos {
	return ast.SourcePos{Offset: offset, Line: line, Col: col}
}

func TestLexer(t *testing.T) {
	tokens, err := Tokenize("test.lisp", "(add 2 (subtract 4 2))", nil)
	require.NoError(t, err)

	expected := []struct {
		kind      TokenKind
		text      string
		line, col int
	}{
		{TokenParen, "(", 1, 1},
		{TokenName, "add", 1, 2},
		{TokenNumber, "2", 1, 6},
		{TokenParen, "(", 1, 8},
		{TokenName, "subtract", 1, 9},
		{TokenNumber, "4", 1, 18},
		{TokenNumber, "2", 1, 20},
		{TokenParen, ")", 1, 21},
		{TokenParen, ")", 1, 22},
	}
	require.Len(t, tokens, len(expected))
	for i, exp := range expected {
		assert.Equal(t, exp.kind, tokens[i].Kind, "token %d kind", i)
		assert.Equal(t, exp.text, tokens[i].Text, "token %d text", i)
		assert.Equal(t, exp.line, tokens[i].Pos.Line, "token %d line", i)
		assert.Equal(t, exp.col, tokens[i].Pos.Col, "token %d col", i)
		assert.Equal(t, "test.lisp", tokens[i].Pos.Filename, "token %d filename", i)
	}
}

func TestLexerStrings(t *testing.T) {
	tokens, err := Tokenize("", `(concat "foo" "bar")`, nil)
	require.NoError(t, err)

	require.Len(t, tokens, 5)
	assert.Equal(t, Token{Kind: TokenString, Text: "foo", Pos: pos(8, 1, 9)}, tokens[2])
	assert.Equal(t, Token{Kind: TokenString, Text: "bar", Pos: pos(14, 1, 15)}, tokens[3])
}

func TestLexerTracksLines(t *testing.T) {
	tokens, err := Tokenize("", "(add\n  1 2)", nil)
	require.NoError(t, err)

	require.Len(t, tokens, 5)
	one := tokens[2]
	assert.Equal(t, "1", one.Text)
	assert.Equal(t, 2, one.Pos.Line)
	assert.Equal(t, 3, one.Pos.Col)
}

func TestLexerNamesKeepCase(t *testing.T) {
	tokens, err := Tokenize("", "(ADD x Y)", nil)
	require.NoError(t, err)

	require.Len(t, tokens, 5)
	assert.Equal(t, "ADD", tokens[1].Text)
	assert.Equal(t, "x", tokens[2].Text)
	assert.Equal(t, "Y", tokens[3].Text)
}

func TestLexerSingleDigitNumbers(t *testing.T) {
	var warnings []reporter.ErrorWithPos
	h := reporter.NewHandler(reporter.NewReporter(nil, func(err reporter.ErrorWithPos) {
		warnings = append(warnings, err)
	}))

	tokens, err := Tokenize("", "(add 42 7 99)", h)
	require.NoError(t, err)

	var texts []string
	for _, tok := range tokens {
		texts = append(texts, tok.Text)
	}
	assert.Equal(t, []string{"(", "add", "4", "2", "7", "9", "9", ")"}, texts)

	// one warning per digit run that gets split
	require.Len(t, warnings, 2)
	assert.Equal(t, 6, warnings[0].GetPosition().Col)
	assert.Equal(t, 11, warnings[1].GetPosition().Col)
}

func TestLexerMultiDigitOption(t *testing.T) {
	var warnings []reporter.ErrorWithPos
	h := reporter.NewHandler(reporter.NewReporter(nil, func(err reporter.ErrorWithPos) {
		warnings = append(warnings, err)
	}))

	tokens, err := Tokenize("", "(add 42 7 99)", h, WithMultiDigitNumbers())
	require.NoError(t, err)

	var texts []string
	for _, tok := range tokens {
		texts = append(texts, tok.Text)
	}
	assert.Equal(t, []string{"(", "add", "42", "7", "99", ")"}, texts)
	assert.Empty(t, warnings)
}

func TestLexerUnexpectedCharacter(t *testing.T) {
	_, err := Tokenize("", "(add 2 #)", nil)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Contains(t, lexErr.Error(), "'#'")
	assert.Equal(t, 1, lexErr.GetPosition().Line)
	assert.Equal(t, 8, lexErr.GetPosition().Col)
}

func TestLexerUnterminatedString(t *testing.T) {
	_, err := Tokenize("", `(print "oops`, nil)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Contains(t, lexErr.Error(), "unterminated string literal")
	// anchored to the opening quote
	assert.Equal(t, 8, lexErr.GetPosition().Col)
}

func TestLexerEmptyInput(t *testing.T) {
	tokens, err := Tokenize("", "", nil)
	require.NoError(t, err)
	assert.Empty(t, tokens)

	tokens, err = Tokenize("", "  \n\t ", nil)
	require.NoError(t, err)
	assert.Empty(t, tokens)
}
