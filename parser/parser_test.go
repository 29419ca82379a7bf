package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sexpbuild/sexpcompile/ast"
)

func mustTokenize(t *testing.T, input string) []Token {
	t.Helper()
	tokens, err := Tokenize("", input, nil)
	require.NoError(t, err)
	return tokens
}

func TestParse(t *testing.T) {
	got, err := Parse(mustTokenize(t, "(add 2 (subtract 4 2))"), nil)
	require.NoError(t, err)

	want := &ast.Program{Body: []ast.Node{
		&ast.CallExpression{Name: "add", Params: []ast.Node{
			&ast.NumberLiteral{Value: "2"},
			&ast.CallExpression{Name: "subtract", Params: []ast.Node{
				&ast.NumberLiteral{Value: "4"},
				&ast.NumberLiteral{Value: "2"},
			}},
		}},
	}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected tree (-want +got):\n%s", d)
	}
}

func TestParseMultipleTopLevelForms(t *testing.T) {
	got, err := Parse(mustTokenize(t, `(print "hello") (print "world")`), nil)
	require.NoError(t, err)

	want := &ast.Program{Body: []ast.Node{
		&ast.CallExpression{Name: "print", Params: []ast.Node{&ast.StringLiteral{Value: "hello"}}},
		&ast.CallExpression{Name: "print", Params: []ast.Node{&ast.StringLiteral{Value: "world"}}},
	}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected tree (-want +got):\n%s", d)
	}
}

func TestParseCallWithoutParams(t *testing.T) {
	got, err := Parse(mustTokenize(t, "(noop)"), nil)
	require.NoError(t, err)

	require.Len(t, got.Body, 1)
	call := got.Body[0].(*ast.CallExpression)
	assert.Equal(t, "noop", call.Name)
	assert.Empty(t, call.Params)
}

func TestParseTopLevelLiterals(t *testing.T) {
	// Digits outside a call lex one per digit and each becomes its own
	// top-level literal.
	got, err := Parse(mustTokenize(t, "42"), nil)
	require.NoError(t, err)

	want := &ast.Program{Body: []ast.Node{
		&ast.NumberLiteral{Value: "4"},
		&ast.NumberLiteral{Value: "2"},
	}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected tree (-want +got):\n%s", d)
	}
}

func TestParseEmpty(t *testing.T) {
	got, err := Parse(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got.Body)
}

func TestParseJunk(t *testing.T) {
	// malformed token streams must fail with a parse error, never a panic or
	// a silently truncated tree
	inputs := map[string]string{
		"missing closing paren": "(add 2",
		"stray closing paren":   "(add 2))",
		"bare closing paren":    ")",
		"empty call":            "()",
		"number as call name":   "(2 3)",
		"string as call name":   `("x" 1)`,
		"name outside call":     "(add foo)",
		"open paren at end":     "(add (",
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(mustTokenize(t, input), nil)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr, "junk input should have returned a parse error")
			t.Logf("error from parse: %v", err)
		})
	}
}

func TestParseErrorPositions(t *testing.T) {
	_, err := Parse(mustTokenize(t, "(add 2"), nil)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Error(), "unexpected end of input")
	// anchored to the unclosed opening paren
	assert.Equal(t, 1, parseErr.GetPosition().Col)

	_, err = Parse(mustTokenize(t, "(add 2))"), nil)
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 8, parseErr.GetPosition().Col)
}
