package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sexpbuild/sexpcompile/ast"
)

func TestPrint(t *testing.T) {
	nested := &ast.ExpressionStatement{Expression: &ast.FunctionCall{
		Callee: &ast.Identifier{Name: "add"},
		Arguments: []ast.Node{
			&ast.NumberLiteral{Value: "2"},
			&ast.FunctionCall{
				Callee: &ast.Identifier{Name: "subtract"},
				Arguments: []ast.Node{
					&ast.NumberLiteral{Value: "4"},
					&ast.NumberLiteral{Value: "2"},
				},
			},
		},
	}}

	cases := []struct {
		name string
		node ast.Node
		want string
	}{
		{"identifier", &ast.Identifier{Name: "x"}, "x"},
		{"number", &ast.NumberLiteral{Value: "4"}, "4"},
		{"string", &ast.StringLiteral{Value: "hello"}, `"hello"`},
		{"empty string", &ast.StringLiteral{Value: ""}, `""`},
		{"call without arguments", &ast.FunctionCall{Callee: &ast.Identifier{Name: "noop"}}, "noop()"},
		{"nested call statement", nested, "add(2, subtract(4, 2));"},
		{"empty program", &ast.Program{}, ""},
		{
			"program joins statements with newlines",
			&ast.Program{Body: []ast.Node{
				&ast.ExpressionStatement{Expression: &ast.FunctionCall{Callee: &ast.Identifier{Name: "a"}}},
				&ast.ExpressionStatement{Expression: &ast.FunctionCall{Callee: &ast.Identifier{Name: "b"}}},
			}},
			"a();\nb();",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Print(tc.node)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPrintUnsupportedNode(t *testing.T) {
	// source-shaped nodes have no rendering; they must be lowered first
	_, err := Print(&ast.CallExpression{Name: "add"})
	var une *UnsupportedNodeError
	require.ErrorAs(t, err, &une)
	assert.Contains(t, err.Error(), "CallExpression")

	_, err = Print(&ast.Program{Body: []ast.Node{&ast.CallExpression{Name: "add"}}})
	require.ErrorAs(t, err, &une, "the guard applies at any depth")
}
