// Package lower rewrites the source-shaped tree produced by the parser into
// the target-shaped tree rendered by the printer. Calls become function calls
// with identifier callees, top-level calls are wrapped in expression
// statements, and literals are carried through unchanged.
package lower

import (
	"fmt"

	"github.com/sexpbuild/sexpcompile/ast"
	"github.com/sexpbuild/sexpcompile/walk"
)

// Transformer rewrites a tree between parsing and code generation. The
// returned program must be a fresh tree; implementations must not mutate
// their input.
type Transformer interface {
	Transform(*ast.Program) (*ast.Program, error)
}

// TransformerFunc is an adapter to use a function as a Transformer.
type TransformerFunc func(*ast.Program) (*ast.Program, error)

// Transform implements the Transformer interface.
func (f TransformerFunc) Transform(p *ast.Program) (*ast.Program, error) {
	return f(p)
}

// Lowering returns the built-in lowering pass as a Transformer.
func Lowering() Transformer {
	return TransformerFunc(Transform)
}

// Transform builds a target-shaped program from the given source-shaped one.
// The source tree is read through the walk package and never modified; every
// node in the result is newly constructed.
func Transform(prog *ast.Program) (*ast.Program, error) {
	target := &ast.Program{}

	// dests associates each source node with the target list its lowered
	// children append into. It is bookkeeping local to this call; neither
	// tree refers to it once lowering completes.
	dests := map[ast.Node]*[]ast.Node{prog: &target.Body}
	appendTo := func(parent ast.Node, n ast.Node) error {
		dest, ok := dests[parent]
		if !ok {
			return fmt.Errorf("lower: no destination registered for parent node %T", parent)
		}
		*dest = append(*dest, n)
		return nil
	}

	v := &walk.Visitor{
		NumberLiteral: walk.Hooks{
			Enter: func(node, parent ast.Node) error {
				lit := node.(*ast.NumberLiteral)
				return appendTo(parent, &ast.NumberLiteral{Value: lit.Value})
			},
		},
		StringLiteral: walk.Hooks{
			Enter: func(node, parent ast.Node) error {
				lit := node.(*ast.StringLiteral)
				return appendTo(parent, &ast.StringLiteral{Value: lit.Value})
			},
		},
		CallExpression: walk.Hooks{
			Enter: func(node, parent ast.Node) error {
				call := node.(*ast.CallExpression)
				lowered := &ast.FunctionCall{Callee: &ast.Identifier{Name: call.Name}}
				dests[node] = &lowered.Arguments
				if _, nested := parent.(*ast.CallExpression); nested {
					return appendTo(parent, lowered)
				}
				// Statement position: wrap the call so the printer emits a
				// terminating semicolon.
				return appendTo(parent, &ast.ExpressionStatement{Expression: lowered})
			},
		},
	}
	if err := walk.Walk(prog, v); err != nil {
		return nil, err
	}
	return target, nil
}
