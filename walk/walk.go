// Package walk provides a generic depth-first traversal engine for the
// syntax trees defined in the ast package. It knows nothing about what any
// particular traversal computes; it is parameterized entirely by the visitor
// it is given.
package walk

import (
	"fmt"

	"github.com/sexpbuild/sexpcompile/ast"
)

// Hooks is an optional pair of callbacks for one node type. Enter is invoked
// before the node's children are walked, Exit after all of them have been.
// Either may be nil. The parent argument is nil for the root node. A non-nil
// error aborts the walk and is returned from Walk.
type Hooks struct {
	Enter func(node, parent ast.Node) error
	Exit  func(node, parent ast.Node) error
}

// Visitor maps each node type to its hooks. The zero value visits every node
// and invokes nothing.
type Visitor struct {
	Program             Hooks
	CallExpression      Hooks
	NumberLiteral       Hooks
	StringLiteral       Hooks
	ExpressionStatement Hooks
	FunctionCall        Hooks
	Identifier          Hooks
}

// UnsupportedNodeError indicates that a walk reached a node outside the
// closed set of ast node types. Given trees built by this module's parser and
// lower packages it is unreachable; it guards against hand-built trees.
type UnsupportedNodeError struct {
	Node ast.Node
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("walk: unsupported node type %T", e.Node)
}

// Nodes walks the tree rooted at the given node in depth-first order,
// invoking fn on every node before its children.
func Nodes(root ast.Node, fn func(node, parent ast.Node) error) error {
	hooks := Hooks{Enter: fn}
	return Walk(root, &Visitor{
		Program:             hooks,
		CallExpression:      hooks,
		NumberLiteral:       hooks,
		StringLiteral:       hooks,
		ExpressionStatement: hooks,
		FunctionCall:        hooks,
		Identifier:          hooks,
	})
}

// Walk traverses the tree rooted at the given node depth-first, invoking the
// visitor's enter hook for a node before its children and its exit hook after
// them. Children are walked in their natural left-to-right order: a program's
// body, a call expression's params, an expression statement's expression, and
// a function call's callee followed by its arguments. Literals and
// identifiers are leaves.
func Walk(root ast.Node, v *Visitor) error {
	return walkNode(root, nil, v)
}

func walkNode(node, parent ast.Node, v *Visitor) error {
	hooks, err := v.hooksFor(node)
	if err != nil {
		return err
	}
	if hooks.Enter != nil {
		if err := hooks.Enter(node, parent); err != nil {
			return err
		}
	}
	for _, child := range children(node) {
		if err := walkNode(child, node, v); err != nil {
			return err
		}
	}
	if hooks.Exit != nil {
		if err := hooks.Exit(node, parent); err != nil {
			return err
		}
	}
	return nil
}

func (v *Visitor) hooksFor(node ast.Node) (Hooks, error) {
	switch node.(type) {
	case *ast.Program:
		return v.Program, nil
	case *ast.CallExpression:
		return v.CallExpression, nil
	case *ast.NumberLiteral:
		return v.NumberLiteral, nil
	case *ast.StringLiteral:
		return v.StringLiteral, nil
	case *ast.ExpressionStatement:
		return v.ExpressionStatement, nil
	case *ast.FunctionCall:
		return v.FunctionCall, nil
	case *ast.Identifier:
		return v.Identifier, nil
	default:
		return Hooks{}, &UnsupportedNodeError{Node: node}
	}
}

func children(node ast.Node) []ast.Node {
	switch n := node.(type) {
	case *ast.Program:
		return n.Body
	case *ast.CallExpression:
		return n.Params
	case *ast.ExpressionStatement:
		return []ast.Node{n.Expression}
	case *ast.FunctionCall:
		kids := make([]ast.Node, 0, len(n.Arguments)+1)
		kids = append(kids, n.Callee)
		return append(kids, n.Arguments...)
	default:
		return nil
	}
}
