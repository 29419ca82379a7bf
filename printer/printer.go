// Package printer renders a target-shaped tree into C-style source text.
package printer

import (
	"fmt"
	"strings"

	"github.com/sexpbuild/sexpcompile/ast"
)

// UnsupportedNodeError indicates that Print reached a node it cannot render,
// such as a node from the source-shaped tree. Given trees built by the lower
// package it is unreachable.
type UnsupportedNodeError struct {
	Node ast.Node
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("printer: cannot generate code for node type %T", e.Node)
}

// Print renders the tree rooted at the given node. It is a pure recursive
// function: a program renders its body elements joined by newlines, an
// expression statement renders its expression followed by a semicolon, a
// function call renders callee(arg, arg, ...), and literals render their
// text verbatim (strings wrapped in double quotes).
func Print(node ast.Node) (string, error) {
	var sb strings.Builder
	if err := print(&sb, node); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func print(sb *strings.Builder, node ast.Node) error {
	switch n := node.(type) {
	case *ast.Program:
		for i, stmt := range n.Body {
			if i > 0 {
				sb.WriteString("\n")
			}
			if err := print(sb, stmt); err != nil {
				return err
			}
		}
		return nil
	case *ast.ExpressionStatement:
		if err := print(sb, n.Expression); err != nil {
			return err
		}
		sb.WriteString(";")
		return nil
	case *ast.FunctionCall:
		if err := print(sb, n.Callee); err != nil {
			return err
		}
		sb.WriteString("(")
		for i, arg := range n.Arguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			if err := print(sb, arg); err != nil {
				return err
			}
		}
		sb.WriteString(")")
		return nil
	case *ast.Identifier:
		sb.WriteString(n.Name)
		return nil
	case *ast.NumberLiteral:
		sb.WriteString(n.Value)
		return nil
	case *ast.StringLiteral:
		sb.WriteString("\"")
		sb.WriteString(n.Value)
		sb.WriteString("\"")
		return nil
	default:
		return &UnsupportedNodeError{Node: node}
	}
}
