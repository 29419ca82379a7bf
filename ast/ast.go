package ast

// Node is the tagged union over all syntax tree node types, for both the
// source-shaped and target-shaped trees. The closed set of implementations is
// Program, CallExpression, NumberLiteral, StringLiteral, ExpressionStatement,
// FunctionCall, and Identifier.
type Node interface {
	node()
}

// Program is the root of a tree, one per compilation. For a source tree the
// body holds the top-level parenthesized forms in input order; for a target
// tree it holds one element per top-level form, calls wrapped in
// ExpressionStatement.
type Program struct {
	Body []Node
}

// CallExpression is a source-tree call: (name param...). Name is never empty;
// Params may be.
type CallExpression struct {
	Name   string
	Params []Node
}

// NumberLiteral holds the raw digit text of a numeric literal. The text is
// never parsed as a number; it flows through the pipeline verbatim.
type NumberLiteral struct {
	Value string
}

// StringLiteral holds the content of a string literal with the surrounding
// quotes stripped.
type StringLiteral struct {
	Value string
}

// ExpressionStatement wraps a top-level call in the target tree. The printer
// renders it as the inner expression followed by a semicolon.
type ExpressionStatement struct {
	Expression Node
}

// FunctionCall is a target-tree call in C style: callee(arguments...).
type FunctionCall struct {
	Callee    *Identifier
	Arguments []Node
}

// Identifier names the callee of a FunctionCall.
type Identifier struct {
	Name string
}

func (*Program) node()             {}
func (*CallExpression) node()      {}
func (*NumberLiteral) node()       {}
func (*StringLiteral) node()       {}
func (*ExpressionStatement) node() {}
func (*FunctionCall) node()        {}
func (*Identifier) node()          {}
