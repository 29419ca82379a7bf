// Package ast defines the syntax tree node types used by the compiler.
//
// Two tree families share a single Node union. The parser produces the
// source-shaped tree: a Program whose body holds CallExpression, NumberLiteral,
// and StringLiteral nodes mirroring the parenthesized input. The lower package
// rewrites that into the target-shaped tree rendered by the printer package: a
// Program whose body holds ExpressionStatement wrappers around FunctionCall
// nodes with Identifier callees, literals carried through unchanged.
//
// Nodes are immutable once constructed. Each compiler stage builds a brand-new
// tree; none mutates its input.
package ast
