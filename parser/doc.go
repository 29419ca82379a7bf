// Package parser contains the logic for scanning lisp-style prefix-notation
// source into tokens and for parsing those tokens into a source-shaped AST.
//
// The two steps are exposed separately, as Tokenize and Parse, so that callers
// can inspect the intermediate token stream. Both are pure functions of their
// input: neither keeps state across calls nor performs any I/O.
package parser
