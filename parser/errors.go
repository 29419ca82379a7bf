package parser

import (
	"fmt"

	"github.com/sexpbuild/sexpcompile/ast"
	"github.com/sexpbuild/sexpcompile/reporter"
)

// LexError is an error produced while scanning source text, such as an
// unrecognized character or an unterminated string literal.
type LexError struct {
	Pos        ast.SourcePos
	Underlying error
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %v", e.Pos, e.Underlying)
}

// GetPosition returns the position of the offending character.
func (e *LexError) GetPosition() ast.SourcePos {
	return e.Pos
}

func (e *LexError) Unwrap() error {
	return e.Underlying
}

// ParseError is an error produced while parsing a token stream, such as an
// unexpected token shape, unbalanced parentheses, or a missing call name.
type ParseError struct {
	Pos        ast.SourcePos
	Underlying error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Pos, e.Underlying)
}

// GetPosition returns the position of the offending token. For errors about
// unexpected end of input it is the position of the last token seen.
func (e *ParseError) GetPosition() ast.SourcePos {
	return e.Pos
}

func (e *ParseError) Unwrap() error {
	return e.Underlying
}

var (
	_ reporter.ErrorWithPos = (*LexError)(nil)
	_ reporter.ErrorWithPos = (*ParseError)(nil)
)
