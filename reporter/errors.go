// Package reporter contains the types used for reporting errors and warnings
// from the compiler's stages to the calling program.
package reporter

import (
	"errors"
	"fmt"

	"github.com/sexpbuild/sexpcompile/ast"
)

// ErrInvalidSource is a sentinel error returned from a compilation in the
// event that errors were encountered but the configured ErrorReporter
// swallowed all of them by returning nil.
var ErrInvalidSource = errors.New("compile failed: invalid source")

// ErrorWithPos is an error about source input that includes information about
// the location in the input that caused the error.
//
// The value of Error() contains both the position and the underlying error.
// The value of Unwrap() is only the underlying error.
type ErrorWithPos interface {
	error
	GetPosition() ast.SourcePos
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and source position.
func Error(pos ast.SourcePos, err error) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: err}
}

// Errorf creates a new ErrorWithPos whose underlying error is created with
// fmt.Errorf.
func Errorf(pos ast.SourcePos, format string, args ...interface{}) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithSourcePos struct {
	underlying error
	pos        ast.SourcePos
}

func (e errorWithSourcePos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

func (e errorWithSourcePos) GetPosition() ast.SourcePos {
	return e.pos
}

func (e errorWithSourcePos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSourcePos{}
