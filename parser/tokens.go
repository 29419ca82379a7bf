package parser

import (
	"fmt"

	"github.com/sexpbuild/sexpcompile/ast"
)

// TokenKind classifies a token produced by Tokenize.
type TokenKind int

const (
	// TokenParen is a single "(" or ")".
	TokenParen TokenKind = iota
	// TokenNumber is a numeric literal. By default the lexer emits one token
	// per digit; see WithMultiDigitNumbers.
	TokenNumber
	// TokenString is a string literal with the surrounding quotes stripped.
	TokenString
	// TokenName is a run of consecutive ASCII letters.
	TokenName
)

func (k TokenKind) String() string {
	switch k {
	case TokenParen:
		return "paren"
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenName:
		return "name"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// MarshalText renders the kind as its name, so token dumps stay readable
// once the Go constants are erased.
func (k TokenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Token is a classified minimal lexical unit. Tokens are immutable values;
// Pos identifies the first rune of the token in the input.
type Token struct {
	Kind TokenKind     `json:"kind"`
	Text string        `json:"text"`
	Pos  ast.SourcePos `json:"pos"`
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}
