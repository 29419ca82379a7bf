package parser

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/sexpbuild/sexpcompile/ast"
	"github.com/sexpbuild/sexpcompile/reporter"
)

// LexerOption adjusts the behavior of Tokenize.
type LexerOption func(*lexer)

// WithMultiDigitNumbers makes the lexer accumulate a whole run of adjacent
// digits into a single number token. The default, kept for fidelity with the
// language this compiler models, emits one number token per digit and reports
// a warning when it encounters a digit run that this splits apart.
func WithMultiDigitNumbers() LexerOption {
	return func(l *lexer) {
		l.multiDigit = true
	}
}

type lexer struct {
	filename string
	input    []rune
	handler  *reporter.Handler

	pos  int // rune offset of the cursor
	line int
	col  int

	multiDigit bool
}

// Tokenize converts source text into a flat token sequence, scanning left to
// right with a single cursor and never backtracking. At each position the
// rules are tried in fixed priority order: parentheses, whitespace (skipped),
// digits, string literals, names. Any other character fails with a *LexError
// identifying the character and its position, as does a string literal whose
// closing quote is never found.
//
// The filename is only used to label source positions and may be empty. A nil
// handler fails the scan on the first error.
func Tokenize(filename, input string, handler *reporter.Handler, opts ...LexerOption) ([]Token, error) {
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}
	l := &lexer{
		filename: filename,
		input:    []rune(input),
		handler:  handler,
		line:     1,
		col:      1,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l.run()
}

func (l *lexer) run() ([]Token, error) {
	var tokens []Token
	for l.pos < len(l.input) {
		r := l.cur()
		switch {
		case r == '(' || r == ')':
			tokens = append(tokens, Token{Kind: TokenParen, Text: string(r), Pos: l.here()})
			l.advance()
		case unicode.IsSpace(r):
			l.advance()
		case isDigit(r):
			tokens = append(tokens, l.number())
		case r == '"':
			tok, err := l.stringLiteral()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case isLetter(r):
			tokens = append(tokens, l.name())
		default:
			return nil, l.err(l.here(), fmt.Errorf("unexpected character %q", r))
		}
	}
	return tokens, nil
}

func (l *lexer) cur() rune {
	return l.input[l.pos]
}

func (l *lexer) here() ast.SourcePos {
	return ast.SourcePos{Filename: l.filename, Offset: l.pos, Line: l.line, Col: l.col}
}

func (l *lexer) advance() {
	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func (l *lexer) number() Token {
	pos := l.here()
	if !l.multiDigit {
		// Warn once per digit run: the run's remaining digits become their
		// own tokens, which surprises anyone expecting "42" to be one number.
		if l.nextIsDigit() && !l.prevIsDigit() {
			l.handler.HandleWarningf(pos, "adjacent digits lex as separate single-digit number tokens")
		}
		r := l.cur()
		l.advance()
		return Token{Kind: TokenNumber, Text: string(r), Pos: pos}
	}
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.cur()) {
		l.advance()
	}
	return Token{Kind: TokenNumber, Text: string(l.input[start:l.pos]), Pos: pos}
}

func (l *lexer) prevIsDigit() bool {
	return l.pos > 0 && isDigit(l.input[l.pos-1])
}

func (l *lexer) nextIsDigit() bool {
	return l.pos+1 < len(l.input) && isDigit(l.input[l.pos+1])
}

func (l *lexer) stringLiteral() (Token, error) {
	open := l.here()
	l.advance() // opening quote
	start := l.pos
	for l.pos < len(l.input) {
		if l.cur() == '"' {
			text := string(l.input[start:l.pos])
			l.advance() // closing quote
			return Token{Kind: TokenString, Text: text, Pos: open}, nil
		}
		l.advance()
	}
	return Token{}, l.err(open, errors.New("unterminated string literal"))
}

func (l *lexer) name() Token {
	pos := l.here()
	start := l.pos
	for l.pos < len(l.input) && isLetter(l.cur()) {
		l.advance()
	}
	return Token{Kind: TokenName, Text: string(l.input[start:l.pos]), Pos: pos}
}

func (l *lexer) err(pos ast.SourcePos, underlying error) error {
	if err := l.handler.HandleError(&LexError{Pos: pos, Underlying: underlying}); err != nil {
		return err
	}
	// The reporter swallowed the error; there is still no recovery, so
	// surface the handler's resolution instead.
	return l.handler.Error()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
