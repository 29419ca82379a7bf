package parser

import (
	"fmt"

	"github.com/sexpbuild/sexpcompile/ast"
	"github.com/sexpbuild/sexpcompile/reporter"
)

// Parse consumes a token sequence, as produced by Tokenize, and builds the
// source-shaped AST by recursive descent with one token of lookahead. The
// program body collects one node per top-level form.
//
// There is no error recovery: a malformed stream (unbalanced parentheses, a
// missing call name, a stray token) fails immediately with a *ParseError and
// no partial result. A nil handler fails on the first error.
func Parse(tokens []Token, handler *reporter.Handler) (*ast.Program, error) {
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}
	p := &parser{tokens: tokens, handler: handler}
	prog := &ast.Program{}
	for !p.done() {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		prog.Body = append(prog.Body, expr)
	}
	return prog, nil
}

type parser struct {
	tokens  []Token
	pos     int
	handler *reporter.Handler
}

func (p *parser) done() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) cur() Token {
	return p.tokens[p.pos]
}

func (p *parser) parseExpression() (ast.Node, error) {
	if p.done() {
		return nil, p.errf("unexpected end of input, expecting an expression")
	}
	tok := p.cur()
	switch tok.Kind {
	case TokenNumber:
		p.pos++
		return &ast.NumberLiteral{Value: tok.Text}, nil
	case TokenString:
		p.pos++
		return &ast.StringLiteral{Value: tok.Text}, nil
	case TokenParen:
		if tok.Text == "(" {
			return p.parseCall()
		}
		return nil, p.errf("unexpected %q", tok.Text)
	default:
		return nil, p.errf("unexpected %s token %q, expecting an expression", tok.Kind, tok.Text)
	}
}

func (p *parser) parseCall() (ast.Node, error) {
	open := p.cur()
	p.pos++ // consume "("

	if p.done() {
		return nil, p.errAt(open.Pos, "unexpected end of input after %q, missing call name", "(")
	}
	name := p.cur()
	if name.Kind != TokenName {
		return nil, p.errf("missing call name: got %s token %q", name.Kind, name.Text)
	}
	p.pos++ // consume the name

	call := &ast.CallExpression{Name: name.Text}
	for {
		if p.done() {
			return nil, p.errAt(open.Pos, "unexpected end of input, expecting %q to close the call", ")")
		}
		if tok := p.cur(); tok.Kind == TokenParen && tok.Text == ")" {
			p.pos++ // consume ")"
			return call, nil
		}
		param, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		call.Params = append(call.Params, param)
	}
}

// errf reports a parse error at the current token (or at the last token, when
// the stream is exhausted).
func (p *parser) errf(format string, args ...interface{}) error {
	var pos ast.SourcePos
	switch {
	case !p.done():
		pos = p.cur().Pos
	case len(p.tokens) > 0:
		pos = p.tokens[len(p.tokens)-1].Pos
	}
	return p.errAt(pos, format, args...)
}

func (p *parser) errAt(pos ast.SourcePos, format string, args ...interface{}) error {
	perr := &ParseError{Pos: pos, Underlying: fmt.Errorf(format, args...)}
	if err := p.handler.HandleError(perr); err != nil {
		return err
	}
	return p.handler.Error()
}
