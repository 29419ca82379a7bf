package sexpcompile

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"

	"github.com/sexpbuild/sexpcompile/lower"
	"github.com/sexpbuild/sexpcompile/parser"
	"github.com/sexpbuild/sexpcompile/printer"
	"github.com/sexpbuild/sexpcompile/reporter"
)

// Compile translates a single unit of lisp-style source into C-style source,
// running all four compile phases in order with default settings. The first
// error aborts the compilation.
func Compile(input string) (string, error) {
	var c Compiler
	return c.Compile(input)
}

// Compiler handles compilation tasks. The zero value is ready to use: it
// fails on the first error, ignores warnings, and preserves the language's
// single-digit number lexing.
type Compiler struct {
	// A custom error and warning reporter. If unspecified, a default reporter
	// is used: it fails the compilation on the first error and ignores all
	// warnings.
	Reporter reporter.Reporter

	// The maximum parallelism to use in CompileAll. If unspecified or set to
	// a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int

	// MultiDigitNumbers makes the lexer scan a run of adjacent digits as one
	// number token. When false, each digit becomes its own token and the
	// lexer reports a warning for every digit run it splits.
	MultiDigitNumbers bool

	// Transformers are additional tree passes applied, in order, to the
	// lowered tree before code generation.
	Transformers []lower.Transformer
}

// Compile translates a single unit of lisp-style source into C-style source.
func (c *Compiler) Compile(input string) (string, error) {
	return c.compile("", input)
}

func (c *Compiler) compile(filename, input string) (string, error) {
	h := reporter.NewHandler(c.Reporter)

	var opts []parser.LexerOption
	if c.MultiDigitNumbers {
		opts = append(opts, parser.WithMultiDigitNumbers())
	}
	tokens, err := parser.Tokenize(filename, input, h, opts...)
	if err != nil {
		return "", err
	}
	prog, err := parser.Parse(tokens, h)
	if err != nil {
		return "", err
	}
	lowered, err := lower.Transform(prog)
	if err != nil {
		return "", err
	}
	for _, t := range c.Transformers {
		lowered, err = t.Transform(lowered)
		if err != nil {
			return "", err
		}
	}
	return printer.Print(lowered)
}

// CompileAll compiles the given inputs, each an independent unit of source,
// and returns their outputs in input order. Compilations run concurrently,
// bounded by MaxParallelism; this is safe because each one is a pure function
// of its input. If any input fails, CompileAll returns the error of the
// earliest failing input and cancels the compilations still waiting to run.
func (c *Compiler) CompileAll(ctx context.Context, inputs ...string) ([]string, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	// Returning early, on the first failing input, must not leave the rest
	// of the batch running.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := c.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		if cpus := runtime.NumCPU(); par > cpus {
			par = cpus
		}
	}

	e := executor{c: c, s: semaphore.NewWeighted(int64(par))}
	results := make([]*result, len(inputs))
	for i, input := range inputs {
		results[i] = e.compile(ctx, input)
	}

	outputs := make([]string, len(inputs))
	for i, r := range results {
		select {
		case <-r.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if r.err != nil {
			return nil, r.err
		}
		outputs[i] = r.out
	}
	return outputs, nil
}

type result struct {
	ready chan struct{}
	out   string
	err   error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(out string) {
	r.out = out
	close(r.ready)
}

// An executor runs one compilation task per input. Its semaphore limits the
// number of concurrent, running tasks.
type executor struct {
	c *Compiler
	s *semaphore.Weighted
}

func (e *executor) compile(ctx context.Context, input string) *result {
	r := &result{ready: make(chan struct{})}
	go func() {
		if err := e.s.Acquire(ctx, 1); err != nil {
			r.fail(err)
			return
		}
		defer e.s.Release(1)

		out, err := e.c.Compile(input)
		if err != nil {
			r.fail(err)
			return
		}
		r.complete(out)
	}()
	return r
}
