// Package sexpcompile provides the entry point for a small source-to-source
// compiler that translates lisp-style prefix notation, nested parenthesized
// calls over numbers and strings, into C-style function-call syntax.
//
// The sub-packages represent the compile phases and contain the models for
// the intermediate results. Those phases follow:
//  1. Scan the input into tokens.
//     Also see: parser.Tokenize
//  2. Parse the tokens into a source-shaped AST.
//     Also see: parser.Parse
//  3. Lower the source-shaped AST into a target-shaped AST.
//     Also see: lower.Transform (driven by the generic walk package)
//  4. Generate C-style source text from the target-shaped AST.
//     Also see: printer.Print
//
// This package composes the phases. Compile runs them over a single input
// with default settings; Compiler exposes the configuration knobs and can
// compile many independent inputs in parallel, since no stage touches any
// shared mutable state.
//
// Every stage either completes or fails synchronously; no stage attempts
// recovery, and a failed compilation produces no partial output.
package sexpcompile
