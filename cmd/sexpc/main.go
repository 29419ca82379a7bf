// Command sexpc compiles lisp-style prefix-notation source into C-style
// function-call syntax. It can also dump the intermediate result of each
// compile phase, which makes it a handy way to watch the pipeline work.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sexpbuild/sexpcompile/lower"
	"github.com/sexpbuild/sexpcompile/parser"
	"github.com/sexpbuild/sexpcompile/printer"
	"github.com/sexpbuild/sexpcompile/reporter"
)

const version = "0.1.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		emit       string
		multiDigit bool
	)
	cmd := &cobra.Command{
		Use:   "sexpc [file]",
		Short: "Compile lisp-style prefix notation to C-style call syntax",
		Long: `Compile lisp-style prefix notation to C-style call syntax.

Source is read from the given file, or from stdin when no file is given.
The compiled output is written to stdout; --emit selects an intermediate
stage instead (the token stream or either syntax tree, dumped as JSON).`,
		Example: `  # Compile a file
  sexpc program.lisp

  # Compile from stdin
  echo '(add 2 (subtract 4 2))' | sexpc

  # Dump the token stream
  sexpc --emit tokens program.lisp`,
		Args:         cobra.MaximumNArgs(1),
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := ""
			var src []byte
			var err error
			if len(args) == 1 {
				filename = args[0]
				src, err = os.ReadFile(filename)
			} else {
				src, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), filename, string(src), emit, multiDigit)
		},
	}
	cmd.Flags().StringVar(&emit, "emit", "c", "stage to emit: tokens, ast, lowered, or c")
	cmd.Flags().BoolVar(&multiDigit, "multi-digit-numbers", false, "scan runs of adjacent digits as one number token")
	return cmd
}

func run(out, errOut io.Writer, filename, src, emit string, multiDigit bool) error {
	switch emit {
	case "tokens", "ast", "lowered", "c":
	default:
		return fmt.Errorf("unknown --emit stage %q", emit)
	}

	warn := func(err reporter.ErrorWithPos) {
		fmt.Fprintf(errOut, "warning: %v\n", err)
	}
	h := reporter.NewHandler(reporter.NewReporter(nil, warn))

	var opts []parser.LexerOption
	if multiDigit {
		opts = append(opts, parser.WithMultiDigitNumbers())
	}
	tokens, err := parser.Tokenize(filename, src, h, opts...)
	if err != nil {
		return err
	}
	if emit == "tokens" {
		return dumpJSON(out, tokens)
	}

	prog, err := parser.Parse(tokens, h)
	if err != nil {
		return err
	}
	if emit == "ast" {
		return dumpJSON(out, prog)
	}

	lowered, err := lower.Transform(prog)
	if err != nil {
		return err
	}
	if emit == "lowered" {
		return dumpJSON(out, lowered)
	}

	text, err := printer.Print(lowered)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, text)
	return err
}

func dumpJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
