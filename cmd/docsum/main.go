// Package main provides the docsum command, which summarizes a text document
// with an extractive method (LSA, Luhn, TextRank) or an abstractive model.
//
// Usage: docsum (-i FILE | -t TEXT) [-o FILE] [-m METHOD] [-s N] [--min-length N] [--max-length N]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"docsum/internal/domain/entity"
	"docsum/internal/usecase/summarize"
)

const examples = `  docsum -i article.txt
  docsum -t "Long text to summarize..." -m lsa -s 2
  docsum -i report.html -m textrank -o summary.txt
  docsum -i notes.txt --min-length 30 --max-length 120`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, newApp(os.Stdout, os.Stderr), os.Args[1:])
	stop()
	os.Exit(code)
}

// execute runs the command with args and returns the process exit code.
func execute(ctx context.Context, a *app, args []string) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	opts := summarize.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "docsum (-i FILE | -t TEXT) [flags]",
		Short: "Summarize a text document",
		Long: `docsum summarizes a document given as a file or as literal text.

Extractive methods (lsa, luhn, textrank) return the highest ranked sentences
of the document verbatim, in document order. The abstractive method splits
long documents into chunks that fit the model, summarizes each chunk and joins
the fragments in order. The model backend is selected with SUMMARIZER_PROVIDER
(ollama, openai, claude or noop).`,
		Example:       examples,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.TextSet = cmd.Flags().Changed("text")
			err := a.run(cmd.Context(), opts)
			var uErr *usageError
			if errors.As(err, &uErr) {
				printUsage(cmd, a.stderr)
			}
			return err
		},
	}

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", entity.ErrConfiguration, err)
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.InputPath, "input", "i", "", "path to a text or HTML file to summarize")
	flags.StringVarP(&opts.Text, "text", "t", "", "text to summarize")
	flags.StringVarP(&opts.OutputPath, "output", "o", "", "file to write the summary to (default stdout)")
	flags.StringVarP(&opts.Method, "method", "m", opts.Method, "summarization method: "+entity.MethodNames())
	flags.IntVarP(&opts.Sentences, "sentences", "s", opts.Sentences, "number of sentences for extractive methods")
	flags.IntVar(&opts.MaxLength, "max-length", opts.MaxLength, "maximum summary length in tokens (abstractive)")
	flags.IntVar(&opts.MinLength, "min-length", opts.MinLength, "minimum summary length in tokens (abstractive)")
	flags.SortFlags = false

	return cmd
}

func printUsage(cmd *cobra.Command, w io.Writer) {
	cmd.SetOut(w)
	_ = cmd.Usage()
}
