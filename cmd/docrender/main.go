// Command docrender renders structured documents and converts files to
// Markdown from the command line.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docrender/internal/doctree"
	"github.com/dgallion1/docrender/internal/markdown"
	"github.com/dgallion1/docrender/internal/sink"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type outputFlags struct {
	output string
	mkdir  bool
	indent int
	margin int
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Write Markdown to this file instead of stdout")
	cmd.Flags().BoolVar(&o.mkdir, "mkdir", false, "Create missing parent directories of --output")
	cmd.Flags().IntVar(&o.indent, "indent", markdown.DefaultOptions().Indent, "Spaces per list nesting level")
	cmd.Flags().IntVar(&o.margin, "margin", markdown.DefaultOptions().Margin, "Target line width")
}

func (o *outputFlags) options() (markdown.Options, error) {
	if o.indent < 0 {
		return markdown.Options{}, fmt.Errorf("indent must be >= 0, got %d", o.indent)
	}
	if o.margin <= 0 {
		return markdown.Options{}, fmt.Errorf("margin must be > 0, got %d", o.margin)
	}
	return markdown.Options{Indent: o.indent, Margin: o.margin}, nil
}

// write renders doc to the --output file, or to stdout.
func (o *outputFlags) write(cmd *cobra.Command, log *slog.Logger, doc *doctree.Document) error {
	opts, err := o.options()
	if err != nil {
		return err
	}
	if o.output == "" {
		return markdown.RenderDocument(doc, cmd.OutOrStdout(), opts)
	}

	out := sink.Open(o.output, o.mkdir)
	if err := markdown.RenderDocument(doc, out, opts); err != nil {
		out.Abort()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	log.Info("wrote markdown", "path", out.Path())
	return nil
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "docrender",
		Short: "Render structured documents as Markdown",
		Long: `docrender turns structured documents into Markdown.

Examples:
  docrender render report.json -o report.md
  docrender render report.yaml --indent 2
  docrender convert notes.docx -o out/notes.md --mkdir`,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		SilenceUsage:      true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	logger := func(cmd *cobra.Command) *slog.Logger {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelInfo
		}
		return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	}

	root.AddCommand(newRenderCmd(logger), newConvertCmd(logger))
	return root
}

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
