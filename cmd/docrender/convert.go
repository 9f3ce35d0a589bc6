package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dgallion1/docrender/internal/parser"
	"github.com/dgallion1/docrender/internal/pipeline"
	"github.com/spf13/cobra"
)

func newConvertCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var out outputFlags
	var title string
	var pdftotext bool
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a .txt, .csv, .html, .docx or .pdf file to Markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger(cmd)
			path := args[0]
			p, err := parser.ForFileWithOptions(path, parser.Options{PDFFallbackPdftotext: pdftotext})
			if err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			doc, err := p.Parse(f, filepath.Base(path))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if title != "" {
				doc = pipeline.Retitle(doc, title)
			}
			summary, err := pipeline.Summarize(doc)
			if err != nil {
				return err
			}
			if summary.RejectedRows > 0 {
				log.Warn("dropped table rows with the wrong cell count", "rows", summary.RejectedRows)
			}
			if err := out.write(cmd, log, doc); err != nil {
				return err
			}
			log.Info("converted", "input", path,
				"paragraphs", summary.Paragraphs,
				"tables", summary.Tables,
				"lists", summary.Lists,
				"sections", summary.Sections,
			)
			return nil
		},
	}
	out.register(cmd)
	cmd.Flags().StringVar(&title, "title", "", "Document header (default: file name)")
	cmd.Flags().BoolVar(&pdftotext, "pdftotext", true, "Fall back to the pdftotext binary for unreadable PDFs")
	return cmd
}

