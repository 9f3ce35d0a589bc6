package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/docrender/internal/docjson"
	"github.com/dgallion1/docrender/internal/doctree"
	"github.com/spf13/cobra"
)

func newRenderCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var out outputFlags
	var yamlInput bool
	cmd := &cobra.Command{
		Use:   "render <document.json|document.yaml|->",
		Short: "Render a JSON or YAML document as Markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger(cmd)
			in, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			start := time.Now()
			var doc *doctree.Document
			if yamlInput || isYAMLPath(args[0]) {
				doc, err = docjson.DecodeYAML(in)
			} else {
				doc, err = docjson.Decode(in)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if err := out.write(cmd, log, doc); err != nil {
				return err
			}
			log.Info("rendered", "input", args[0], "duration_ms", time.Since(start).Milliseconds())
			return nil
		},
	}
	out.register(cmd)
	cmd.Flags().BoolVar(&yamlInput, "yaml", false, "Treat input as YAML regardless of extension")
	return cmd
}
