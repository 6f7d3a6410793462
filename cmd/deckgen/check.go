// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deckgen/internal/slides"
	"github.com/pdiddy/deckgen/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [outlines...]",
	Short: "Report sections that will be dropped or truncated",
	Long: `Check lists sections without a "##" or "###" title, which build drops,
and sections whose code fence is never closed, which lose the lines after
the opening fence. Anomalies are reported but never fail the command; an
outline that cannot be read does.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			doc, err := source.Load(path)
			if err != nil {
				return err
			}
			reportSections(os.Stdout, path, doc.Sections())
		}
		return nil
	},
}

// reportSections prints one line per anomaly and a per-file summary.
func reportSections(w io.Writer, path string, sections []slides.Section) {
	kept, issues := 0, 0
	for _, s := range sections {
		if !s.HasTitle() {
			fmt.Fprintf(w, "%s: section %d: no title, dropped\n", path, s.Index+1)
			issues++
		} else {
			kept++
		}
		if s.Unterminated {
			fmt.Fprintf(w, "%s: section %d: unterminated code fence\n", path, s.Index+1)
			issues++
		}
	}
	fmt.Fprintf(w, "%s: %d sections, %d slides, %d issues\n", path, len(sections), kept, issues)
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
