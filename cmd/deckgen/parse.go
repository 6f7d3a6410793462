// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deckgen/internal/render"
	"github.com/pdiddy/deckgen/internal/source"
	"github.com/pdiddy/deckgen/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse <outline>",
	Short: "Show the slide structure of a Markdown outline",
	Long: `Parse reads an outline and prints the slides it yields: a table of titles
with body line and code block counts, or the full structure as yaml, json,
or an html handout with --format.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	doc, err := source.Load(args[0])
	if err != nil {
		return err
	}
	deck := doc.Deck()

	format, _ := cmd.Flags().GetString("format")
	switch types.OutputFormat(format) {
	case "", "table":
		return formatParseTable(os.Stdout, deck)
	case types.FormatPPTX:
		return fmt.Errorf("pptx is a binary format; use build instead")
	}

	r, err := render.New(types.OutputFormat(format), types.RenderConfig{})
	if err != nil {
		return err
	}
	return r.Render(os.Stdout, deck)
}

func formatParseTable(w io.Writer, deck types.Deck) error {
	if deck.Meta.Title != "" {
		fmt.Fprintf(w, "Deck: %s\n\n", deck.Meta.Title)
	}
	if deck.Len() == 0 {
		fmt.Fprintln(w, "No slides found.")
		return nil
	}

	fmt.Fprintf(w, "%-4s  %-50s  %-5s  %s\n", "#", "Title", "Lines", "Code")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for i, s := range deck.Slides {
		title := shorten(s.Title, 50)
		fmt.Fprintf(w, "%-4d  %-50s  %-5d  %d\n", i+1, title, len(s.Body), len(s.Code))
	}
	fmt.Fprintf(w, "\n%d slides\n", deck.Len())
	return nil
}

// shorten cuts s to at most n runes, ending in "..." when cut.
func shorten(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

func init() {
	parseCmd.Flags().StringP("format", "f", "table", "output: table, yaml, json, or html")

	rootCmd.AddCommand(parseCmd)
}
