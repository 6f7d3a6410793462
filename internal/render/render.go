// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a parsed deck into an output file. Each output
// format is a Renderer; New selects one by format name.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deckgen/internal/handout"
	"github.com/pdiddy/deckgen/internal/pptx"
	"github.com/pdiddy/deckgen/pkg/types"
)

// ErrUnknownFormat is returned by New for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Renderer writes a deck in one output format.
type Renderer interface {
	// Format returns the format this renderer produces.
	Format() types.OutputFormat

	// Ext returns the file extension for outputs, including the dot.
	Ext() string

	// Render writes the deck to w.
	Render(w io.Writer, deck types.Deck) error
}

// New returns the renderer for format. Caps in cfg apply to the visual
// formats; zero values fall back to defaults.
func New(format types.OutputFormat, cfg types.RenderConfig) (Renderer, error) {
	switch format {
	case types.FormatPPTX, "":
		return pptx.New(cfg), nil
	case types.FormatHTML:
		return handout.New(), nil
	case types.FormatYAML:
		return yamlRenderer{}, nil
	case types.FormatJSON:
		return jsonRenderer{}, nil
	}
	return nil, fmt.Errorf("%w: %q (want pptx, html, yaml, or json)", ErrUnknownFormat, format)
}

// Formats lists the supported output formats.
func Formats() []types.OutputFormat {
	return []types.OutputFormat{types.FormatPPTX, types.FormatHTML, types.FormatYAML, types.FormatJSON}
}

type yamlRenderer struct{}

func (yamlRenderer) Format() types.OutputFormat { return types.FormatYAML }
func (yamlRenderer) Ext() string                { return ".yaml" }

func (yamlRenderer) Render(w io.Writer, deck types.Deck) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&deck); err != nil {
		return fmt.Errorf("encoding deck as yaml: %w", err)
	}
	return enc.Close()
}

type jsonRenderer struct{}

func (jsonRenderer) Format() types.OutputFormat { return types.FormatJSON }
func (jsonRenderer) Ext() string                { return ".json" }

func (jsonRenderer) Render(w io.Writer, deck types.Deck) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(deck); err != nil {
		return fmt.Errorf("encoding deck as json: %w", err)
	}
	return nil
}
