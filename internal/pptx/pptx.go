// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pptx writes decks as PowerPoint (PresentationML) files. Each
// slide gets a title box and a body box at fixed positions; body lines,
// code blocks, and code length are capped per RenderConfig.
package pptx

import (
	"archive/zip"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/deckgen/pkg/types"
)

// Renderer produces .pptx files.
type Renderer struct {
	cfg types.RenderConfig
	now func() time.Time
}

// New returns a PPTX renderer. Zero caps in cfg use the defaults.
func New(cfg types.RenderConfig) *Renderer {
	return &Renderer{cfg: cfg.WithDefaults(), now: time.Now}
}

func (r *Renderer) Format() types.OutputFormat { return types.FormatPPTX }
func (r *Renderer) Ext() string                { return ".pptx" }

type part struct {
	name string
	body string
}

// Render writes the deck to w as a zip package.
func (r *Renderer) Render(w io.Writer, deck types.Deck) error {
	zw := zip.NewWriter(w)
	for _, p := range r.parts(deck) {
		f, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("adding %s: %w", p.name, err)
		}
		if _, err := io.WriteString(f, p.body); err != nil {
			return fmt.Errorf("writing %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finishing package: %w", err)
	}
	return nil
}

// parts returns every package part in write order. [Content_Types].xml
// comes first.
func (r *Renderer) parts(deck types.Deck) []part {
	n := len(deck.Slides)
	parts := []part{
		{"[Content_Types].xml", contentTypes(n)},
		{"_rels/.rels", packageRels},
		{"docProps/core.xml", coreProps(deck.Meta, r.now().UTC())},
		{"docProps/app.xml", appProps(n)},
		{"ppt/presentation.xml", presentation(n)},
		{"ppt/_rels/presentation.xml.rels", presentationRels(n)},
		{"ppt/slideMasters/slideMaster1.xml", slideMaster},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRels},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayout},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRels},
		{"ppt/theme/theme1.xml", theme},
	}
	for i, s := range deck.Slides {
		parts = append(parts,
			part{fmt.Sprintf("ppt/slides/slide%d.xml", i+1), r.slideXML(s)},
			part{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), slideRels},
		)
	}
	return parts
}
