// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source reads Markdown outlines from disk and separates optional
// YAML frontmatter from the slide text.
package source

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/pdiddy/deckgen/internal/logger"
	"github.com/pdiddy/deckgen/internal/slides"
	"github.com/pdiddy/deckgen/pkg/types"
)

// Document is a loaded outline.
type Document struct {
	// Path is the file the document was read from; empty for in-memory input.
	Path string

	// Meta is the deck metadata from frontmatter, zero when absent.
	Meta types.DeckMeta

	// Body is the Markdown text after any frontmatter.
	Body string
}

// Load reads the outline at path. A read failure is returned as an error
// and nothing is parsed.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading outline %s: %w", path, err)
	}
	doc := FromBytes(data)
	doc.Path = path
	return doc, nil
}

// FromBytes builds a Document from raw outline content.
func FromBytes(data []byte) *Document {
	meta, body, ok := splitFrontMatter(data)
	if !ok {
		return &Document{Body: string(data)}
	}
	return &Document{Meta: meta, Body: string(body)}
}

// Deck parses the document body and attaches its metadata.
func (d *Document) Deck() types.Deck {
	deck := slides.Parse(d.Body)
	deck.Meta = d.Meta
	return deck
}

// Sections returns every candidate section of the body, titleless ones
// included.
func (d *Document) Sections() []slides.Section {
	return slides.Inspect(d.Body)
}

type frontMatterEnvelope struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Author   string `yaml:"author"`
}

// splitFrontMatter extracts a leading YAML block. A leading "---" is also a
// valid slide delimiter, so a block that does not parse as YAML, or parses
// to no known keys, is left in the body.
func splitFrontMatter(data []byte) (types.DeckMeta, []byte, bool) {
	first, _, _ := strings.Cut(string(data), "\n")
	if strings.TrimSpace(first) != "---" {
		return types.DeckMeta{}, nil, false
	}

	var env frontMatterEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(data), &env)
	if err != nil {
		logger.Debug("no frontmatter: %v", err)
		return types.DeckMeta{}, nil, false
	}

	meta := types.DeckMeta{
		Title:    strings.TrimSpace(env.Title),
		Subtitle: strings.TrimSpace(env.Subtitle),
		Author:   strings.TrimSpace(env.Author),
	}
	if meta.IsZero() {
		return types.DeckMeta{}, nil, false
	}
	return meta, body, true
}
