// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package slides parses a Markdown outline into a deck of slide records.
// Sections are separated by lines of three or more hyphens; each section
// yields a title, body lines, and fenced code blocks. The parser never
// returns an error: titleless sections are dropped and an unterminated code
// fence loses its trailing lines.
package slides

import "github.com/pdiddy/deckgen/pkg/types"

// Parse splits text into sections and returns the deck of slides that have
// a title, in source order.
func Parse(text string) types.Deck {
	deck := types.Deck{Slides: []types.Slide{}}
	for _, sec := range Inspect(text) {
		if !sec.HasTitle() {
			continue
		}
		deck.Slides = append(deck.Slides, sec.Slide())
	}
	return deck
}

// Inspect returns every candidate section, including the ones Parse would
// drop, so callers can report anomalies.
func Inspect(text string) []Section {
	segments := Segment(text)
	sections := make([]Section, 0, len(segments))
	for i, seg := range segments {
		sec := ParseSection(seg)
		sec.Index = i
		sections = append(sections, sec)
	}
	return sections
}
