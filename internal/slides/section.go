// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"strings"

	"github.com/pdiddy/deckgen/pkg/types"
)

const (
	fenceMarker = "```"
	titleMarker = "## "
	subMarker   = "### "
)

// scanState is the section scanner's position relative to code fences.
type scanState int

const (
	inText scanState = iota
	inCodeBlock
)

// Section is the parse result for one raw slide section.
type Section struct {
	// Index is the section's position among the segmented sections.
	Index int

	Title string

	// Body holds body lines in order, leading indentation preserved.
	Body []string

	// Code holds fenced code blocks, one string per block.
	Code []string

	// Unterminated is set when the section ends inside a code fence. The
	// lines after the opening fence are not included in Code.
	Unterminated bool
}

// HasTitle reports whether the title is non-empty once inline markup is
// stripped. Sections without one are dropped from the deck.
func (s Section) HasTitle() bool {
	return strings.TrimSpace(StripInline(s.Title)) != ""
}

// Slide classifies the section's body lines and returns the slide record.
func (s Section) Slide() types.Slide {
	slide := types.Slide{Title: strings.TrimSpace(StripInline(s.Title))}
	if len(s.Body) > 0 {
		slide.Body = make([]types.BodyLine, len(s.Body))
		for i, raw := range s.Body {
			slide.Body[i] = Classify(raw)
		}
	}
	if len(s.Code) > 0 {
		slide.Code = append([]string(nil), s.Code...)
	}
	return slide
}

// ParseSection scans one section line by line and extracts its title, body
// lines, and fenced code blocks.
func ParseSection(text string) Section {
	var (
		sec   Section
		state = inText
		code  []string
	)

	for _, line := range splitLines(text) {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, fenceMarker) {
			switch state {
			case inText:
				state = inCodeBlock
			case inCodeBlock:
				sec.Code = append(sec.Code, strings.Join(code, "\n"))
				code = code[:0]
				state = inText
			}
			continue
		}

		if state == inCodeBlock {
			code = append(code, line)
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, titleMarker):
			sec.Title = strings.TrimSpace(trimmed[len(titleMarker):])
		case strings.HasPrefix(trimmed, subMarker):
			if sec.Title == "" {
				sec.Title = strings.TrimSpace(trimmed[len(subMarker):])
			} else {
				sec.Body = append(sec.Body, strings.TrimRight(line, " \t"))
			}
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			// blank line or unsupported heading level
		default:
			sec.Body = append(sec.Body, strings.TrimRight(line, " \t"))
		}
	}

	sec.Unterminated = state == inCodeBlock
	return sec
}
