// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LineKind distinguishes bulleted body lines from plain ones.
type LineKind string

const (
	LinePlain  LineKind = "plain"
	LineBullet LineKind = "bullet"
)

// BodyLine is one line of slide body text after bullet classification.
type BodyLine struct {
	// Raw is the source line as it appeared in the outline, indentation included.
	Raw string `json:"raw" yaml:"raw"`

	// Text is the display text: bullet marker removed, inline markup stripped.
	Text string `json:"text" yaml:"text"`

	// Level is the bullet indent level (0 or 1).
	Level int `json:"level" yaml:"level"`

	// Kind reports whether the line is a bullet or plain text.
	Kind LineKind `json:"kind" yaml:"kind"`
}

// Slide is one parsed slide: a title, ordered body lines, and ordered
// fenced code blocks.
type Slide struct {
	Title string     `json:"title" yaml:"title"`
	Body  []BodyLine `json:"body,omitempty" yaml:"body,omitempty"`
	Code  []string   `json:"code,omitempty" yaml:"code,omitempty"`
}

// DeckMeta holds optional deck-level metadata taken from the outline's
// YAML frontmatter.
type DeckMeta struct {
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Author   string `json:"author,omitempty" yaml:"author,omitempty"`
}

// IsZero reports whether no metadata field is set.
func (m DeckMeta) IsZero() bool {
	return m == DeckMeta{}
}

// Deck is the ordered output of the slide parser, ready for a renderer.
type Deck struct {
	Meta   DeckMeta `json:"meta,omitempty" yaml:"meta,omitempty"`
	Slides []Slide  `json:"slides" yaml:"slides"`
}

// Len returns the number of slides in the deck.
func (d Deck) Len() int {
	return len(d.Slides)
}
