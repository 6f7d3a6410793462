// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deckgen/pkg/types"
)

func rawBody(s types.Slide) []string {
	out := make([]string, len(s.Body))
	for i, l := range s.Body {
		out[i] = l.Raw
	}
	return out
}

func TestParse_TwoSections(t *testing.T) {
	deck := Parse("## Intro\nHello\n- point one\n\n---\n\n## Done\nBye")

	require.Len(t, deck.Slides, 2)
	assert.Equal(t, "Intro", deck.Slides[0].Title)
	assert.Equal(t, []string{"Hello", "- point one"}, rawBody(deck.Slides[0]))
	assert.Equal(t, "Done", deck.Slides[1].Title)
	assert.Equal(t, []string{"Bye"}, rawBody(deck.Slides[1]))
}

func TestParse_SubheadingOnly(t *testing.T) {
	deck := Parse("### Only\nBody text")

	require.Len(t, deck.Slides, 1)
	assert.Equal(t, "Only", deck.Slides[0].Title)
	assert.Equal(t, []string{"Body text"}, rawBody(deck.Slides[0]))
}

func TestParse_DropsTitlelessSection(t *testing.T) {
	deck := Parse("just some text\n- and a bullet\n---\n## Kept\nbody")

	require.Len(t, deck.Slides, 1)
	assert.Equal(t, "Kept", deck.Slides[0].Title)
}

func TestParse_DocumentHeadingWithoutDelimiter(t *testing.T) {
	deck := Parse("# Product Deck\n\n## Intro\nHello\n---\n## Two\nx")

	require.Len(t, deck.Slides, 2)
	assert.Equal(t, "Intro", deck.Slides[0].Title)
	assert.Equal(t, []string{"Hello"}, rawBody(deck.Slides[0]))
	assert.Equal(t, "Two", deck.Slides[1].Title)
}

func TestParse_DropsTitleThatIsOnlyMarkup(t *testing.T) {
	deck := Parse("## **\nbody\n---\n## ``\nmore\n---\n## Kept\nx")

	require.Len(t, deck.Slides, 1)
	assert.Equal(t, "Kept", deck.Slides[0].Title)
	assert.False(t, ParseSection("## **\nbody").HasTitle())
	assert.True(t, ParseSection("## **Real**").HasTitle())
}

func TestParse_EmptyInput(t *testing.T) {
	deck := Parse("")
	assert.NotNil(t, deck.Slides)
	assert.Equal(t, 0, deck.Len())
}

func TestParse_SurvivorsAreTitledCandidates(t *testing.T) {
	docs := []string{
		"# Deck\n---\n## A\nx\n---\nno title\n---\n### B\ny\n---\n\n---\n## C",
		"## One\n---\n---\n---\n## Two\n```\n## not a title\n```",
		"plain\n---\nplain again",
	}
	for _, doc := range docs {
		sections := Inspect(doc)
		deck := Parse(doc)

		assert.LessOrEqual(t, deck.Len(), len(Segment(doc)))
		assert.Len(t, sections, len(Segment(doc)))

		var titled []string
		for _, s := range sections {
			if s.HasTitle() {
				titled = append(titled, s.Slide().Title)
			}
		}
		var got []string
		for _, s := range deck.Slides {
			got = append(got, s.Title)
		}
		assert.Equal(t, titled, got, "doc %q", doc)
	}
}

func TestParse_ClassifiesBody(t *testing.T) {
	deck := Parse("## Plan\nIntro **line**\n- first\n  - nested `code`\n✅ shipped")

	require.Len(t, deck.Slides, 1)
	want := []types.BodyLine{
		{Raw: "Intro **line**", Text: "Intro line", Level: 0, Kind: types.LinePlain},
		{Raw: "- first", Text: "first", Level: 0, Kind: types.LineBullet},
		{Raw: "  - nested `code`", Text: "nested code", Level: 1, Kind: types.LineBullet},
		{Raw: "✅ shipped", Text: "✅ shipped", Level: 0, Kind: types.LineBullet},
	}
	assert.Equal(t, want, deck.Slides[0].Body)
}

func TestParse_StripsTitleMarkup(t *testing.T) {
	deck := Parse("## The **big** [idea](http://example.com)")
	require.Len(t, deck.Slides, 1)
	assert.Equal(t, "The big idea", deck.Slides[0].Title)
}
