// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "splits on delimiter with surrounding blank lines",
			text: "## A\nx\n\n---\n\n## B\ny",
			want: []string{"## A\nx", "## B\ny"},
		},
		{
			name: "accepts longer delimiters and surrounding whitespace",
			text: "## A\n  -----  \n## B\n\t---\n## C",
			want: []string{"## A", "## B", "## C"},
		},
		{
			name: "drops empty segments",
			text: "---\n## A\n---\n\n   \n---\n## B\n---\n",
			want: []string{"## A", "## B"},
		},
		{
			name: "drops the document heading section",
			text: "# Product Deck\n\n---\n## A",
			want: []string{"## A"},
		},
		{
			name: "keeps content that follows the document heading",
			text: "# Product Deck\n\n## Intro\nHello\n---\n## Two\nx",
			want: []string{"# Product Deck\n\n## Intro\nHello", "## Two\nx"},
		},
		{
			name: "keeps hyphens that are not alone on a line",
			text: "## A\n--- not a delimiter\n-- short\n---x",
			want: []string{"## A\n--- not a delimiter\n-- short\n---x"},
		},
		{
			name: "handles CRLF input",
			text: "## A\r\nx\r\n---\r\n## B\r\n",
			want: []string{"## A\nx", "## B"},
		},
		{
			name: "no delimiters yields one section",
			text: "## Solo\nbody",
			want: []string{"## Solo\nbody"},
		},
		{
			name: "empty document",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Segment(tt.text))
		})
	}
}

func TestIsDelimiter(t *testing.T) {
	assert.True(t, isDelimiter("---"))
	assert.True(t, isDelimiter(" ------ "))
	assert.False(t, isDelimiter("--"))
	assert.False(t, isDelimiter("- - -"))
	assert.False(t, isDelimiter(""))
}
