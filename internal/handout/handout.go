// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package handout renders a deck as a single HTML page, one section per
// slide. Body lines keep their Markdown and are converted with goldmark, so
// the handout shows everything the slide source has, uncapped.
package handout

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/pdiddy/deckgen/pkg/types"
)

// Renderer produces .html handouts. It holds no per-call state and can be
// shared.
type Renderer struct {
	md goldmark.Markdown
}

// New returns an HTML handout renderer with GFM extensions enabled.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

func (r *Renderer) Format() types.OutputFormat { return types.FormatHTML }
func (r *Renderer) Ext() string                { return ".html" }

type pageData struct {
	Title    string
	Subtitle string
	Author   string
	Slides   []slideData
}

type slideData struct {
	Number int
	Title  string
	Body   template.HTML
}

// Render writes the deck as a standalone HTML document.
func (r *Renderer) Render(w io.Writer, deck types.Deck) error {
	data := pageData{
		Title:    deck.Meta.Title,
		Subtitle: deck.Meta.Subtitle,
		Author:   deck.Meta.Author,
	}
	for i, s := range deck.Slides {
		body, err := r.slideBody(s)
		if err != nil {
			return fmt.Errorf("slide %d (%s): %w", i+1, s.Title, err)
		}
		data.Slides = append(data.Slides, slideData{Number: i + 1, Title: s.Title, Body: body})
	}
	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("writing handout: %w", err)
	}
	return nil
}

// slideBody rebuilds the slide's Markdown from its raw body lines and code
// blocks and converts it to HTML.
func (r *Renderer) slideBody(s types.Slide) (template.HTML, error) {
	var src strings.Builder
	for _, line := range s.Body {
		src.WriteString(line.Raw)
		src.WriteString("\n")
	}
	for _, code := range s.Code {
		src.WriteString("\n```\n")
		src.WriteString(code)
		src.WriteString("\n```\n")
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src.String()), &buf); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return template.HTML(buf.String()), nil
}

var page = template.Must(template.New("handout").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{if .Title}}{{.Title}}{{else}}Slides{{end}}</title>
<style>
body { font-family: Calibri, Arial, sans-serif; color: #374151; max-width: 54rem; margin: 2rem auto; }
header h1, section h2 { color: #0284C7; }
section { border-top: 2px solid #10B981; padding: 1rem 0; }
pre { background: #F8FAFC; color: #586E75; padding: .75rem; overflow-x: auto; }
.num { color: #9CA3AF; font-size: .8rem; }
</style>
</head>
<body>
{{- if .Title}}
<header>
<h1>{{.Title}}</h1>
{{- if .Subtitle}}
<p>{{.Subtitle}}</p>
{{- end}}
{{- if .Author}}
<p>{{.Author}}</p>
{{- end}}
</header>
{{- end}}
{{- range .Slides}}
<section id="slide-{{.Number}}">
<p class="num">{{.Number}}</p>
<h2>{{.Title}}</h2>
{{.Body}}
</section>
{{- end}}
</body>
</html>
`))
