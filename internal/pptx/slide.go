// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"fmt"
	"strings"

	"github.com/pdiddy/deckgen/internal/slides"
	"github.com/pdiddy/deckgen/pkg/types"
)

// slideXML renders one slide: a title box and a body box holding the capped
// body lines followed by the capped code blocks.
func (r *Renderer) slideXML(s types.Slide) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:sld ` + nsA + ` ` + nsR + ` ` + nsP + `>`)
	b.WriteString(`<p:cSld><p:spTree>` + emptyTree)

	writeTextBox(&b, 2, "Title", titleBox, []string{titleParagraph(s.Title)})
	writeTextBox(&b, 3, "Body", bodyBox, r.bodyParagraphs(s))

	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sld>`)
	return b.String()
}

func (r *Renderer) bodyParagraphs(s types.Slide) []string {
	var paras []string
	for i, line := range s.Body {
		if i >= r.cfg.MaxBodyLines {
			break
		}
		paras = append(paras, bodyParagraph(line))
	}
	for i, code := range s.Code {
		if i >= r.cfg.MaxCodeBlocks {
			break
		}
		paras = append(paras, codeParagraph(truncate(code, r.cfg.MaxCodeChars)))
	}
	return paras
}

func writeTextBox(b *strings.Builder, id int, name string, at box, paras []string) {
	fmt.Fprintf(b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`, id, name)
	fmt.Fprintf(b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, at.x, at.y, at.cx, at.cy)
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>`)
	b.WriteString(`<p:txBody><a:bodyPr wrap="square" rtlCol="0"><a:normAutofit/></a:bodyPr><a:lstStyle/>`)
	if len(paras) == 0 {
		b.WriteString(`<a:p><a:endParaRPr lang="en-US" dirty="0"/></a:p>`)
	}
	for _, p := range paras {
		b.WriteString(p)
	}
	b.WriteString(`</p:txBody></p:sp>`)
}

func titleParagraph(title string) string {
	return `<a:p>` + run(title, StyleFor(RoleTitle)) + `</a:p>`
}

func bodyParagraph(line types.BodyLine) string {
	var pPr string
	if line.Kind == types.LineBullet {
		lvl := min(max(line.Level, 0), len(bulletIndent)-1)
		ind := bulletIndent[lvl]
		char := ind.char
		if slides.HasGlyph(line.Raw) {
			// the glyph is already in the text
			pPr = fmt.Sprintf(`<a:pPr marL="%d" lvl="%d" indent="0"><a:buNone/></a:pPr>`, ind.marL+ind.indent, lvl)
		} else {
			pPr = fmt.Sprintf(`<a:pPr marL="%d" lvl="%d" indent="%d"><a:buClr>%s</a:buClr>`+
				`<a:buFont typeface="Arial"/><a:buChar char="%s"/></a:pPr>`,
				ind.marL, lvl, ind.indent, srgb(colorAccent), esc(char))
		}
	} else {
		pPr = `<a:pPr marL="0" indent="0"><a:buNone/></a:pPr>`
	}
	return `<a:p>` + pPr + run(line.Text, StyleFor(RoleBody)) + `</a:p>`
}

func codeParagraph(code string) string {
	style := StyleFor(RoleCode)
	var b strings.Builder
	b.WriteString(`<a:p><a:pPr marL="0" indent="0"><a:buNone/></a:pPr>`)
	for i, line := range strings.Split(code, "\n") {
		if i > 0 {
			b.WriteString(`<a:br>` + runProps(style) + `</a:br>`)
		}
		b.WriteString(run(line, style))
	}
	b.WriteString(`</a:p>`)
	return b.String()
}

func run(text string, style TextStyle) string {
	return `<a:r>` + runProps(style) + `<a:t>` + esc(text) + `</a:t></a:r>`
}

func runProps(style TextStyle) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<a:rPr lang="en-US" sz="%d"`, style.Size)
	if style.Bold {
		b.WriteString(` b="1"`)
	}
	b.WriteString(` dirty="0">`)
	b.WriteString(`<a:solidFill>` + srgb(style.Color) + `</a:solidFill>`)
	if style.Font != "" {
		fmt.Fprintf(&b, `<a:latin typeface="%s"/><a:cs typeface="%s"/>`, style.Font, style.Font)
	}
	b.WriteString(`</a:rPr>`)
	return b.String()
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
