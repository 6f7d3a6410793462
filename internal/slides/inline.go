// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import "regexp"

// inlineRules are applied in order, each as one non-recursive pass. Markup
// nested inside other markup may survive a single call.
var inlineRules = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`\*\*(.*?)\*\*`), "$1"},
	{regexp.MustCompile(`\*(.*?)\*`), "$1"},
	{regexp.MustCompile("`(.*?)`"), "$1"},
	{regexp.MustCompile(`\[(.*?)\]\(.*?\)`), "$1"},
}

// StripInline removes bold, italic, inline code, and link markup from text.
// Plain text is returned unchanged.
func StripInline(text string) string {
	for _, r := range inlineRules {
		text = r.pattern.ReplaceAllString(text, r.repl)
	}
	return text
}
