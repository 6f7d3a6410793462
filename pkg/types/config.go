// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects the renderer used for a deck.
type OutputFormat string

const (
	FormatPPTX OutputFormat = "pptx"
	FormatHTML OutputFormat = "html"
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
)

// Default renderer caps, matching what fits on a 10in x 7.5in slide at 16pt.
const (
	DefaultMaxBodyLines  = 15
	DefaultMaxCodeBlocks = 2
	DefaultMaxCodeChars  = 500
)

// RenderConfig holds the per-slide caps applied by visual renderers.
type RenderConfig struct {
	// MaxBodyLines is the number of body lines shown per slide (default 15).
	MaxBodyLines int `json:"max_body_lines" yaml:"max_body_lines" mapstructure:"max_body_lines"`

	// MaxCodeBlocks is the number of code blocks shown per slide (default 2).
	MaxCodeBlocks int `json:"max_code_blocks" yaml:"max_code_blocks" mapstructure:"max_code_blocks"`

	// MaxCodeChars truncates each code block to this many characters (default 500).
	MaxCodeChars int `json:"max_code_chars" yaml:"max_code_chars" mapstructure:"max_code_chars"`
}

// WithDefaults returns a copy with zero or negative caps replaced by defaults.
func (c RenderConfig) WithDefaults() RenderConfig {
	if c.MaxBodyLines <= 0 {
		c.MaxBodyLines = DefaultMaxBodyLines
	}
	if c.MaxCodeBlocks <= 0 {
		c.MaxCodeBlocks = DefaultMaxCodeBlocks
	}
	if c.MaxCodeChars <= 0 {
		c.MaxCodeChars = DefaultMaxCodeChars
	}
	return c
}

// BuildConfig holds settings for the build command.
type BuildConfig struct {
	// Format selects the renderer: pptx, html, yaml, or json.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	// OutputDir receives generated decks. Empty means next to each source file.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Force rebuilds decks whose output is already newer than the source.
	Force bool `json:"force" yaml:"force" mapstructure:"force"`

	Render RenderConfig `json:"render" yaml:"render" mapstructure:"render"`
}
