// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the deckgen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/deckgen/internal/logger"
	"github.com/pdiddy/deckgen/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the deckgen CLI.
var rootCmd = &cobra.Command{
	Use:   "deckgen",
	Short: "Generate slide decks from Markdown outlines",
	Long: `deckgen turns a Markdown outline into a slide deck. Slides are separated
by "---" lines; "##" (or "###") headings become slide titles, "-" and "*"
lines become bullets, and fenced code blocks are carried onto the slide.

Use build to write decks (pptx, html, yaml, json), parse to inspect the
slide structure, and check to find sections that will be dropped.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool("verbose"))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./deckgen.yaml or ~/.config/deckgen/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print diagnostics to stderr")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetDefault("format", string(types.FormatPPTX))
	viper.SetDefault("render.max_body_lines", types.DefaultMaxBodyLines)
	viper.SetDefault("render.max_code_blocks", types.DefaultMaxCodeBlocks)
	viper.SetDefault("render.max_code_chars", types.DefaultMaxCodeChars)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("deckgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "deckgen"))
		}
	}

	bindEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// bindEnv maps nested keys to DECKGEN_ variables, so render.max_body_lines
// is read from DECKGEN_RENDER_MAX_BODY_LINES.
func bindEnv() {
	viper.SetEnvPrefix("DECKGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// buildConfig assembles the build settings from flags, environment, and the
// config file, in that order of precedence.
func buildConfig() (types.BuildConfig, error) {
	var cfg types.BuildConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	cfg.Render = cfg.Render.WithDefaults()
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
