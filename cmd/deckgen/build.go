// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/deckgen/internal/build"
	"github.com/pdiddy/deckgen/internal/render"
	"github.com/pdiddy/deckgen/internal/watch"
)

var buildCmd = &cobra.Command{
	Use:   "build [outlines...]",
	Short: "Build slide decks from Markdown outlines",
	Long: `Build parses each Markdown outline into slides and writes a deck per file.
Outputs that are newer than their outline are skipped unless --force is set.
With --watch, build keeps running and rebuilds an outline when it changes.

Render caps (render.max_body_lines, render.max_code_blocks,
render.max_code_chars) are read from the config file or DECKGEN_ env vars.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	r, err := render.New(cfg.Format, cfg.Render)
	if err != nil {
		return err
	}

	jobs := build.Jobs(args, cfg.OutputDir, r.Ext())
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if len(args) != 1 {
			return fmt.Errorf("--output needs exactly one outline, got %d", len(args))
		}
		jobs[0].Output = output
	}

	result := build.BuildBatch(r, jobs, cfg.Force, os.Stdout)

	watchMode, _ := cmd.Flags().GetBool("watch")
	if !watchMode {
		if result.HasFailures() {
			return fmt.Errorf("%d deck(s) failed to build", result.Failed)
		}
		return nil
	}

	bySource := make(map[string]build.Job, len(jobs))
	for _, j := range jobs {
		bySource[j.Source] = j
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(os.Stderr, "Watching for changes (Ctrl-C to stop)")
	return watch.Watch(ctx, args, watch.DefaultDebounce, func(path string) {
		_, _ = build.BuildDeck(r, bySource[path], true, os.Stdout)
	})
}

func init() {
	buildCmd.Flags().StringP("format", "f", "pptx", "output format: pptx, html, yaml, or json")
	buildCmd.Flags().String("output-dir", "", "directory for generated decks (default: next to each outline)")
	buildCmd.Flags().StringP("output", "o", "", "output file (single outline only)")
	buildCmd.Flags().Bool("force", false, "rebuild even when the output is up to date")
	buildCmd.Flags().Bool("watch", false, "rebuild outlines when they change")

	viper.BindPFlag("format", buildCmd.Flags().Lookup("format"))
	viper.BindPFlag("output_dir", buildCmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("force", buildCmd.Flags().Lookup("force"))

	rootCmd.AddCommand(buildCmd)
}
