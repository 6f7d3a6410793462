// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package build turns Markdown outlines into deck files. It loads each
// source, parses it into slides, and writes it through a renderer, skipping
// outputs that are already newer than their source.
package build

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/deckgen/internal/logger"
	"github.com/pdiddy/deckgen/internal/render"
	"github.com/pdiddy/deckgen/internal/source"
	"github.com/pdiddy/deckgen/pkg/types"
)

// Job pairs an outline with the file its deck is written to.
type Job struct {
	Source string
	Output string
}

// BatchResult holds the outcome of a batch build.
type BatchResult struct {
	Built   int
	Skipped int
	Failed  int
}

// Total returns the number of jobs processed.
func (r BatchResult) Total() int {
	return r.Built + r.Skipped + r.Failed
}

// HasFailures reports whether any deck failed to build.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Jobs derives one job per source path. Outputs are named after the source
// with ext replacing its extension, in outDir, or beside the source when
// outDir is empty.
func Jobs(paths []string, outDir, ext string) []Job {
	jobs := make([]Job, len(paths))
	for i, p := range paths {
		base := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p)) + ext
		dir := outDir
		if dir == "" {
			dir = filepath.Dir(p)
		}
		jobs[i] = Job{Source: p, Output: filepath.Join(dir, base)}
	}
	return jobs
}

// BuildDeck builds a single deck and reports progress to w. The output is
// skipped when it is newer than the source, unless force is set. A source
// that cannot be read fails the job without touching the output.
func BuildDeck(r render.Renderer, job Job, force bool, w io.Writer) (types.BuildStatus, error) {
	if !force && upToDate(job) {
		fmt.Fprintf(w, "skipped: %s (up to date)\n", job.Output)
		return types.BuildSkipped, nil
	}

	doc, err := source.Load(job.Source)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", job.Source, err)
		return types.BuildFailed, err
	}

	sections := doc.Sections()
	deck := doc.Deck()
	logger.Debug("%s: %d sections, %d slides", job.Source, len(sections), deck.Len())
	for _, sec := range sections {
		if !sec.HasTitle() {
			logger.Warn("%s: section %d has no title, dropped", job.Source, sec.Index+1)
		}
		if sec.Unterminated {
			logger.Warn("%s: section %d has an unterminated code fence", job.Source, sec.Index+1)
		}
	}

	if err := render.WriteFile(r, deck, job.Output); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", job.Source, err)
		return types.BuildFailed, err
	}

	fmt.Fprintf(w, "built: %s (%d slides)\n", job.Output, deck.Len())
	return types.BuildDone, nil
}

// BuildBatch builds every job, printing per-file status and a summary to w.
// A failed job does not stop the batch.
func BuildBatch(r render.Renderer, jobs []Job, force bool, w io.Writer) BatchResult {
	var result BatchResult
	for _, j := range jobs {
		status, _ := BuildDeck(r, j, force, w)
		switch status {
		case types.BuildDone:
			result.Built++
		case types.BuildSkipped:
			result.Skipped++
		case types.BuildFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d built, %d skipped, %d failed (total: %d)\n",
		result.Built, result.Skipped, result.Failed, result.Total())
	return result
}

// upToDate reports whether the output exists and is newer than the source.
// A missing source is never up to date, so the load error surfaces.
func upToDate(job Job) bool {
	src, err := os.Stat(job.Source)
	if err != nil {
		return false
	}
	out, err := os.Stat(job.Output)
	if err != nil {
		return false
	}
	return out.ModTime().After(src.ModTime())
}
