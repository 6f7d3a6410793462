// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package build

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deckgen/pkg/types"
)

// fakeRenderer records the decks it renders and writes their titles.
type fakeRenderer struct {
	err   error
	decks []types.Deck
}

func (f *fakeRenderer) Format() types.OutputFormat { return "fake" }
func (f *fakeRenderer) Ext() string                { return ".txt" }

func (f *fakeRenderer) Render(w io.Writer, deck types.Deck) error {
	if f.err != nil {
		return f.err
	}
	f.decks = append(f.decks, deck)
	for _, s := range deck.Slides {
		io.WriteString(w, s.Title+"\n")
	}
	return nil
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestJobs(t *testing.T) {
	jobs := Jobs([]string{"docs/a.md", "b.markdown"}, "out", ".pptx")
	assert.Equal(t, []Job{
		{Source: "docs/a.md", Output: filepath.Join("out", "a.pptx")},
		{Source: "b.markdown", Output: filepath.Join("out", "b.pptx")},
	}, jobs)

	beside := Jobs([]string{filepath.Join("docs", "talk.md")}, "", ".html")
	assert.Equal(t, filepath.Join("docs", "talk.html"), beside[0].Output)
}

func TestBuildDeck(t *testing.T) {
	tests := []struct {
		name       string
		renderer   *fakeRenderer
		missingSrc bool
		preCreate  bool // output newer than source
		force      bool
		wantStatus types.BuildStatus
		wantLog    string
		wantErr    bool
	}{
		{
			name:       "successful build",
			renderer:   &fakeRenderer{},
			wantStatus: types.BuildDone,
			wantLog:    "built:",
		},
		{
			name:       "skip up-to-date output",
			renderer:   &fakeRenderer{},
			preCreate:  true,
			wantStatus: types.BuildSkipped,
			wantLog:    "skipped:",
		},
		{
			name:       "force rebuilds up-to-date output",
			renderer:   &fakeRenderer{},
			preCreate:  true,
			force:      true,
			wantStatus: types.BuildDone,
			wantLog:    "built:",
		},
		{
			name:       "missing source fails",
			renderer:   &fakeRenderer{},
			missingSrc: true,
			wantStatus: types.BuildFailed,
			wantLog:    "failed:",
			wantErr:    true,
		},
		{
			name:       "render failure fails",
			renderer:   &fakeRenderer{err: errors.New("disk on fire")},
			wantStatus: types.BuildFailed,
			wantLog:    "failed:",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			src := filepath.Join(dir, "talk.md")
			if !tt.missingSrc {
				writeSource(t, dir, "talk.md", "## Intro\nHello\n---\n## Done\nBye\n")
			}
			out := filepath.Join(dir, "out", "talk.txt")
			if tt.preCreate {
				require.NoError(t, os.MkdirAll(filepath.Dir(out), 0o755))
				require.NoError(t, os.WriteFile(out, []byte("existing"), 0o644))
				later := time.Now().Add(time.Hour)
				require.NoError(t, os.Chtimes(out, later, later))
			}

			var log bytes.Buffer
			status, err := BuildDeck(tt.renderer, Job{Source: src, Output: out}, tt.force, &log)

			assert.Equal(t, tt.wantStatus, status)
			assert.Contains(t, log.String(), tt.wantLog)
			if tt.wantErr {
				assert.Error(t, err)
				_, statErr := os.Stat(out)
				assert.True(t, os.IsNotExist(statErr), "no output should be written on failure")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuildDeck_WritesSlides(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "talk.md", "# Talk\n---\n## Intro\nHello\n---\nno title\n---\n## Done\n")
	out := filepath.Join(dir, "talk.txt")
	r := &fakeRenderer{}

	var log bytes.Buffer
	status, err := BuildDeck(r, Job{Source: src, Output: out}, false, &log)
	require.NoError(t, err)
	assert.Equal(t, types.BuildDone, status)
	assert.Contains(t, log.String(), "(2 slides)")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Intro\nDone\n", string(data))
}

func TestBuildBatch(t *testing.T) {
	dir := t.TempDir()
	a := writeSource(t, dir, "a.md", "## A\n")
	b := writeSource(t, dir, "b.md", "## B\n")
	missing := filepath.Join(dir, "c.md")

	outDir := filepath.Join(dir, "out")
	jobs := Jobs([]string{a, b, missing}, outDir, ".txt")

	// b is already built.
	require.NoError(t, os.MkdirAll(outDir, 0o755))
	require.NoError(t, os.WriteFile(jobs[1].Output, []byte("B\n"), 0o644))
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(jobs[1].Output, later, later))

	var log bytes.Buffer
	result := BuildBatch(&fakeRenderer{}, jobs, false, &log)

	assert.Equal(t, BatchResult{Built: 1, Skipped: 1, Failed: 1}, result)
	assert.True(t, result.HasFailures())
	assert.Equal(t, 3, result.Total())
	assert.True(t, strings.Contains(log.String(), "Batch summary: 1 built, 1 skipped, 1 failed (total: 3)"))
}
