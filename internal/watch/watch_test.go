// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_CallsBackOnWrite(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "deck.md")
	other := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(watched, []byte("## A\n"), 0o644))
	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan string, 10)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{watched}, 20*time.Millisecond, func(p string) { changed <- p })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(other, []byte("y"), 0o644))
	require.NoError(t, os.WriteFile(watched, []byte("## A\n## B\n"), 0o644))
	require.NoError(t, os.WriteFile(watched, []byte("## A\n## C\n"), 0o644))

	select {
	case p := <-changed:
		assert.Equal(t, watched, p)
	case <-time.After(5 * time.Second):
		t.Fatal("no change callback")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}

	for len(changed) > 0 {
		assert.Equal(t, watched, <-changed)
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope", "deck.md")
	err := Watch(context.Background(), []string{missing}, 0, func(string) {})
	assert.Error(t, err)
}
