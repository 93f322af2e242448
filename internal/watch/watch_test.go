package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberempirex/installguard/internal/engine"
	"github.com/cyberempirex/installguard/internal/source"
	"github.com/cyberempirex/installguard/internal/types"
)

type collector struct {
	mu      sync.Mutex
	results []*engine.Result
}

func (c *collector) add(_ *source.Document, r *engine.Result) {
	c.mu.Lock()
	c.results = append(c.results, r)
	c.mu.Unlock()
}

func (c *collector) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}

func (c *collector) last() *engine.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results[len(c.results)-1]
}

func TestNew_RequiresPath(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestWatcher_ReanalyzesOnChange(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "install.sh")
	require.NoError(t, os.WriteFile(p, []byte("echo hi\n"), 0o644))

	c := &collector{}
	w, err := New(Config{Path: p, Debounce: 20 * time.Millisecond, OnResult: c.add})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return c.len() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, types.VerdictClean, c.last().Verdict())

	require.NoError(t, os.WriteFile(p, []byte("echo hi\nrm -rf /\n"), 0o644))
	require.Eventually(t, func() bool { return c.len() == 2 }, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, types.VerdictDangerous, c.last().Verdict())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestAnalyze_SkipsUnchangedContent(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "install.sh")
	require.NoError(t, os.WriteFile(p, []byte("sudo id\n"), 0o644))

	c := &collector{}
	w, err := New(Config{Path: p, OnResult: c.add})
	require.NoError(t, err)

	w.analyze()
	w.analyze()
	assert.Equal(t, 1, c.len())

	require.NoError(t, os.WriteFile(p, []byte("echo fine\n"), 0o644))
	w.analyze()
	require.Equal(t, 2, c.len())
	assert.Empty(t, c.last().Medium, "each analysis starts from a fresh result")
}

func TestAnalyze_ReportsNonText(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "blob.sh")
	require.NoError(t, os.WriteFile(p, []byte{0xff, 0xfe}, 0o644))

	var got error
	w, err := New(Config{Path: p, OnError: func(err error) { got = err }})
	require.NoError(t, err)
	w.analyze()
	assert.ErrorIs(t, got, source.ErrNotText)
}

func TestRun_MissingScriptFailsImmediately(t *testing.T) {
	dir := t.TempDir()
	for name, path := range map[string]string{
		"missing":   filepath.Join(dir, "missing.sh"),
		"directory": dir,
	} {
		t.Run(name, func(t *testing.T) {
			c := &collector{}
			w, err := New(Config{Path: path, OnResult: c.add})
			require.NoError(t, err)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			err = w.Run(ctx)
			require.Error(t, err)
			assert.True(t, source.IsAccessError(err))
			assert.NoError(t, ctx.Err(), "Run must not wait for the context")
			assert.Zero(t, c.len())
		})
	}
	w, err := New(Config{Path: filepath.Join(dir, "missing.sh")})
	require.NoError(t, err)
	assert.ErrorIs(t, w.Run(context.Background()), source.ErrNotFound)
}
