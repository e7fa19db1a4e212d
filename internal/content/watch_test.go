package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: First\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Site, 4)
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, func(s *Site) { reloaded <- s }) }()

	// Keep rewriting until the watcher is up and reports the change.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case s := <-reloaded:
			assert.Equal(t, "Second", s.Name)
			cancel()
			assert.NoError(t, <-done)
			return
		case <-tick.C:
			require.NoError(t, os.WriteFile(path, []byte("name: Second\n"), 0644))
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}
