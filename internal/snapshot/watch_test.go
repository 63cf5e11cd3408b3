package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReportsFileChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"schema_version":1}`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"schema_version":1,"projects":[]}`), 0o644))

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change notification")
	}
}

func TestWatch_SeesAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"schema_version":1}`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := Watch(ctx, path)
	require.NoError(t, err)

	tmp := filepath.Join(dir, "export.json.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte(`{"schema_version":1,"projects":[]}`), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change notification")
	}
}

func TestWatch_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"schema_version":1}`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	time.Sleep(2 * debounceWindow)
	select {
	case <-changes:
		t.Fatal("unexpected notification for a sibling file")
	default:
	}
}

func TestWatch_ClosesChannelOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"schema_version":1}`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	changes, err := Watch(ctx, path)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-changes:
		assert.False(t, ok)
	case <-time.After(3 * time.Second):
		t.Fatal("expected channel to close")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "export.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watching snapshot directory")
}
