package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vpstudios/backlot/internal/storage"
)

func TestDiskStore_Store(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewDiskStore(dir, "/uploads")
	require.NoError(t, err)

	ref, err := store.Store(context.Background(), "brief.pdf", strings.NewReader("content"))
	require.NoError(t, err)
	require.Equal(t, "brief.pdf", ref.Name)
	require.Equal(t, int64(7), ref.Size)
	require.True(t, strings.HasPrefix(ref.URL, "/uploads/"))
	require.True(t, strings.HasSuffix(ref.URL, "-brief.pdf"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	require.Equal(t, "content", string(data))
}

func TestDiskStore_UniqueNames(t *testing.T) {
	store, err := storage.NewDiskStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	first, err := store.Store(context.Background(), "brief.pdf", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Store(context.Background(), "brief.pdf", strings.NewReader("b"))
	require.NoError(t, err)
	require.NotEqual(t, first.URL, second.URL)
}

func TestDiskStore_StripsDirectories(t *testing.T) {
	store, err := storage.NewDiskStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	ref, err := store.Store(context.Background(), "../outside/evil.bin", strings.NewReader("x"))
	require.NoError(t, err)
	require.NotContains(t, ref.URL, "..")
	require.True(t, strings.HasSuffix(ref.URL, "-evil.bin"))
}
