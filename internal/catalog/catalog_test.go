package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vpstudios/backlot/internal/catalog"
)

func TestDefault(t *testing.T) {
	cat := catalog.Default()

	require.Equal(t, []string{"immersive", "lite", "signature"}, cat.Keys())
	require.True(t, cat.Has("lite"))
	require.False(t, cat.Has("Lite"))

	pkg, ok := cat.Get("signature")
	require.True(t, ok)
	require.Equal(t, "Signature Scene", pkg.Name)
	require.Equal(t, "$7,999", pkg.Price)
	require.NotEmpty(t, pkg.Features)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `
starter:
  name: Starter Spot
  price: "$999"
  description: Short-form promo
  features:
    - 15 second video
    - 2 day delivery
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cat, err := catalog.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"starter"}, cat.Keys())

	pkg, ok := cat.Get("starter")
	require.True(t, ok)
	require.Equal(t, "Starter Spot", pkg.Name)
	require.Len(t, pkg.Features, 2)
}

func TestLoadFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	_, err := catalog.LoadFile(path)
	require.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
