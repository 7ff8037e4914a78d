package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gender-selector/pkg/shape"

	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedSymbols(t *testing.T) {
	s, err := LoadSymbols("", "")
	require.NoError(t, err)
	require.Equal(t, shape.Rect{X: 3, Y: 2, W: 19, H: 19}, s.Male.Bounds())
	require.Equal(t, shape.Rect{X: 5, Y: 2, W: 14, H: 22}, s.Female.Bounds())
}

func TestLoadSymbolOverride(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "male.path")
	require.NoError(t, os.WriteFile(custom, []byte("M0 0 H4 V8 H0 Z"), 0o644))

	s, err := LoadSymbols(custom, "")
	require.NoError(t, err)
	require.Equal(t, shape.Rect{W: 4, H: 8}, s.Male.Bounds())

	_, err = LoadSymbols(filepath.Join(dir, "missing.path"), "")
	require.Error(t, err)

	empty := filepath.Join(dir, "empty.path")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = LoadSymbols("", empty)
	require.True(t, errors.Is(err, shape.ErrEmptyPath))
}
