package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestExpandPaths_GlobDedupesAndSorts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.jsx"))
	touch(t, filepath.Join(dir, "a.jsx"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	// The explicit "b.jsx" path and the "*.jsx" glob both match b.jsx;
	// expandPaths must only list it once, and the result must come back
	// sorted regardless of argument order.
	got, err := expandPaths([]string{
		filepath.Join(dir, "b.jsx"),
		filepath.Join(dir, "*.jsx"),
		filepath.Join(dir, "sub"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "a.jsx"), filepath.Join(dir, "b.jsx")}, got)
}

func TestExpandPaths_NonexistentPathReturnsError(t *testing.T) {
	t.Parallel()

	_, err := expandPaths([]string{filepath.Join(t.TempDir(), "missing.jsx")})
	assert.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"app.jsx":           "app.js",
		"App.TSX":           "App.js",
		"component.ts":      "component.js",
		"index.js":          "index.js",
		"readme.md":         "readme.md.js",
		"nested/widget.jsx": "nested/widget.js",
	}
	for in, want := range cases {
		assert.Equal(t, filepath.FromSlash(want), outputPath(filepath.FromSlash(in)), "input %q", in)
	}
}

func TestIsWatchedSource(t *testing.T) {
	t.Parallel()

	assert.True(t, isWatchedSource("app.jsx"))
	assert.True(t, isWatchedSource("App.TSX"))
	assert.False(t, isWatchedSource("app.js"))
	assert.False(t, isWatchedSource("readme.md"))
}
