package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverFiles_BasicDirectory(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "a.ts", "export const a = 1;")
	writeFile(t, tmp, "b.tsx", "export const B = () => null;")
	writeFile(t, tmp, "readme.md", "not a source file")

	files, err := DiscoverFiles(tmp, DefaultProjectConfig())
	require.NoError(t, err)

	names := fileNames(files)
	assert.Contains(t, names, "a.ts")
	assert.Contains(t, names, "b.tsx")
	assert.NotContains(t, names, "readme.md")

	for _, f := range files {
		assert.True(t, filepath.IsAbs(f), "expected absolute path, got %s", f)
	}
}

func TestDiscoverFiles_ExcludesConfiguredDirs(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "a.ts", "export const a = 1;")
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "node_modules"), 0755))
	writeFile(t, filepath.Join(tmp, "node_modules"), "vendor.ts", "export {}")
	writeFile(t, tmp, "types.d.ts", "declare const x: number;")

	files, err := DiscoverFiles(tmp, DefaultProjectConfig())
	require.NoError(t, err)

	names := fileNames(files)
	assert.Contains(t, names, "a.ts")
	assert.NotContains(t, names, "vendor.ts")
	assert.NotContains(t, names, "types.d.ts")
}

func TestDiscoverFiles_SortedOutput(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "zeta.ts", "export const z = 1;")
	writeFile(t, tmp, "alpha.ts", "export const a = 1;")

	files, err := DiscoverFiles(tmp, DefaultProjectConfig())
	require.NoError(t, err)
	require.Len(t, files, 2)

	for i := 1; i < len(files); i++ {
		assert.LessOrEqual(t, files[i-1], files[i], "files should be sorted")
	}
}

func TestDiscoverFiles_EmptyDirectory(t *testing.T) {
	tmp := t.TempDir()
	files, err := DiscoverFiles(tmp, DefaultProjectConfig())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDiscoverFiles_InvalidGlob(t *testing.T) {
	tmp := t.TempDir()
	cfg := DefaultProjectConfig()
	cfg.Exclude = append(cfg.Exclude, "[invalid")
	_, err := DiscoverFiles(tmp, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

// --- helpers ---

func fileNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}
