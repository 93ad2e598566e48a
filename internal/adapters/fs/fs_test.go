package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIOFileSystemWalkAndRead(t *testing.T) {
	fsys := NewIOFileSystem(fstest.MapFS{
		"elements/header.html":     {Data: []byte("Hello")},
		"elements/utils/format.js": {Data: []byte("export const x=1;")},
	})

	var files []string
	err := fsys.WalkDir("./elements", func(path string, d iofs.DirEntry, err error) error {
		require.NoError(t, err)
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"elements/header.html", "elements/utils/format.js"}, files)

	data, err := fsys.ReadFile("elements/header.html")
	require.NoError(t, err)
	assert.Equal(t, "Hello", string(data))

	assert.True(t, fsys.FileExists("/elements/utils/format.js"))
	assert.False(t, fsys.FileExists("elements/missing.js"))
}

func TestIOFileSystemIsReadOnly(t *testing.T) {
	fsys := NewIOFileSystem(fstest.MapFS{})
	assert.Error(t, fsys.WriteFile("a.html", []byte("x"), 0o644))
	assert.Error(t, fsys.MkdirAll("out", 0o755))
}

func TestOSFileSystemRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fsys := NewOSFileSystem()

	nested := filepath.Join(dir, "hello", "world")
	require.NoError(t, fsys.MkdirAll(nested, 0o755))

	target := filepath.Join(nested, "index.html")
	require.NoError(t, fsys.WriteFile(target, []byte("<html></html>"), 0o644))
	assert.True(t, fsys.FileExists(target))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))

	var walked []string
	require.NoError(t, fsys.WalkDir(dir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			rel, _ := filepath.Rel(dir, path)
			walked = append(walked, filepath.ToSlash(rel))
		}
		return nil
	}))
	assert.Equal(t, []string{"hello/world/index.html"}, walked)
}
