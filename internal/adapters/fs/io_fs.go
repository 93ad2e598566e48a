package fs

import (
	"errors"
	iofs "io/fs"
	"path"
)

var errReadOnly = errors.New("filesystem is read-only")

// IOFileSystem serves element trees from any io/fs.FS, such as an embed.FS
// or an fstest.MapFS. Paths use forward slashes.
type IOFileSystem struct {
	fs iofs.FS
}

func NewIOFileSystem(fsys iofs.FS) *IOFileSystem {
	return &IOFileSystem{fs: fsys}
}

func (fs *IOFileSystem) ReadFile(name string) ([]byte, error) {
	return iofs.ReadFile(fs.fs, clean(name))
}

func (fs *IOFileSystem) WalkDir(root string, fn iofs.WalkDirFunc) error {
	return iofs.WalkDir(fs.fs, clean(root), fn)
}

func (fs *IOFileSystem) FileExists(name string) bool {
	_, err := iofs.Stat(fs.fs, clean(name))
	return err == nil
}

func (fs *IOFileSystem) WriteFile(name string, data []byte, perm iofs.FileMode) error {
	return errReadOnly
}

func (fs *IOFileSystem) MkdirAll(name string, perm iofs.FileMode) error {
	return errReadOnly
}

func clean(name string) string {
	name = path.Clean("/" + name)
	if name == "/" {
		return "."
	}
	return name[1:]
}
