package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FS is a read-only view of a directory on disk that still knows its root.
type FS interface {
	fs.StatFS
	RootDir() string
	Path(name string) string
}

var _ FS = (*rootDirFS)(nil)

func New(entry string) FS {
	return &rootDirFS{entry: entry, FS: os.DirFS(entry)}
}

type rootDirFS struct {
	fs.FS
	entry string
}

func (r rootDirFS) RootDir() string {
	return r.entry
}

func (r rootDirFS) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(r.FS, name)
}

// Path returns the on-disk path of name.
func (r rootDirFS) Path(name string) string {
	return filepath.Join(r.entry, filepath.FromSlash(name))
}

// Exists reports whether name is a regular file in fsys. A missing file is
// not an error.
func Exists(fsys fs.FS, name string) (bool, error) {
	info, err := fs.Stat(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("fs.Stat: %w", err)
	}

	return info.Mode().IsRegular(), nil
}
