package filesystem

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrNotDirectory is wrapped by a FilesystemError when a listed path is not
// a directory.
var ErrNotDirectory = errors.New("not a directory")

// FileSystem is the filesystem access needed to discover templates.
type FileSystem interface {
	// Exists reports whether path exists, as a file or a directory.
	Exists(path string) bool
	// ContentsOfDirectory lists the immediate children of path.
	ContentsOfDirectory(path string) ([]string, error)
}

// FilesystemError reports a failed filesystem operation.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

type aferoFS struct {
	fs afero.Fs
}

// NewAfero returns a FileSystem backed by fs.
func NewAfero(fs afero.Fs) FileSystem {
	return &aferoFS{fs: fs}
}

// NewOS returns a FileSystem backed by the OS filesystem.
func NewOS() FileSystem {
	return NewAfero(afero.NewOsFs())
}

// NewMemory returns an empty in-memory FileSystem.
func NewMemory() FileSystem {
	return NewAfero(afero.NewMemMapFs())
}

func (a *aferoFS) Exists(path string) bool {
	ok, err := afero.Exists(a.fs, path)
	return err == nil && ok
}

// ContentsOfDirectory returns path joined with the name of each child, in the
// order afero lists them (sorted by name).
func (a *aferoFS) ContentsOfDirectory(path string) ([]string, error) {
	info, err := a.fs.Stat(path)
	if err != nil {
		return nil, &FilesystemError{Op: "list", Path: path, Err: err}
	}
	if !info.IsDir() {
		return nil, &FilesystemError{Op: "list", Path: path, Err: ErrNotDirectory}
	}

	entries, err := afero.ReadDir(a.fs, path)
	if err != nil {
		return nil, &FilesystemError{Op: "list", Path: path, Err: err}
	}

	contents := make([]string, 0, len(entries))
	for _, entry := range entries {
		contents = append(contents, filepath.Join(path, entry.Name()))
	}

	return contents, nil
}
