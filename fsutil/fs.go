// Package fsutil provides file system access and candidate file discovery.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
)

//go:generate mockgen -source=fs.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides the file system operations used during a lint run.
type FS interface {
	// WalkDir walks the file tree rooted at root, see filepath.WalkDir.
	WalkDir(root string, fn fs.WalkDirFunc) error

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// Stat returns the file info of path, following symbolic links.
	Stat(path string) (fs.FileInfo, error)
}

type realFS struct{}

// NewFS creates a new FS backed by the operating system.
func NewFS() FS {
	return &realFS{}
}

// WalkDir walks the file tree rooted at root.
func (f *realFS) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// ReadFile reads the contents of a file.
func (f *realFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns the file info of path, following symbolic links.
func (f *realFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}
