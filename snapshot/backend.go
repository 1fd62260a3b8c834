package snapshot

import (
	"io/fs"
	"os"
)

// Backend is the filesystem surface the store needs.
type Backend interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(path string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)
	RemoveAll(path string) error
}

// OSBackend is a Backend on the real filesystem.
type OSBackend struct{}

// NewOSBackend returns a Backend backed by the os package.
func NewOSBackend() *OSBackend {
	return &OSBackend{}
}

func (OSBackend) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OSBackend) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (OSBackend) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (OSBackend) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OSBackend) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

func (OSBackend) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (OSBackend) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
