package snapshot

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memDirSize is what MemoryBackend reports as a directory's own size,
// mirroring a typical block-sized directory entry.
const memDirSize = 4096

// MemoryBackend is an in-memory Backend for tests.
type MemoryBackend struct {
	files    map[string][]byte
	dirs     map[string]bool
	failures map[string]error
	mutated  int
}

// NewMemoryBackend returns an empty in-memory filesystem containing only "/".
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		files:    make(map[string][]byte),
		dirs:     map[string]bool{"/": true},
		failures: make(map[string]error),
	}
}

// Fail makes every operation on path return err.
func (m *MemoryBackend) Fail(path string, err error) {
	m.failures[filepath.Clean(path)] = err
}

// Mutations counts successful write, rename, mkdir and remove calls.
func (m *MemoryBackend) Mutations() int {
	return m.mutated
}

// Exists reports whether path is a file or directory.
func (m *MemoryBackend) Exists(path string) bool {
	path = filepath.Clean(path)
	_, isFile := m.files[path]
	return isFile || m.dirs[path]
}

func (m *MemoryBackend) check(op, path string) error {
	if err, ok := m.failures[path]; ok {
		return &fs.PathError{Op: op, Path: path, Err: err}
	}
	return nil
}

func notExist(op, path string) error {
	return &fs.PathError{Op: op, Path: path, Err: fs.ErrNotExist}
}

func (m *MemoryBackend) ReadFile(path string) ([]byte, error) {
	path = filepath.Clean(path)
	if err := m.check("open", path); err != nil {
		return nil, err
	}
	data, ok := m.files[path]
	if !ok {
		return nil, notExist("open", path)
	}
	return append([]byte(nil), data...), nil
}

func (m *MemoryBackend) WriteFile(path string, data []byte, _ fs.FileMode) error {
	path = filepath.Clean(path)
	if err := m.check("open", path); err != nil {
		return err
	}
	if !m.dirs[filepath.Dir(path)] {
		return notExist("open", path)
	}
	if m.dirs[path] {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrInvalid}
	}
	m.files[path] = append([]byte(nil), data...)
	m.mutated++
	return nil
}

func (m *MemoryBackend) Rename(oldpath, newpath string) error {
	oldpath, newpath = filepath.Clean(oldpath), filepath.Clean(newpath)
	if err := m.check("rename", oldpath); err != nil {
		return err
	}
	data, ok := m.files[oldpath]
	if !ok {
		return notExist("rename", oldpath)
	}
	if !m.dirs[filepath.Dir(newpath)] {
		return notExist("rename", newpath)
	}
	delete(m.files, oldpath)
	m.files[newpath] = data
	m.mutated++
	return nil
}

func (m *MemoryBackend) MkdirAll(path string, _ fs.FileMode) error {
	path = filepath.Clean(path)
	if err := m.check("mkdir", path); err != nil {
		return err
	}
	if m.dirs[path] {
		return nil
	}
	for p := path; ; p = filepath.Dir(p) {
		if _, isFile := m.files[p]; isFile {
			return &fs.PathError{Op: "mkdir", Path: p, Err: fs.ErrExist}
		}
		if p == filepath.Dir(p) {
			break
		}
	}
	for p := path; !m.dirs[p]; p = filepath.Dir(p) {
		m.dirs[p] = true
	}
	m.mutated++
	return nil
}

func (m *MemoryBackend) ReadDir(path string) ([]fs.DirEntry, error) {
	path = filepath.Clean(path)
	if err := m.check("open", path); err != nil {
		return nil, err
	}
	if !m.dirs[path] {
		return nil, notExist("open", path)
	}

	var entries []fs.DirEntry
	for dir := range m.dirs {
		if dir != path && filepath.Dir(dir) == path {
			entries = append(entries, fs.FileInfoToDirEntry(m.dirInfo(dir)))
		}
	}
	for file, data := range m.files {
		if filepath.Dir(file) == path {
			entries = append(entries, fs.FileInfoToDirEntry(fileInfo(file, len(data))))
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (m *MemoryBackend) Stat(path string) (fs.FileInfo, error) {
	path = filepath.Clean(path)
	if err := m.check("stat", path); err != nil {
		return nil, err
	}
	if m.dirs[path] {
		return m.dirInfo(path), nil
	}
	if data, ok := m.files[path]; ok {
		return fileInfo(path, len(data)), nil
	}
	return nil, notExist("stat", path)
}

func (m *MemoryBackend) RemoveAll(path string) error {
	path = filepath.Clean(path)
	if err := m.check("unlinkat", path); err != nil {
		return err
	}
	prefix := path + string(filepath.Separator)
	for file := range m.files {
		if file == path || strings.HasPrefix(file, prefix) {
			delete(m.files, file)
		}
	}
	for dir := range m.dirs {
		if dir == path || strings.HasPrefix(dir, prefix) {
			delete(m.dirs, dir)
		}
	}
	m.mutated++
	return nil
}

func (m *MemoryBackend) dirInfo(path string) fs.FileInfo {
	return memInfo{name: filepath.Base(path), size: memDirSize, mode: fs.ModeDir | 0o755}
}

func fileInfo(path string, size int) fs.FileInfo {
	return memInfo{name: filepath.Base(path), size: int64(size), mode: 0o600}
}

type memInfo struct {
	name string
	size int64
	mode fs.FileMode
}

func (i memInfo) Name() string       { return i.name }
func (i memInfo) Size() int64        { return i.size }
func (i memInfo) Mode() fs.FileMode  { return i.mode }
func (i memInfo) ModTime() time.Time { return time.Time{} }
func (i memInfo) IsDir() bool        { return i.mode.IsDir() }
func (i memInfo) Sys() any           { return nil }
