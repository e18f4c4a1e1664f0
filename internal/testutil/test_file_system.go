package testutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vpsup/internal/ports"
)

var _ ports.FileSystem = (*TestFileSystem)(nil)

// TestFileSystem provides real file system operations sandboxed within a temporary directory.
// All paths are automatically resolved relative to the sandbox directory, and paths it
// returns (CreateTemp, MkdirTemp) are sandbox paths again.
// Ownership changes are recorded instead of applied; see Ownership.
// For unit tests that mock file system calls, use MockFileSystem instead.
type TestFileSystem struct {
	baseDir   string
	ownership map[string][2]string
	// FailOn makes the named operation fail for the given sandbox path.
	FailOn map[string]string
	// FailAll makes the named operation fail for every path.
	FailAll string
}

// NewTestFileSystem creates a sandboxed file system within a temporary directory.
// The directory is automatically cleaned up when the test completes.
func NewTestFileSystem(t *testing.T) *TestFileSystem {
	t.Helper()
	baseDir := t.TempDir()
	return &TestFileSystem{
		baseDir:   baseDir,
		ownership: make(map[string][2]string),
		FailOn:    make(map[string]string),
	}
}

// BaseDir returns the sandbox base directory path.
func (f *TestFileSystem) BaseDir() string {
	return f.baseDir
}

// Path returns the real path of a sandbox path.
func (f *TestFileSystem) Path(path string) string {
	return f.resolvePath(path)
}

// Ownership returns the owner and group last applied to path.
func (f *TestFileSystem) Ownership(path string) (string, string) {
	entry := f.ownership[filepath.Clean(path)]
	return entry[0], entry[1]
}

// Entries lists the names inside a sandbox directory.
func (f *TestFileSystem) Entries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(f.resolvePath(dir))
	if err != nil {
		t.Fatalf("failed to read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

// resolvePath converts a path to be relative to the sandbox directory.
func (f *TestFileSystem) resolvePath(path string) string {
	cleanPath := filepath.Clean(path)
	if filepath.IsAbs(cleanPath) {
		cleanPath = cleanPath[1:]
	}
	return filepath.Join(f.baseDir, cleanPath)
}

func (f *TestFileSystem) sandboxPath(real string) string {
	rel, err := filepath.Rel(f.baseDir, real)
	if err != nil || strings.HasPrefix(rel, "..") {
		return real
	}
	return "/" + rel
}

func (f *TestFileSystem) failure(operation string, path string) error {
	if f.FailAll == operation || f.FailOn[filepath.Clean(path)] == operation {
		return fmt.Errorf("%s %s: injected failure", operation, path)
	}
	return nil
}

func (f *TestFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(f.resolvePath(path))
}

func (f *TestFileSystem) WriteFile(path string, content []byte, _ ports.AccessMode) error {
	if err := f.failure("WriteFile", path); err != nil {
		return err
	}
	resolved := f.resolvePath(path)
	if err := os.MkdirAll(filepath.Dir(resolved), 0700); err != nil {
		return err
	}
	return os.WriteFile(resolved, content, 0600)
}

func (f *TestFileSystem) EnsureDirExists(path string) error {
	return os.MkdirAll(filepath.Dir(f.resolvePath(path)), 0700)
}

func (f *TestFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Lstat(f.resolvePath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (f *TestFileSystem) IsDir(path string) (bool, error) {
	info, err := os.Stat(f.resolvePath(path))
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (f *TestFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(f.resolvePath(path), perm)
}

func (f *TestFileSystem) MkdirTemp(dir string, pattern string) (string, error) {
	if err := f.failure("MkdirTemp", dir); err != nil {
		return "", err
	}
	real, err := os.MkdirTemp(f.resolvePath(dir), pattern)
	if err != nil {
		return "", err
	}
	return f.sandboxPath(real), nil
}

func (f *TestFileSystem) CreateTemp(dir string, pattern string) (string, error) {
	if err := f.failure("CreateTemp", dir); err != nil {
		return "", err
	}
	file, err := os.CreateTemp(f.resolvePath(dir), pattern)
	if err != nil {
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", err
	}
	return f.sandboxPath(file.Name()), nil
}

func (f *TestFileSystem) CopyFile(src string, dst string) error {
	if err := f.failure("CopyFile", dst); err != nil {
		return err
	}
	in, err := os.Open(f.resolvePath(src))
	if err != nil {
		return err
	}
	defer in.Close()
	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(f.resolvePath(dst), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chmod(f.resolvePath(dst), info.Mode().Perm())
}

func (f *TestFileSystem) Rename(oldPath string, newPath string) error {
	if err := f.failure("Rename", newPath); err != nil {
		return err
	}
	if err := os.Rename(f.resolvePath(oldPath), f.resolvePath(newPath)); err != nil {
		return err
	}
	if entry, ok := f.ownership[filepath.Clean(oldPath)]; ok {
		f.ownership[filepath.Clean(newPath)] = entry
		delete(f.ownership, filepath.Clean(oldPath))
	}
	return nil
}

func (f *TestFileSystem) Chmod(path string, perm os.FileMode) error {
	if err := f.failure("Chmod", path); err != nil {
		return err
	}
	return os.Chmod(f.resolvePath(path), perm)
}

func (f *TestFileSystem) Chown(path string, owner string, group string) error {
	if err := f.failure("Chown", path); err != nil {
		return err
	}
	if _, err := os.Stat(f.resolvePath(path)); err != nil {
		return err
	}
	f.ownership[filepath.Clean(path)] = [2]string{owner, group}
	return nil
}

func (f *TestFileSystem) Remove(path string) error {
	if err := f.failure("Remove", path); err != nil {
		return err
	}
	return os.Remove(f.resolvePath(path))
}

func (f *TestFileSystem) RemoveAll(path string) error {
	if err := f.failure("RemoveAll", path); err != nil {
		return err
	}
	return os.RemoveAll(f.resolvePath(path))
}
