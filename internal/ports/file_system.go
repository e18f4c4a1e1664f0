package ports

import "os"

type AccessMode int

const (
	ReadWrite = iota
	ReadWriteExecute
	ReadAllWriteOwner
)

type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte, accessMode AccessMode) error
	EnsureDirExists(path string) error
	FileExists(path string) (bool, error)
	// IsDir returns false without error when path does not exist.
	IsDir(path string) (bool, error)
	MkdirAll(path string, perm os.FileMode) error
	// MkdirTemp and CreateTemp return the path of the created entry.
	MkdirTemp(dir string, pattern string) (string, error)
	CreateTemp(dir string, pattern string) (string, error)
	// CopyFile copies content and permission bits, replacing dst.
	CopyFile(src string, dst string) error
	Rename(oldPath string, newPath string) error
	Chmod(path string, perm os.FileMode) error
	// Chown accepts user and group names or numeric ids.
	Chown(path string, owner string, group string) error
	Remove(path string) error
	RemoveAll(path string) error
}
