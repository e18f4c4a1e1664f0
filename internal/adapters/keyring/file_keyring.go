package keyring

import (
	"fmt"
	"path/filepath"
	"strings"

	"vpsup/internal/ports"
)

// DefaultKeyDir holds key files on hosts without a keyring daemon.
const DefaultKeyDir = "/etc/vpsup/keys"

var _ ports.Keyring = (*FileKeyring)(nil)

// FileKeyring keeps each key in its own 0600 file.
type FileKeyring struct {
	fileSystem ports.FileSystem
	dir        string
}

func ProvideFileKeyring(fileSystem ports.FileSystem) *FileKeyring {
	return NewFileKeyring(fileSystem, DefaultKeyDir)
}

func NewFileKeyring(fileSystem ports.FileSystem, dir string) *FileKeyring {
	return &FileKeyring{fileSystem: fileSystem, dir: dir}
}

func (f *FileKeyring) keyPath(keyName string) (string, error) {
	if keyName == "" || strings.ContainsAny(keyName, `/\`) || keyName == "." || keyName == ".." {
		return "", fmt.Errorf("invalid key name '%s'", keyName)
	}
	return filepath.Join(f.dir, keyName), nil
}

func (f *FileKeyring) GetKey(keyName string) (string, error) {
	path, err := f.keyPath(keyName)
	if err != nil {
		return "", err
	}
	data, err := f.fileSystem.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read key %s: %w", keyName, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (f *FileKeyring) SetKey(keyName string, keyValue string) error {
	path, err := f.keyPath(keyName)
	if err != nil {
		return err
	}
	return f.fileSystem.WriteFile(path, []byte(keyValue), ports.ReadWrite)
}

func (f *FileKeyring) HasKey(keyName string) (bool, error) {
	path, err := f.keyPath(keyName)
	if err != nil {
		return false, err
	}
	return f.fileSystem.FileExists(path)
}
