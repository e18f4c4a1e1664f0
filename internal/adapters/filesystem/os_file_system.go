package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"syscall"

	"vpsup/internal/ports"
)

type OsFileSystem struct{}

func ProvideOsFileSystem() *OsFileSystem {
	return &OsFileSystem{}
}

var _ ports.FileSystem = (*OsFileSystem)(nil)

func expandHome(path string) (string, error) {
	if len(path) > 0 && path[:1] == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

func (f *OsFileSystem) ReadFile(path string) ([]byte, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (f *OsFileSystem) WriteFile(path string, content []byte, accessMode ports.AccessMode) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}

	err = f.EnsureDirExists(path)
	if err != nil {
		return fmt.Errorf("failed to ensure directory exists: %w", err)
	}

	if err := os.WriteFile(path, content, getOsFileModeForAccessMode(accessMode)); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (f *OsFileSystem) EnsureDirExists(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), getOsFileModeForAccessMode(ports.ReadWriteExecute)); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	return nil
}

func (f *OsFileSystem) FileExists(path string) (bool, error) {
	path, err := expandHome(path)
	if err != nil {
		return false, err
	}

	_, err = os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists: %w", err)
}

func (f *OsFileSystem) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}

func (f *OsFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (f *OsFileSystem) MkdirTemp(dir string, pattern string) (string, error) {
	return os.MkdirTemp(dir, pattern)
}

func (f *OsFileSystem) CreateTemp(dir string, pattern string) (string, error) {
	file, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", err
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(file.Name())
		return "", err
	}
	return file.Name(), nil
}

func (f *OsFileSystem) CopyFile(src string, dst string) error {
	return copyFile(src, dst)
}

func (f *OsFileSystem) Rename(oldPath string, newPath string) error {
	return os.Rename(oldPath, newPath)
}

func (f *OsFileSystem) Chmod(path string, perm os.FileMode) error {
	return os.Chmod(path, perm)
}

func (f *OsFileSystem) Chown(path string, owner string, group string) error {
	uid, err := lookupUserID(owner)
	if err != nil {
		return err
	}
	gid, err := lookupGroupID(group)
	if err != nil {
		return err
	}
	return os.Chown(path, uid, gid)
}

func (f *OsFileSystem) Remove(path string) error {
	return os.Remove(path)
}

func (f *OsFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// copyFile copies src to dst keeping the permission bits, owner and group of src.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
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
	// OpenFile only applies the mode when creating, and only through the umask.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return copyOwnership(info, dst)
}

func copyOwnership(srcInfo os.FileInfo, dst string) error {
	srcStat, ok := srcInfo.Sys().(*syscall.Stat_t)
	if !ok {
		return nil
	}
	dstInfo, err := os.Stat(dst)
	if err != nil {
		return err
	}
	if dstStat, ok := dstInfo.Sys().(*syscall.Stat_t); ok && dstStat.Uid == srcStat.Uid && dstStat.Gid == srcStat.Gid {
		return nil
	}
	return os.Chown(dst, int(srcStat.Uid), int(srcStat.Gid))
}

func lookupUserID(owner string) (int, error) {
	u, err := user.Lookup(owner)
	if err == nil {
		return strconv.Atoi(u.Uid)
	}
	if id, convErr := strconv.Atoi(owner); convErr == nil {
		return id, nil
	}
	var unknown user.UnknownUserError
	if errors.As(err, &unknown) {
		return 0, fmt.Errorf("unknown user '%s'", owner)
	}
	return 0, fmt.Errorf("failed to look up user '%s': %w", owner, err)
}

func lookupGroupID(group string) (int, error) {
	g, err := user.LookupGroup(group)
	if err == nil {
		return strconv.Atoi(g.Gid)
	}
	if id, convErr := strconv.Atoi(group); convErr == nil {
		return id, nil
	}
	var unknown user.UnknownGroupError
	if errors.As(err, &unknown) {
		return 0, fmt.Errorf("unknown group '%s'", group)
	}
	return 0, fmt.Errorf("failed to look up group '%s': %w", group, err)
}

func getOsFileModeForAccessMode(accessMode ports.AccessMode) os.FileMode {
	switch accessMode {
	case ports.ReadWrite:
		return 0600
	case ports.ReadWriteExecute:
		return 0700
	case ports.ReadAllWriteOwner:
		return 0644
	default:
		return 0600
	}
}
