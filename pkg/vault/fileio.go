package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

const (
	FileMode = 0600 // Owner read/write only

	// MinDiskSpaceBytes is the free space required on top of the payload
	// before a write is attempted.
	MinDiskSpaceBytes = 1024 * 1024
)

// ReadFile reads the whole vault file. A missing file is ErrVaultNotFound;
// any other failure wraps ErrIO.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrVaultNotFound
		}
		return nil, fmt.Errorf("%w: reading %s: %w", ErrIO, path, err)
	}
	return data, nil
}

// WriteAtomic replaces path with data. The bytes go to a sibling temp file
// (mode 0600) that is fsynced and closed before a rename makes it visible,
// so readers see either the old file or the new one. If anything fails
// before the rename the old file is untouched and the temp file is removed.
func WriteAtomic(path string, data []byte) error {
	tmp, err := stageTemp(path, data)
	if err != nil {
		return err
	}
	if err := atomic.ReplaceFile(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: replacing %s: %w", ErrIO, path, err)
	}
	syncDir(filepath.Dir(path))
	return nil
}

// WriteNew is WriteAtomic for a file that must not exist yet. The commit is
// a hard link, which fails instead of clobbering a file created after the
// caller's existence check; ErrVaultAlreadyExists is returned in that case.
func WriteNew(path string, data []byte) error {
	tmp, err := stageTemp(path, data)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)

	if err := os.Link(tmp, path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrVaultAlreadyExists
		}
		// Filesystems without hard links: fall back to a checked rename.
		if _, statErr := os.Lstat(path); statErr == nil {
			return ErrVaultAlreadyExists
		}
		if err := os.Rename(tmp, path); err != nil {
			return fmt.Errorf("%w: creating %s: %w", ErrIO, path, err)
		}
	}
	syncDir(filepath.Dir(path))
	return nil
}

// stageTemp writes data to a fresh temp file next to path and returns its
// name. Nothing at path changes.
func stageTemp(path string, data []byte) (string, error) {
	dir := filepath.Dir(path)
	if err := checkDiskSpace(dir, uint64(len(data))); err != nil {
		return "", err
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("%w: creating temp file: %w", ErrIO, err)
	}
	name := f.Name()

	success := false
	defer func() {
		if !success {
			f.Close()
			os.Remove(name)
		}
	}()

	if err := f.Chmod(FileMode); err != nil {
		return "", fmt.Errorf("%w: setting temp file permissions: %w", ErrIO, err)
	}
	if _, err := f.Write(data); err != nil {
		return "", fmt.Errorf("%w: writing vault data: %w", ErrIO, err)
	}
	if err := f.Sync(); err != nil {
		return "", fmt.Errorf("%w: fsyncing vault data: %w", ErrIO, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: closing temp file: %w", ErrIO, err)
	}

	success = true
	return name, nil
}

// checkDiskSpace refuses a write that would leave less than
// MinDiskSpaceBytes free. Platforms without disk stats are not checked.
func checkDiskSpace(dir string, need uint64) error {
	available, err := availableBytes(dir)
	if err != nil {
		return nil
	}
	if available < need+MinDiskSpaceBytes {
		return fmt.Errorf("%w: %w: only %d bytes available, need at least %d",
			ErrIO, ErrInsufficientDisk, available, need+MinDiskSpaceBytes)
	}
	return nil
}

// permissionsTooOpen reports whether the file at path is readable or
// writable by anyone but its owner.
func permissionsTooOpen(path string) (fs.FileMode, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, false
	}
	perm := info.Mode().Perm()
	return perm, groupOrOtherAccess(perm)
}
