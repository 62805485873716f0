//go:build linux || darwin || freebsd

package vault

import (
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

// availableBytes returns the space available to unprivileged users on the
// filesystem holding dir.
func availableBytes(dir string) (uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(dir, &stat); err != nil {
		return 0, err
	}
	return uint64(stat.Bavail) * uint64(stat.Bsize), nil
}

// syncDir flushes the directory entry created by a rename. Some
// filesystems reject fsync on directories; the rename has already happened
// by then, so errors are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	defer d.Close()
	_ = unix.Fsync(int(d.Fd()))
}

func groupOrOtherAccess(perm fs.FileMode) bool {
	return perm&0o077 != 0
}
