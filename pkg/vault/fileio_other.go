//go:build !linux && !darwin && !freebsd && !windows

package vault

import (
	"errors"
	"io/fs"
	"os"
)

func availableBytes(string) (uint64, error) {
	return 0, errors.ErrUnsupported
}

func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	defer d.Close()
	_ = d.Sync()
}

func groupOrOtherAccess(perm fs.FileMode) bool {
	return perm&0o077 != 0
}
