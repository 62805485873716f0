//go:build windows

package vault

import (
	"io/fs"

	"golang.org/x/sys/windows"
)

// availableBytes returns the space available to the calling user on the
// volume holding dir.
func availableBytes(dir string) (uint64, error) {
	dirPtr, err := windows.UTF16PtrFromString(dir)
	if err != nil {
		return 0, err
	}

	var freeBytesAvailable, totalBytes, totalFreeBytes uint64
	if err := windows.GetDiskFreeSpaceEx(dirPtr, &freeBytesAvailable, &totalBytes, &totalFreeBytes); err != nil {
		return 0, err
	}
	return freeBytesAvailable, nil
}

// syncDir is a no-op: ReplaceFile already moves with MOVEFILE_WRITE_THROUGH.
func syncDir(string) {}

// NTFS ACLs do not map onto unix permission bits.
func groupOrOtherAccess(fs.FileMode) bool {
	return false
}
