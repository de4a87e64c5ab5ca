//go:build linux

package host

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// SI_LOAD_SHIFT from sysinfo(2).
const loadScale = 1 << 16

func statDisk(path string) (uint64, uint64, error) {
	var fs unix.Statfs_t
	if err := unix.Statfs(path, &fs); err != nil {
		return 0, 0, fmt.Errorf("statfs %s: %w", path, err)
	}

	bsize := uint64(fs.Bsize) //nolint:gosec // block size is never negative
	return fs.Blocks * bsize, fs.Bfree * bsize, nil
}

func statMemory() (uint64, uint64, float64, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, 0, 0, fmt.Errorf("sysinfo: %w", err)
	}

	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}
	return uint64(info.Totalram) * unit, uint64(info.Freeram) * unit, float64(info.Loads[0]) / loadScale, nil
}
