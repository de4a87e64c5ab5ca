// Package host reads disk, memory and load counters of the machine the bot runs on.
package host

import (
	"errors"
	"runtime"
)

var ErrUnsupported = errors.New("host stats are not supported on this platform")

type Stats struct {
	DiskTotal uint64
	DiskUsed  uint64
	DiskFree  uint64
	MemTotal  uint64
	MemUsed   uint64
	MemFree   uint64
	CPUs      int
	LoadAvg1m float64
}

type Reader struct {
	diskPath string

	statDisk   func(path string) (total, free uint64, err error)
	statMemory func() (total, free uint64, load float64, err error)
}

// NewReader creates a reader for the filesystem mounted at diskPath.
func NewReader(diskPath string) *Reader {
	return &Reader{
		diskPath:   diskPath,
		statDisk:   statDisk,
		statMemory: statMemory,
	}
}

func (r *Reader) Read() (Stats, error) {
	diskTotal, diskFree, err := r.statDisk(r.diskPath)
	if err != nil {
		return Stats{}, err
	}
	memTotal, memFree, load, err := r.statMemory()
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		DiskTotal: diskTotal,
		DiskUsed:  usedOf(diskTotal, diskFree),
		DiskFree:  diskFree,
		MemTotal:  memTotal,
		MemUsed:   usedOf(memTotal, memFree),
		MemFree:   memFree,
		CPUs:      runtime.NumCPU(),
		LoadAvg1m: load,
	}, nil
}

func usedOf(total, free uint64) uint64 {
	if free > total {
		return 0
	}
	return total - free
}
