//go:build !linux

package host

func statDisk(string) (uint64, uint64, error) {
	return 0, 0, ErrUnsupported
}

func statMemory() (uint64, uint64, float64, error) {
	return 0, 0, 0, ErrUnsupported
}
