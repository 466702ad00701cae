//go:build !linux && !darwin && !windows

package adapter

import "errors"

func volumeSpace(string) (uint64, uint64, error) {
	return 0, 0, errors.New("volume statistics are not supported on this platform")
}
