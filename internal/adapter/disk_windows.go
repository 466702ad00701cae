//go:build windows

package adapter

import "golang.org/x/sys/windows"

func volumeSpace(path string) (uint64, uint64, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, 0, err
	}

	var available, total, free uint64
	if err := windows.GetDiskFreeSpaceEx(p, &available, &total, &free); err != nil {
		return 0, 0, err
	}

	return total, available, nil
}
