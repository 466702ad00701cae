//go:build windows

package adapter

import "golang.org/x/sys/windows"

func writable(path string) bool {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}

	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false
	}

	return attrs&windows.FILE_ATTRIBUTE_READONLY == 0
}
