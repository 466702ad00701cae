//go:build !unix && !windows

package adapter

func writable(string) bool {
	return true
}
