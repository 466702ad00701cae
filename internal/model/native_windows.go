//go:build windows

package model

// NativeUnit is the code unit the host uses for paths.
type NativeUnit = uint16
