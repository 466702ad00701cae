// Package main is the entry point for the river-dreams prompt renderer.
package main

import "riverdreams.dev/pkg/riverdreams/cmd"

func main() {
	cmd.Execute()
}
