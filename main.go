// Package main is the entry point for the pyunit CLI.
package main

import "pyunit.dev/pkg/pyunit/cmd"

func main() {
	cmd.Execute()
}
