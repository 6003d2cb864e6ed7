// Package main is the entry point for the slcsp CLI.
package main

import (
	"os"

	"slcsp/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
