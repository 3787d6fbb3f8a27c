// Package main is the entry point for the kitchhub CLI.
package main

import (
	"os"

	"kitchhub/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
