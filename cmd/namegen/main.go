// Package main is the entry point for namegen, which prints a random
// human-readable name rendered from a format template.
package main

import (
	"fmt"
	"os"

	"github.com/concave-dev/namegen/cmd/namegen/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "namegen: %v\n", err)
		os.Exit(1)
	}
}
