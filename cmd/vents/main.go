// vents counts the lattice points where hydrothermal vent lines overlap.
//
// Run: go run ./cmd/vents count --example
package main

import (
	"fmt"
	"os"

	"github.com/wesen/vents/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
