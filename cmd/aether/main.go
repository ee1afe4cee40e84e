// Package main provides the aether CLI.
package main

import (
	"os"

	"github.com/mesh-intelligence/aether/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
