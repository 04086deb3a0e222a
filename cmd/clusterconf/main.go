// Package main is the entry point for the clusterconf command-line client.
package main

import (
	"os"

	"github.com/jsamuelsen11/clusterconf/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:]))
}
