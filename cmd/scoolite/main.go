// Package main provides the CLI for scoolite.
package main

import (
	"os"

	"github.com/otaviopace/scoolite/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
