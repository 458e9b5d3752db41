// Package main provides the campus command-line tool.
package main

import (
	"os"

	"github.com/danishazizi96/campus/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
