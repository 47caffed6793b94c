// Package main provides the entry point for the prefixdfa CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/milden6/prefixdfa/cmd/prefixdfa/commands"
)

func main() {
	err := commands.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
