// Package main provides the tnqecc CLI.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/tnqecc/internal/cli"
)

var version = "v0.1.0-dev"

func main() {
	rootCmd := cli.NewRootCmd(version)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
