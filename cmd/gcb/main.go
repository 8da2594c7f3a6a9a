// Package main implements the go-cfg-bench CLI (gcb). It generates
// synthetic control flow graph benchmarks and inspects generated artifacts.
package main

import (
	"os"

	"github.com/l3aro/go-cfg-bench/cmd/gcb/commands"
)

var version = "dev"

func main() {
	commands.RootCmd.Version = version
	commands.RootCmd.SetVersionTemplate(`gcb version {{.Version}}
`)
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
