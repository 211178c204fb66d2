// Package main is the entry point for the buildsh CLI application.
package main

import (
	"github.com/wellmaintained/buildsh/cmd"
)

var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		cmd.ExitOnError(err)
	}
}
