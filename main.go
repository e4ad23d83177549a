// Package main is the entry point for the Jiraffe CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/jiraffe/jiraffe/cmd"
	"github.com/jiraffe/jiraffe/internal/logging"
)

// main is the entry point of the application.
// It executes the root command and handles any errors that occur.
func main() {
	if err := cmd.Execute(); err != nil {
		logging.Error("command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
