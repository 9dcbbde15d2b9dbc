// Package main provides the entry point for the oba configuration CLI.
package main

import "os"

func main() {
	cmd := newRootCmd()
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
