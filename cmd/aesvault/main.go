// Package main provides the aesvault CLI application.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/awnumar/memguard"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	// Wipe locked buffers on SIGINT/SIGTERM and on normal exit.
	memguard.CatchInterrupt()
	defer memguard.Purge()

	return run(os.Args[1:], os.Stdout, os.Stderr, nil)
}

// run executes one command line and returns the process exit code. Every
// failure is reported as a single "Error: ..." line on stderr.
func run(args []string, stdout, stderr io.Writer, secrets secretReader) int {
	a := &app{secrets: secrets}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", describeError(err, a.cfg.VaultPath))
		return 1
	}
	return 0
}
