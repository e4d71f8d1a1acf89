// Package cli implements the seedshard command-line front end: subcommand
// dispatch, flag parsing, and the split-metadata JSON file format, over the
// bip39/gf/shamir core packages. This layer is intentionally thin; all
// cryptographic logic lives in the core packages it calls.
package cli

import (
	"fmt"
	"os"
)

// Main is the CLI entrypoint used by the seedshard binary.
func Main() {
	os.Exit(Run(os.Args[1:]))
}

// Run executes the CLI with the provided arguments and returns the exit code.
func Run(args []string) int {
	if len(args) < 1 {
		fmt.Fprint(os.Stdout, topHelp)
		return 0
	}

	cmd := args[0]
	remain := args[1:]
	switch cmd {
	case "split":
		return runSplit(remain)
	case "verify":
		return runVerify(remain)
	case "recover":
		return runRecover(remain)
	case "info":
		return runInfo(remain)
	case "version":
		return runVersion(remain)
	case "help", "-h", "--help":
		return runHelp(remain)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		fmt.Fprint(os.Stderr, topHelp)
		return 2
	}
}
