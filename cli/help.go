package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// topHelp is the top-level usage banner (kept in sync with the subcommand
// help topics below).
const topHelp = `seedshard - verifiable BIP-39 mnemonic secret sharing

Usage:
  seedshard <command> [flags]

Commands:
  split    Split a secret mnemonic into n verifiable shares, k of which recover it
  verify   Check whether a share mnemonic belongs to a split
  recover  Reconstruct the secret mnemonic(s) from k or more shares
  info     Display information about a split metadata file
  version  Show the CLI build version
  help     Show help (general or for a command)

Run 'seedshard help <command>' for details.
`

// ---- help ----
func runHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stdout, topHelp)
		return 0
	}

	topic := args[0]
	if s, ok := lookupDoc(topic); ok {
		if _, err := io.Copy(os.Stdout, strings.NewReader(s)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write help: %v\n", err)
			return 2
		}
		if !strings.HasSuffix(s, "\n") {
			fmt.Fprintln(os.Stdout)
		}
		return 0
	}
	fmt.Fprint(os.Stdout, topHelp)
	return 0
}

// lookupDoc returns built-in help text for a command if present.
func lookupDoc(topic string) (string, bool) {
	switch topic {
	case "split":
		return helpSplit, true
	case "verify":
		return helpVerify, true
	case "recover":
		return helpRecover, true
	case "info":
		return helpInfo, true
	case "version":
		return helpVersion, true
	case "help":
		return helpHelp, true
	default:
		return "", false
	}
}

const helpHelp = `# seedshard help

Show general help or per-command help.

Usage:
  seedshard help
  seedshard help <command>
`
