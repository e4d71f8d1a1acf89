package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/seedshard/seedshard/shamir"
)

// ---- verify ----
func runVerify(args []string) int {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	metaPath := fs.String("file", "", "path to split metadata JSON file (required)")
	_ = fs.Parse(args)

	if *metaPath == "" {
		fmt.Fprintf(os.Stderr, "--file is required\n")
		return 2
	}
	rest := fs.Args()
	if len(rest) != 1 {
		fmt.Fprintf(os.Stderr, "provide exactly one share mnemonic\n")
		return 2
	}

	v, c, _, err := readMetadata(*metaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read --file: %v\n", err)
		return 2
	}

	share, err := fieldElementFromMnemonic(rest[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "share mnemonic: %v\n", err)
		return 2
	}

	x := shamir.Verify(share, v, c)
	if x == 0 {
		fmt.Fprintln(os.Stdout, "INVALID")
		return 1
	}
	fmt.Fprintf(os.Stdout, "VALID (share %d)\n", x)
	return 0
}

const helpVerify = `# seedshard verify

Check whether a share mnemonic belongs to a split, without needing any
other share or the secret. Prints VALID (share <x>), where x is the share's
index, and exits 0, or prints INVALID and exits 1.

Arguments:
  --file <path>  path to split metadata JSON file (required)

Example:
  seedshard verify --file split.json "abandon abandon ... about"
`
