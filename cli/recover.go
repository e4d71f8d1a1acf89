package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/seedshard/seedshard/shamir"
)

// ---- recover ----
func runRecover(args []string) int {
	fs := flag.NewFlagSet("recover", flag.ExitOnError)
	metaPath := fs.String("file", "", "path to split metadata JSON file (required)")
	_ = fs.Parse(args)

	if *metaPath == "" {
		fmt.Fprintf(os.Stderr, "--file is required\n")
		return 2
	}
	shareMnemonics := fs.Args()
	if len(shareMnemonics) == 0 {
		fmt.Fprintf(os.Stderr, "provide one or more share mnemonics\n")
		return 2
	}

	v, c, s, err := readMetadata(*metaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read --file: %v\n", err)
		return 2
	}

	shares := make([]shamir.Share, len(shareMnemonics))
	for i, m := range shareMnemonics {
		fe, err := fieldElementFromMnemonic(m)
		if err != nil {
			fmt.Fprintf(os.Stderr, "share mnemonic %d: %v\n", i+1, err)
			return 2
		}
		shares[i] = fe
	}

	secrets, err := shamir.Recover(shares, v, c, s)
	if err != nil {
		var tooFew *shamir.TooFewValidSharesError
		if errors.As(err, &tooFew) {
			fmt.Fprintf(os.Stderr, "recover failed: only %d of %d required shares verified (%d rejected)\n",
				tooFew.Accepted, tooFew.Needed, len(tooFew.Rejected))
			return 1
		}
		fmt.Fprintf(os.Stderr, "recover failed: %v\n", err)
		return 1
	}

	for i, secret := range secrets {
		mn, err := mnemonicFromFieldElement(secret)
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode recovered secret %d: %v\n", i+1, err)
			return 2
		}
		fmt.Fprintln(os.Stdout, mn)
	}
	return 0
}

const helpRecover = `# seedshard recover

Reconstruct the secret mnemonic(s) from k or more share mnemonics. Shares
that fail verification are silently skipped; recovery fails once fewer than
k shares have been accepted.

Arguments:
  --file <path>  path to split metadata JSON file (required)

Example:
  seedshard recover --file split.json share1... share2... share3...
`
