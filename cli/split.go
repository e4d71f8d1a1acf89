package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/seedshard/seedshard/gf"
	"github.com/seedshard/seedshard/shamir"
)

// ---- split ----
func runSplit(args []string) int {
	fs := flag.NewFlagSet("split", flag.ExitOnError)
	shares := fs.Int("shares", 0, "total number of shares to produce (n)")
	needed := fs.Int("needed", 0, "number of shares required to recover (k)")
	salt := fs.Int64("salt", 0, "salt perturbing the deterministic coefficient derivation")
	out := fs.String("file", "", "write split metadata JSON to this path (required)")
	_ = fs.Parse(args)

	secretMnemonics := fs.Args()
	if len(secretMnemonics) != 1 && len(secretMnemonics) != 2 {
		fmt.Fprintf(os.Stderr, "provide one or two secret mnemonics\n")
		return 2
	}
	if *shares <= 0 || *needed <= 0 {
		fmt.Fprintf(os.Stderr, "--shares and --needed are required and must be positive\n")
		return 2
	}
	if *out == "" {
		fmt.Fprintf(os.Stderr, "--file is required\n")
		return 2
	}

	secret := make([]gf.FieldElement, len(secretMnemonics))
	for i, m := range secretMnemonics {
		fe, err := fieldElementFromMnemonic(m)
		if err != nil {
			fmt.Fprintf(os.Stderr, "secret mnemonic %d: %v\n", i+1, err)
			return 2
		}
		if i > 0 && !fe.Modulus().Equal(secret[0].Modulus()) {
			fmt.Fprintf(os.Stderr, "secret mnemonics must have the same entropy width\n")
			return 2
		}
		secret[i] = fe
	}

	result, err := shamir.Split(secret, *needed, *shares, *salt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "split failed: %v\n", err)
		return 2
	}

	shareMnemonics := make([]string, len(result.Shares))
	for i, sh := range result.Shares {
		mn, err := mnemonicFromFieldElement(sh)
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode share %d: %v\n", i+1, err)
			return 2
		}
		shareMnemonics[i] = mn
	}

	if err := writeMetadata(*out, result.V, result.C, result.S); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", *out, err)
		return 2
	}

	for i, mn := range shareMnemonics {
		fmt.Fprintf(os.Stdout, "share %d: %s\n", i+1, mn)
	}
	return 0
}

const helpSplit = `# seedshard split

Split a secret mnemonic into n verifiable shares, k of which recover it.
A second secret mnemonic may be given; it is smuggled into the same split
at no extra cost to the security of the first.

Arguments:
  --shares <n>   total number of shares to produce (required)
  --needed <k>   number of shares required to recover (required)
  --salt <n>     integer salt perturbing coefficient derivation (default 0)
  --file <path>  write split metadata JSON to this path (required)

Examples:
  seedshard split --shares 5 --needed 3 --file split.json "abandon abandon ... about"
  seedshard split --shares 5 --needed 3 --salt 7 --file split.json secret1... secret2...
`
