package cli

import (
	"flag"
	"fmt"
	"os"
)

// ---- info ----
func runInfo(args []string) int {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	metaPath := fs.String("file", "", "path to split metadata JSON file (required)")
	_ = fs.Parse(args)

	if *metaPath == "" {
		fmt.Fprintf(os.Stderr, "--file is required\n")
		return 2
	}

	v, c, s, err := readMetadata(*metaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read --file: %v\n", err)
		return 2
	}

	fmt.Fprintf(os.Stdout, "shares (n): %d\n", len(v))
	fmt.Fprintf(os.Stdout, "needed (k): %d\n", len(c.Coefficients()))
	fmt.Fprintf(os.Stdout, "field width: %d bits\n", c.Modulus().BitWidth())
	fmt.Fprintf(os.Stdout, "secret indices (s): %v\n", s)
	return 0
}

const helpInfo = `# seedshard info

Display information about a split metadata file: the number of shares (n),
the number required to recover (k), the field width, and the secret
coefficient indices (s) — all without requiring any shares.

Arguments:
  --file <path>  path to split metadata JSON file (required)

Example:
  seedshard info --file split.json
`
