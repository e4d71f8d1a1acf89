// Command seedshard is the CLI front end for splitting and recovering
// BIP-0039 mnemonics via verifiable Shamir secret sharing.
package main

import "github.com/seedshard/seedshard/cli"

func main() {
	cli.Main()
}
