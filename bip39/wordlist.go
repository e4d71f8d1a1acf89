package bip39

import (
	_ "embed"
	"fmt"
	"strings"
)

// english.txt is the canonical 2048-word BIP-0039 English wordlist,
// NFKD-normalized and sorted lexicographically, one word per line.
//
//go:embed english.txt
var englishWordlistTxt string

var wordlist []string

func init() {
	wordlist = strings.Split(strings.TrimSpace(englishWordlistTxt), "\n")
	if len(wordlist) != 2048 {
		panic(fmt.Sprintf("bip39: wordlist has %d entries, want 2048", len(wordlist)))
	}
	for i := 1; i < len(wordlist); i++ {
		if wordlist[i] <= wordlist[i-1] {
			panic(fmt.Sprintf("bip39: wordlist not sorted at index %d (%q <= %q)", i, wordlist[i], wordlist[i-1]))
		}
	}
}
