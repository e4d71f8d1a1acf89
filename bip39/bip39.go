// Package bip39 implements the BIP-0039 mnemonic codec: encoding entropy
// bytes into a sequence of words from the 2048-word English list with a
// SHA-256-derived checksum, and decoding them back, tolerating truncated
// words down to their unique four-letter prefix.
package bip39

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrInvalidLength is returned when entropy, decoded bytes, or a mnemonic's
// word count don't match one of the supported BIP-0039 sizes.
var ErrInvalidLength = errors.New("bip39: invalid length")

// ErrInvalidWord is returned by Decode when a mnemonic token matches no
// wordlist entry, exactly or by unique prefix.
var ErrInvalidWord = errors.New("bip39: word not found in wordlist")

// ErrAmbiguousWord is returned by Decode when a mnemonic token is a proper
// prefix of two or more wordlist entries.
var ErrAmbiguousWord = errors.New("bip39: word is an ambiguous prefix")

// ErrBadChecksum is returned by Decode when the recomputed checksum does
// not match the one embedded in the mnemonic.
var ErrBadChecksum = errors.New("bip39: checksum mismatch")

// ErrBadSeparator is returned by Encode when sep does not NFKD-normalize to
// a single ASCII space.
var ErrBadSeparator = errors.New("bip39: separator must normalize to a single space")

// validEntropyLengths are the supported entropy byte lengths (128-256 bits).
var validEntropyLengths = map[int]bool{16: true, 20: true, 24: true, 28: true, 32: true}

// validWordCounts are the mnemonic lengths corresponding to validEntropyLengths.
var validWordCounts = map[int]bool{12: true, 15: true, 18: true, 21: true, 24: true}

const indexBits = 11

var bigOne = big.NewInt(1)

// Encode converts entropy into a BIP-0039 mnemonic string, words joined by
// sep. len(entropy) must be one of {16,20,24,28,32} bytes, or Encode fails
// with ErrInvalidLength; sep must NFKD-normalize to a single ASCII space,
// or Encode fails with ErrBadSeparator.
func Encode(entropy []byte, sep string) (string, error) {
	if !validEntropyLengths[len(entropy)] {
		return "", fmt.Errorf("%w: entropy length %d", ErrInvalidLength, len(entropy))
	}
	if norm.NFKD.String(sep) != " " {
		return "", ErrBadSeparator
	}

	bitsEntropy := len(entropy) * 8
	bitsChecksum := bitsEntropy / 32
	checksum := topChecksumBits(entropy, bitsChecksum)

	value := new(big.Int).SetBytes(entropy)
	value.Lsh(value, uint(bitsChecksum))
	value.Or(value, checksum)

	wordCount := (bitsEntropy + bitsChecksum) / indexBits
	words := make([]string, wordCount)
	mask := big.NewInt(1<<indexBits - 1)
	idx := new(big.Int)
	for i := wordCount - 1; i >= 0; i-- {
		idx.And(value, mask)
		words[i] = wordAt(int(idx.Int64()))
		value.Rsh(value, indexBits)
	}

	return strings.Join(words, sep), nil
}

// Decode converts a BIP-0039 mnemonic string back into entropy bytes. The
// input is NFKD-normalized and split on ASCII spaces; each token must
// exactly match a wordlist entry or be a prefix of exactly one (rationale:
// BIP-0039's first-four-letters-unique property permits truncated input).
// Word count must be one of {12,15,18,21,24}, or Decode fails with
// ErrInvalidLength; the recomputed checksum must match the trailing bits,
// or Decode fails with ErrBadChecksum.
func Decode(mnemonic string) ([]byte, error) {
	normalized := norm.NFKD.String(mnemonic)
	tokens := strings.Split(strings.TrimSpace(normalized), " ")
	if len(tokens) == 1 && tokens[0] == "" {
		tokens = nil
	}
	if !validWordCounts[len(tokens)] {
		return nil, fmt.Errorf("%w: word count %d", ErrInvalidLength, len(tokens))
	}

	value := new(big.Int)
	for _, token := range tokens {
		index, err := resolveWord(token)
		if err != nil {
			return nil, err
		}
		value.Lsh(value, indexBits)
		value.Or(value, big.NewInt(int64(index)))
	}

	totalBits := len(tokens) * indexBits
	bitsEntropy := totalBits * 32 / 33
	bitsChecksum := totalBits - bitsEntropy

	checksumMask := new(big.Int).Lsh(bigOne, uint(bitsChecksum))
	checksumMask.Sub(checksumMask, bigOne)
	claimedChecksum := new(big.Int).And(value, checksumMask)

	entropyInt := new(big.Int).Rsh(value, uint(bitsChecksum))
	entropy := padLeft(entropyInt.Bytes(), bitsEntropy/8)

	if claimedChecksum.Cmp(topChecksumBits(entropy, bitsChecksum)) != 0 {
		return nil, ErrBadChecksum
	}
	return entropy, nil
}

// topChecksumBits returns the first numBits bits of SHA-256(data), as an
// integer.
func topChecksumBits(data []byte, numBits int) *big.Int {
	hash := sha256.Sum256(data)
	const hashBits = sha256.Size * 8
	checksum := new(big.Int).SetBytes(hash[:])
	return checksum.Rsh(checksum, uint(hashBits-numBits))
}

// padLeft zero-pads b on the left to exactly width bytes.
func padLeft(b []byte, width int) []byte {
	if len(b) >= width {
		return b
	}
	out := make([]byte, width)
	copy(out[width-len(b):], b)
	return out
}

// resolveWord looks up token in the sorted wordlist: an exact match wins
// outright; otherwise token must be a non-empty proper prefix of exactly
// one entry.
func resolveWord(token string) (int, error) {
	if token == "" {
		return 0, ErrInvalidWord
	}
	lo := sort.SearchStrings(wordlist, token)
	if lo < len(wordlist) && wordlist[lo] == token {
		return lo, nil
	}

	hi := lo
	for hi < len(wordlist) && strings.HasPrefix(wordlist[hi], token) {
		hi++
	}
	switch hi - lo {
	case 0:
		return 0, fmt.Errorf("%w: %q", ErrInvalidWord, token)
	case 1:
		return lo, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrAmbiguousWord, token)
	}
}

// wordAt returns the wordlist entry at index i.
func wordAt(i int) string {
	return wordlist[i]
}
