package bip39

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

// trezorVectors are the full Trezor/python-mnemonic BIP-0039 English test
// vectors: https://github.com/trezor/python-mnemonic/blob/master/vectors.json
var trezorVectors = []struct {
	entropy  string
	mnemonic string
}{
	{"00000000000000000000000000000000", "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"},
	{"7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f", "legal winner thank year wave sausage worth useful legal winner thank yellow"},
	{"80808080808080808080808080808080", "letter advice cage absurd amount doctor acoustic avoid letter advice cage above"},
	{"ffffffffffffffffffffffffffffffff", "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong"},
	{"000000000000000000000000000000000000000000000000", "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon agent"},
	{"7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f", "legal winner thank year wave sausage worth useful legal winner thank year wave sausage worth useful legal will"},
	{"808080808080808080808080808080808080808080808080", "letter advice cage absurd amount doctor acoustic avoid letter advice cage absurd amount doctor acoustic avoid letter always"},
	{"ffffffffffffffffffffffffffffffffffffffffffffffff", "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo when"},
	{"0000000000000000000000000000000000000000000000000000000000000000", "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"},
	{"7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f", "legal winner thank year wave sausage worth useful legal winner thank year wave sausage worth useful legal winner thank year wave sausage worth title"},
	{"8080808080808080808080808080808080808080808080808080808080808080", "letter advice cage absurd amount doctor acoustic avoid letter advice cage absurd amount doctor acoustic avoid letter advice cage absurd amount doctor acoustic bless"},
	{"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo vote"},
	{"9e885d952ad362caeb4efe34a8e91bd2", "ozone drill grab fiber curtain grace pudding thank cruise elder eight picnic"},
	{"6610b25967cdcca9d59875f5cb50b0ea75433311869e930b", "gravity machine north sort system female filter attitude volume fold club stay feature office ecology stable narrow fog"},
	{"68a79eaca2324873eacc50cb9c6eca8cc68ea5d936f98787c60c7ebc74e6ce7c", "hamster diagram private dutch cause delay private meat slide toddler razor book happy fancy gospel tennis maple dilemma loan word shrug inflict delay length"},
	{"c0ba5a8e914111210f2bd131f3d5e08d", "scheme spot photo card baby mountain device kick cradle pact join borrow"},
	{"6d9be1ee6ebd27a258115aad99b7317b9c8d28b6d76431c3", "horn tenant knee talent sponsor spell gate clip pulse soap slush warm silver nephew swap uncle crack brave"},
	{"9f6a2878b2520799a44ef18bc7df394e7061a224d2c33cd015b157d746869863", "panda eyebrow bullet gorilla call smoke muffin taste mesh discover soft ostrich alcohol speed nation flash devote level hobby quick inner drive ghost inside"},
	{"23db8160a31d3e0dca3688ed941adbf3", "cat swing flag economy stadium alone churn speed unique patch report train"},
	{"8197a4a47f0425faeaa69deebc05ca29c0a5b5cc76ceacc0", "light rule cinnamon wrap drastic word pride squirrel upgrade then income fatal apart sustain crack supply proud access"},
	{"066dca1a2bb7e8a1db2832148ce9933eea0f3ac9548d793112d9a95c9407efad", "all hour make first leader extend hole alien behind guard gospel lava path output census museum junior mass reopen famous sing advance salt reform"},
	{"f30f8c1da665478f49b001d94c5fc452", "vessel ladder alter error federal sibling chat ability sun glass valve picture"},
	{"c10ec20dc3cd9f652c7fac2f1230f7a3c828389a14392f05", "scissors invite lock maple supreme raw rapid void congress muscle digital elegant little brisk hair mango congress clump"},
	{"f585c11aec520db57dd353c69554b21a89b20fb0650966fa0a9d6f74fd989d8f", "void come effort suffer camp survey warrior heavy shoot primary clutch crush open amazing screen patrol group space point ten exist slush involve unfold"},
}

func TestTrezorVectorsEncode(t *testing.T) {
	for _, v := range trezorVectors {
		entropy, err := hex.DecodeString(v.entropy)
		if err != nil {
			t.Fatalf("bad test vector hex %q: %v", v.entropy, err)
		}
		got, err := Encode(entropy, " ")
		if err != nil {
			t.Fatalf("Encode(%s): %v", v.entropy, err)
		}
		if got != v.mnemonic {
			t.Fatalf("Encode(%s) = %q, want %q", v.entropy, got, v.mnemonic)
		}
	}
}

func TestTrezorVectorsDecode(t *testing.T) {
	for _, v := range trezorVectors {
		want, err := hex.DecodeString(v.entropy)
		if err != nil {
			t.Fatalf("bad test vector hex %q: %v", v.entropy, err)
		}
		got, err := Decode(v.mnemonic)
		if err != nil {
			t.Fatalf("Decode(%q): %v", v.mnemonic, err)
		}
		if !equalBytes(got, want) {
			t.Fatalf("Decode(%q) = %x, want %x", v.mnemonic, got, want)
		}
	}
}

func TestDecodeZeroVector(t *testing.T) {
	entropy, err := Decode("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := make([]byte, 16)
	if !equalBytes(entropy, want) {
		t.Fatalf("Decode zero vector = %x, want all-zero", entropy)
	}
}

func TestEncodeZeroVector(t *testing.T) {
	got, err := Encode(make([]byte, 16), " ")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	if got != want {
		t.Fatalf("Encode zero vector = %q, want %q", got, want)
	}
}

// TestCodecRoundTrip is spec.md §8 Testable Property 1: for every supported
// entropy length, decode(encode(entropy)) == entropy.
func TestCodecRoundTrip(t *testing.T) {
	for _, length := range []int{16, 20, 24, 28, 32} {
		entropy := make([]byte, length)
		if _, err := rand.Read(entropy); err != nil {
			t.Fatalf("rand.Read: %v", err)
		}
		mnemonic, err := Encode(entropy, " ")
		if err != nil {
			t.Fatalf("Encode(len=%d): %v", length, err)
		}
		got, err := Decode(mnemonic)
		if err != nil {
			t.Fatalf("Decode(%q): %v", mnemonic, err)
		}
		if !equalBytes(got, entropy) {
			t.Fatalf("round trip length %d: got %x, want %x", length, got, entropy)
		}
	}
}

// TestCodecPrefixTolerance is spec.md §8 Testable Property 2: replacing
// each word by its first 4 characters still decodes correctly.
func TestCodecPrefixTolerance(t *testing.T) {
	for _, v := range trezorVectors {
		words := strings.Split(v.mnemonic, " ")
		truncated := make([]string, len(words))
		for i, w := range words {
			if len(w) > 4 {
				truncated[i] = w[:4]
			} else {
				truncated[i] = w
			}
		}
		want, err := hex.DecodeString(v.entropy)
		if err != nil {
			t.Fatalf("bad test vector hex: %v", err)
		}
		got, err := Decode(strings.Join(truncated, " "))
		if err != nil {
			t.Fatalf("Decode(truncated %q): %v", v.mnemonic, err)
		}
		if !equalBytes(got, want) {
			t.Fatalf("prefix-truncated decode mismatch for %q", v.mnemonic)
		}
	}
}

func TestDecodeBadChecksum(t *testing.T) {
	_, err := Decode("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon any")
	if err != ErrBadChecksum {
		t.Fatalf("Decode bad checksum: got err %v, want %v", err, ErrBadChecksum)
	}
}

func TestDecodeInvalidWord(t *testing.T) {
	_, err := Decode("abandon abandon abandon notexistent abandon abandon abandon abandon abandon abandon abandon about")
	if !errors.Is(err, ErrInvalidWord) {
		t.Fatalf("Decode invalid word: got err %v, want %v", err, ErrInvalidWord)
	}
}

func TestDecodeAmbiguousWord(t *testing.T) {
	// "aban" is a proper prefix of only "abandon" (unambiguous); "ab" is a
	// prefix of many wordlist entries ("abandon", "ability", "able", ...).
	_, err := Decode("ab abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")
	if !errors.Is(err, ErrAmbiguousWord) {
		t.Fatalf("Decode ambiguous word: got err %v, want %v", err, ErrAmbiguousWord)
	}
}

func TestDecodeInvalidWordCount(t *testing.T) {
	_, err := Decode("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon")
	if !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("Decode wrong word count: got err %v, want %v", err, ErrInvalidLength)
	}
}

func TestEncodeInvalidLength(t *testing.T) {
	_, err := Encode(make([]byte, 15), " ")
	if !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("Encode wrong length: got err %v, want %v", err, ErrInvalidLength)
	}
}

func TestEncodeBadSeparator(t *testing.T) {
	_, err := Encode(make([]byte, 16), "-")
	if err != ErrBadSeparator {
		t.Fatalf("Encode bad separator: got err %v, want %v", err, ErrBadSeparator)
	}
}

func TestEncodeCustomSeparatorNFKDEquivalent(t *testing.T) {
	// U+00A0 NO-BREAK SPACE NFKD-normalizes to U+0020 SPACE, so it is
	// accepted as a separator even though it is not literally " ".
	got, err := Encode(make([]byte, 16), "\u00a0")
	if err != nil {
		t.Fatalf("Encode with NBSP separator: %v", err)
	}
	want := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	if got != want {
		t.Fatalf("Encode with NBSP separator = %q, want %q", got, want)
	}
}

func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
