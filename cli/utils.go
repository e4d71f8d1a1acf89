package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/seedshard/seedshard/bip39"
	"github.com/seedshard/seedshard/gf"
)

// fieldElementFromMnemonic decodes a mnemonic into its entropy and reduces
// that entropy into a FieldElement over the canonical modulus for its
// width, per spec.md §6 ("the bit width is inferred from the byte length of
// the entropy ... and the canonical modulus looked up").
func fieldElementFromMnemonic(mnemonic string) (gf.FieldElement, error) {
	entropy, err := bip39.Decode(mnemonic)
	if err != nil {
		return gf.FieldElement{}, fmt.Errorf("decode mnemonic: %w", err)
	}
	modulus, err := gf.GetModulus(len(entropy) * 8)
	if err != nil {
		return gf.FieldElement{}, fmt.Errorf("mnemonic entropy width: %w", err)
	}
	fe, err := gf.FieldElementFromBytes(entropy, modulus)
	if err != nil {
		return gf.FieldElement{}, fmt.Errorf("mnemonic entropy: %w", err)
	}
	return fe, nil
}

// mnemonicFromFieldElement re-encodes a FieldElement's fixed-width bytes as
// a BIP-0039 mnemonic, the inverse of fieldElementFromMnemonic.
func mnemonicFromFieldElement(fe gf.FieldElement) (string, error) {
	return bip39.Encode(fe.Bytes(), " ")
}

// writeFileAtomic writes data to path via a temp file, fsync, chmod, and
// rename, so a reader never observes a partially-written metadata file.
func writeFileAtomic(path string, data []byte, mode os.FileMode) error {
	if path == "" {
		return errors.New("empty path")
	}
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tf, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	name := tf.Name()
	defer func() {
		tf.Close()
		os.Remove(name)
	}()
	if _, err := tf.Write(data); err != nil {
		return err
	}
	if err := tf.Sync(); err != nil {
		return err
	}
	if mode != 0 {
		if err := tf.Chmod(mode); err != nil {
			return err
		}
	}
	if err := tf.Close(); err != nil {
		return err
	}
	if err := os.Rename(name, path); err != nil {
		return err
	}
	if df, err := os.Open(dir); err == nil {
		_ = df.Sync()
		_ = df.Close()
	}
	return nil
}
