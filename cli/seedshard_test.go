package cli

import (
	"path/filepath"
	"strings"
	"testing"
)

const zeroMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestRunSplitRecoverRoundTrip(t *testing.T) {
	dir := t.TempDir()
	metaPath := filepath.Join(dir, "split.json")

	var splitCode int
	splitOut := captureStdout(t, func() {
		splitCode = runSplit([]string{"--shares", "5", "--needed", "3", "--file", metaPath, zeroMnemonic})
	})
	if splitCode != 0 {
		t.Fatalf("runSplit: exit %d", splitCode)
	}
	lines := strings.Split(strings.TrimSpace(splitOut), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 share lines, got %d: %q", len(lines), splitOut)
	}

	shareMnemonics := make([]string, len(lines))
	for i, line := range lines {
		parts := strings.SplitN(line, ": ", 2)
		if len(parts) != 2 {
			t.Fatalf("unexpected share line %q", line)
		}
		shareMnemonics[i] = parts[1]
	}

	for _, share := range shareMnemonics[:3] {
		var code int
		out := captureStdout(t, func() { code = runVerify([]string{"--file", metaPath, share}) })
		if code != 0 {
			t.Fatalf("runVerify: exit %d for %q", code, out)
		}
		if !strings.HasPrefix(strings.TrimSpace(out), "VALID") {
			t.Fatalf("runVerify: expected VALID, got %q", out)
		}
	}

	var recoverCode int
	recoverOut := captureStdout(t, func() {
		recoverCode = runRecover(append([]string{"--file", metaPath}, shareMnemonics[:3]...))
	})
	if recoverCode != 0 {
		t.Fatalf("runRecover: exit %d", recoverCode)
	}
	if strings.TrimSpace(recoverOut) != zeroMnemonic {
		t.Fatalf("runRecover: got %q, want %q", strings.TrimSpace(recoverOut), zeroMnemonic)
	}
}

func TestRunRecoverTooFewShares(t *testing.T) {
	dir := t.TempDir()
	metaPath := filepath.Join(dir, "split.json")

	var splitOut string
	splitOut = captureStdout(t, func() {
		if code := runSplit([]string{"--shares", "5", "--needed", "3", "--file", metaPath, zeroMnemonic}); code != 0 {
			t.Fatalf("runSplit: exit %d", code)
		}
	})
	lines := strings.Split(strings.TrimSpace(splitOut), "\n")
	share := strings.SplitN(lines[0], ": ", 2)[1]

	var code int
	errOut := captureStderr(t, func() {
		code = runRecover([]string{"--file", metaPath, share})
	})
	if code != 1 {
		t.Fatalf("runRecover: expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut, "recover failed") {
		t.Fatalf("unexpected stderr: %q", errOut)
	}
}

func TestRunVerifyInvalidShare(t *testing.T) {
	dir := t.TempDir()
	metaPath := filepath.Join(dir, "split.json")
	captureStdout(t, func() {
		if code := runSplit([]string{"--shares", "5", "--needed", "3", "--file", metaPath, zeroMnemonic}); code != 0 {
			t.Fatalf("runSplit: exit %d", code)
		}
	})

	var code int
	out := captureStdout(t, func() {
		code = runVerify([]string{"--file", metaPath, zeroMnemonic})
	})
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if strings.TrimSpace(out) != "INVALID" {
		t.Fatalf("expected INVALID, got %q", out)
	}
}

func TestRunInfoReportsSplitShape(t *testing.T) {
	dir := t.TempDir()
	metaPath := filepath.Join(dir, "split.json")
	captureStdout(t, func() {
		if code := runSplit([]string{"--shares", "5", "--needed", "3", "--file", metaPath, zeroMnemonic}); code != 0 {
			t.Fatalf("runSplit: exit %d", code)
		}
	})

	var code int
	out := captureStdout(t, func() { code = runInfo([]string{"--file", metaPath}) })
	if code != 0 {
		t.Fatalf("runInfo: exit %d", code)
	}
	if !strings.Contains(out, "shares (n): 5") || !strings.Contains(out, "needed (k): 3") {
		t.Fatalf("unexpected info output: %q", out)
	}
}

func TestRunSplitTwoSecrets(t *testing.T) {
	dir := t.TempDir()
	metaPath := filepath.Join(dir, "split.json")
	second := "legal winner thank year wave sausage worth useful legal winner thank yellow"

	var splitOut string
	splitOut = captureStdout(t, func() {
		if code := runSplit([]string{"--shares", "5", "--needed", "3", "--file", metaPath, zeroMnemonic, second}); code != 0 {
			t.Fatalf("runSplit: exit %d", code)
		}
	})
	lines := strings.Split(strings.TrimSpace(splitOut), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 shares, got %d", len(lines))
	}
	shareMnemonics := make([]string, len(lines))
	for i, line := range lines {
		shareMnemonics[i] = strings.SplitN(line, ": ", 2)[1]
	}

	var recoverOut string
	recoverOut = captureStdout(t, func() {
		if code := runRecover(append([]string{"--file", metaPath}, shareMnemonics[:3]...)); code != 0 {
			t.Fatalf("runRecover: exit %d", code)
		}
	})
	recovered := strings.Split(strings.TrimSpace(recoverOut), "\n")
	if len(recovered) != 2 {
		t.Fatalf("expected 2 recovered mnemonics, got %d: %q", len(recovered), recoverOut)
	}
	if recovered[0] != zeroMnemonic {
		t.Fatalf("first recovered secret: got %q, want %q", recovered[0], zeroMnemonic)
	}
	if recovered[1] != second {
		t.Fatalf("second recovered secret: got %q, want %q", recovered[1], second)
	}
}
