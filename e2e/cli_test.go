//go:build hexlite2e

package e2e

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCLIHelp(t *testing.T) {
	stdout, _, err := runCLI(t, "--help")
	if err != nil {
		t.Fatalf("CLI help failed: %v", err)
	}

	for _, cmd := range []string{"gen", "decode"} {
		if !strings.Contains(stdout, cmd) {
			t.Errorf("help output missing command: %s", cmd)
		}
	}
}

func TestCLIDecode(t *testing.T) {
	stdout, _, err := runCLI(t, "decode", "0xDEADBEEF")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if strings.TrimSpace(stdout) != "deadbeef" {
		t.Fatalf("decode output = %q, want deadbeef", stdout)
	}

	stdout, _, err = runCLI(t, "decode", "--format", "go", "1a", "0_b", "0C", "0d")
	if err != nil {
		t.Fatalf("decode tokens failed: %v", err)
	}
	if strings.TrimSpace(stdout) != "[4]byte{0x1a, 0x0b, 0x0c, 0x0d}" {
		t.Fatalf("decode token output = %q", stdout)
	}
}

func TestCLIDecodeInvalid(t *testing.T) {
	_, stderr, err := runCLI(t, "decode", "12g4")
	if err == nil {
		t.Fatal("decode expected failure for invalid digit")
	}
	if !strings.Contains(stderr, "invalid hex digit 'g' at offset 2") {
		t.Fatalf("stderr = %q, want invalid digit diagnostic", stderr)
	}
}

func TestCLIGen(t *testing.T) {
	dir := writeFixturePackage(t, `package keys

//hexlit:bytes Key = "0xcafe"
`)

	stdout, _, err := runCLI(t, "gen", dir)
	if err != nil {
		t.Fatalf("gen failed: %v", err)
	}
	if !strings.Contains(stdout, "wrote ") {
		t.Fatalf("gen output = %q, want wrote message", stdout)
	}

	generated, err := os.ReadFile(filepath.Join(dir, "hexlit_gen.go"))
	if err != nil {
		t.Fatalf("generated file missing: %v", err)
	}
	if !strings.Contains(string(generated), "var Key = [2]byte{0xca, 0xfe}") {
		t.Fatalf("generated file content:\n%s", generated)
	}

	// The freshly generated package passes --check.
	if _, stderr, err := runCLI(t, "gen", "--check", dir); err != nil {
		t.Fatalf("gen --check failed: %v\n%s", err, stderr)
	}
}

func TestCLIGenFailsBuild(t *testing.T) {
	dir := writeFixturePackage(t, `package keys

//hexlit:bytes Key = "abc"
`)

	_, stderr, err := runCLI(t, "gen", dir)
	if err == nil {
		t.Fatal("gen expected failure for odd digit count")
	}
	if !strings.Contains(stderr, "odd number of hex digits (3)") {
		t.Fatalf("stderr = %q, want odd digit diagnostic", stderr)
	}
	if !strings.Contains(stderr, "fixture.go:") {
		t.Fatalf("stderr = %q, want source position", stderr)
	}

	if _, err := os.Stat(filepath.Join(dir, "hexlit_gen.go")); !os.IsNotExist(err) {
		t.Fatal("gen wrote output despite decode error")
	}
}
