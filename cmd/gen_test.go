package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inspier/hexlit/pkg/gen"
)

func TestRunGen(t *testing.T) {
	dir := t.TempDir()
	src := `package keys

//hexlit:bytes Key = "cafe"
`
	if err := os.WriteFile(filepath.Join(dir, "keys.go"), []byte(src), 0o644); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}

	var out bytes.Buffer
	if err := runGen(&out, dir, gen.DefaultOutput, false); err != nil {
		t.Fatalf("runGen() error = %v", err)
	}
	if !strings.Contains(out.String(), "wrote ") {
		t.Fatalf("runGen() output = %q, want wrote message", out.String())
	}

	generated, err := os.ReadFile(filepath.Join(dir, gen.DefaultOutput))
	if err != nil {
		t.Fatalf("os.ReadFile() error = %v", err)
	}
	if !strings.Contains(string(generated), "var Key = [2]byte{0xca, 0xfe}") {
		t.Fatalf("generated file missing declaration:\n%s", generated)
	}

	// Check mode passes right after generation and prints nothing.
	out.Reset()
	if err := runGen(&out, dir, gen.DefaultOutput, true); err != nil {
		t.Fatalf("runGen() check error = %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("runGen() check output = %q, want none", out.String())
	}
}

func TestRunGenNoDirectives(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "plain.go"), []byte("package p\n"), 0o644); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}

	var out bytes.Buffer
	if err := runGen(&out, dir, gen.DefaultOutput, false); err != nil {
		t.Fatalf("runGen() error = %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("runGen() output = %q, want none for empty package", out.String())
	}
}

func TestRunGenInvalidDirective(t *testing.T) {
	dir := t.TempDir()
	src := `package keys

//hexlit:bytes Key = "abc"
`
	if err := os.WriteFile(filepath.Join(dir, "keys.go"), []byte(src), 0o644); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}

	var out bytes.Buffer
	err := runGen(&out, dir, gen.DefaultOutput, false)
	if err == nil {
		t.Fatal("runGen() expected error")
	}
	if !strings.Contains(err.Error(), "odd number of hex digits (3)") {
		t.Fatalf("runGen() error = %q, want odd digit count", err)
	}
}
