// Package gen turns //hexlit:bytes directives found in Go source into a
// generated companion file of fixed-size [N]byte declarations. The array
// length is computed from the directive's digit count before emission, so
// it is part of the declaration's static type. Malformed hex aborts the
// run with the directive's file:line, and no output is written.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// DefaultOutput is the generated file name used when no -o flag is given.
const DefaultOutput = "hexlit_gen.go"

const generatedHeader = "// Code generated by hexlit gen. DO NOT EDIT."

// Literal is one decoded //hexlit:bytes directive.
type Literal struct {
	Name string
	Data []byte
}

// Package holds the directives collected from one Go package directory,
// in file then source order.
type Package struct {
	Name     string
	Dir      string
	Literals []Literal
}

var tpl = template.Must(template.New("hexlit").
	Funcs(template.FuncMap{"literal": ArrayLiteral}).
	Parse(generatedHeader + `

package {{.Name}}
{{range .Literals}}
var {{.Name}} = {{literal .Data}}
{{end}}`))

// Source renders the generated file for p, gofmt-formatted.
func (p *Package) Source() ([]byte, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, p); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

// Generate scans the package at dir and writes its generated file named
// output. It returns the path written, or "" when the package has no
// directives. A stale generated file left behind by removed directives is
// deleted; a file of the same name without the generated header is left
// alone.
func Generate(dir, output string) (string, error) {
	pkg, err := ScanDir(dir, output)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, output)

	if len(pkg.Literals) == 0 {
		existing, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		if isGenerated(existing) {
			if err := os.Remove(path); err != nil {
				return "", err
			}
		}
		return "", nil
	}

	src, err := pkg.Source()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Check verifies that the generated file at dir/output matches what
// Generate would write. It fails on decode errors, a missing or out of
// date file, and a stale generated file with no remaining directives.
func Check(dir, output string) error {
	pkg, err := ScanDir(dir, output)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, output)
	existing, readErr := os.ReadFile(path)

	if len(pkg.Literals) == 0 {
		if readErr == nil && isGenerated(existing) {
			return fmt.Errorf("%s: stale generated file, no hexlit directives remain; run hexlit gen", path)
		}
		return nil
	}

	if errors.Is(readErr, fs.ErrNotExist) {
		return fmt.Errorf("%s: missing generated file; run hexlit gen", path)
	}
	if readErr != nil {
		return readErr
	}
	src, err := pkg.Source()
	if err != nil {
		return err
	}
	if !bytes.Equal(existing, src) {
		return fmt.Errorf("%s: out of date; run hexlit gen", path)
	}
	return nil
}

func isGenerated(src []byte) bool {
	return bytes.HasPrefix(src, []byte(generatedHeader))
}

// ArrayLiteral renders data as a fixed-size Go array literal, e.g.
// [4]byte{0xde, 0xad, 0xbe, 0xef}. Arrays longer than eight bytes wrap
// eight values to a line.
func ArrayLiteral(data []byte) string {
	if len(data) == 0 {
		return "[0]byte{}"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%d]byte{", len(data))
	if len(data) <= 8 {
		for i, v := range data {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "0x%02x", v)
		}
		b.WriteString("}")
		return b.String()
	}

	for i, v := range data {
		if i%8 == 0 {
			b.WriteString("\n\t")
		} else {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "0x%02x,", v)
	}
	b.WriteString("\n}")
	return b.String()
}
