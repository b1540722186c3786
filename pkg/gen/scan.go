package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/inspier/hexlit/pkg/hexlit"
)

// directivePrefix marks a hexlit declaration inside a comment:
//
//	//hexlit:bytes Name = "0xDEADBEEF"
//	//hexlit:bytes Name = de ad be ef
//
// A directive with nothing after the '=' takes its tokens from the
// following //-lines of the same comment group, until a blank line or the
// next directive.
const directivePrefix = "//hexlit:bytes"

// ScanDir parses the Go package at dir and collects its hexlit
// directives in file order. The generated file named output is skipped,
// as are _test.go files. Decode failures are reported with the
// directive's source position.
func ScanDir(dir, output string) (*Package, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}
		if name == output || strings.HasSuffix(name, "_test.go") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	pkg := &Package{Dir: dir}
	seen := make(map[string]token.Position)
	fset := token.NewFileSet()

	for _, name := range names {
		path := filepath.Join(dir, name)
		f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if err != nil {
			return nil, err
		}
		if pkg.Name == "" {
			pkg.Name = f.Name.Name
		}

		for _, cg := range f.Comments {
			lits, err := scanGroup(fset, cg.List, seen)
			if err != nil {
				return nil, err
			}
			pkg.Literals = append(pkg.Literals, lits...)
		}
	}
	return pkg, nil
}

// scanGroup extracts the directives from one comment group.
func scanGroup(fset *token.FileSet, comments []*ast.Comment, seen map[string]token.Position) ([]Literal, error) {
	var lits []Literal
	for i := 0; i < len(comments); {
		c := comments[i]
		rest, ok := cutDirective(c.Text)
		if !ok {
			i++
			continue
		}
		pos := fset.Position(c.Pos())

		name, rhs, err := splitDirective(rest)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pos, err)
		}
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("%s: duplicate directive for %s (first at %s)", pos, name, prev)
		}
		seen[name] = pos

		var data []byte
		switch {
		case rhs == "":
			// Token block on the following comment lines.
			var tokens []string
			j := i + 1
			for j < len(comments) {
				text := comments[j].Text
				if !strings.HasPrefix(text, "//") {
					break
				}
				if _, isNext := cutDirective(text); isNext {
					break
				}
				body := strings.TrimSpace(strings.TrimPrefix(text, "//"))
				if body == "" {
					j++
					break
				}
				tokens = append(tokens, strings.Fields(body)...)
				j++
			}
			i = j
			data, err = hexlit.DecodeTokens(tokens...)
		case strings.HasPrefix(rhs, `"`):
			i++
			var s string
			s, err = strconv.Unquote(rhs)
			if err != nil {
				return nil, fmt.Errorf("%s: malformed quoted literal %s", pos, rhs)
			}
			data, err = hexlit.Decode(s)
		default:
			i++
			data, err = hexlit.DecodeTokens(strings.Fields(rhs)...)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", pos, name, err)
		}
		lits = append(lits, Literal{Name: name, Data: data})
	}
	return lits, nil
}

// cutDirective returns the text after the directive marker, requiring a
// word boundary so that unrelated comments never match.
func cutDirective(text string) (string, bool) {
	rest, ok := strings.CutPrefix(text, directivePrefix)
	if !ok {
		return "", false
	}
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return rest, true
}

// splitDirective parses "Name = <rhs>" from the directive remainder.
func splitDirective(rest string) (name, rhs string, err error) {
	left, right, found := strings.Cut(rest, "=")
	if !found {
		return "", "", fmt.Errorf("malformed hexlit directive: missing '='")
	}
	name = strings.TrimSpace(left)
	if !token.IsIdentifier(name) {
		return "", "", fmt.Errorf("malformed hexlit directive: %q is not a valid identifier", name)
	}
	return name, strings.TrimSpace(right), nil
}
