// Package hexlit decodes flexible hex text into byte slices.
//
// Input may carry a single leading 0x/0X radix prefix and any mixture of
// cosmetic separators (spaces, tabs, line breaks, '-', '|', '_') between
// digits. Decoding is a single forward pass: separators are skipped, the
// remaining digits are validated and paired high-nibble first, and the
// output length is always exactly half the digit count. The hexlit CLI
// uses this package to turn //hexlit:bytes directives into fixed-size
// [N]byte declarations at go generate time.
package hexlit

import "fmt"

// InvalidDigitError reports a character outside [0-9a-fA-F]. Offset is the
// character's position in the normalized digit stream, i.e. counted after
// prefix and separator removal.
type InvalidDigitError struct {
	Byte   byte
	Offset int
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid hex digit %q at offset %d", e.Byte, e.Offset)
}

// OddCountError reports a digit stream whose length is odd. A trailing
// unpaired nibble is ambiguous, so there is no zero-padding policy.
type OddCountError struct {
	Count int
}

func (e *OddCountError) Error() string {
	return fmt.Sprintf("odd number of hex digits (%d)", e.Count)
}

// isSeparator reports whether c is one of the cosmetic separator
// characters that may appear anywhere between digits.
func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '-', '|', '_':
		return true
	}
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// nibble maps a hex digit character to its 0-15 value.
func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// stripPrefix removes one leading 0x/0X radix prefix, skipping any leading
// whitespace first. The prefix is recognized only at the very start: a 0x
// occurring later in the text is left for the digit pass, where the x
// fails as an invalid digit.
func stripPrefix(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		return s[i+2:]
	}
	return s
}

// Normalize strips one leading 0x/0X prefix and every separator from s,
// returning the bare digit stream. It is a pure filter: characters that
// are not valid hex digits pass through unchanged and are rejected later
// by Decode. The result may be empty.
func Normalize(s string) string {
	s = stripPrefix(s)
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if !isSeparator(s[i]) {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// Decode decodes hex text into bytes. It accepts an optional leading
// 0x/0X prefix and separators anywhere between digits. The returned slice
// has length exactly half the digit count; an input with zero digits
// decodes to an empty slice. Errors are *InvalidDigitError or
// *OddCountError, nothing else.
func Decode(s string) ([]byte, error) {
	return decode(stripPrefix(s))
}

// DecodeTokens decodes the bare-token input form: the tokens are
// concatenated in order with no implicit separator between them, and no
// radix prefix is recognized. Separators inside a token behave as in
// Decode.
func DecodeTokens(tokens ...string) ([]byte, error) {
	switch len(tokens) {
	case 0:
		return []byte{}, nil
	case 1:
		return decode(tokens[0])
	}
	n := 0
	for _, tok := range tokens {
		n += len(tok)
	}
	joined := make([]byte, 0, n)
	for _, tok := range tokens {
		joined = append(joined, tok...)
	}
	return decode(string(joined))
}

// Must is like Decode but panics on error. Intended for package-level
// variables and test fixtures whose inputs are known-good.
func Must(s string) []byte {
	b, err := Decode(s)
	if err != nil {
		panic(fmt.Sprintf("hexlit: %v", err))
	}
	return b
}

// MustTokens is like DecodeTokens but panics on error.
func MustTokens(tokens ...string) []byte {
	b, err := DecodeTokens(tokens...)
	if err != nil {
		panic(fmt.Sprintf("hexlit: %v", err))
	}
	return b
}

// decode runs the fused validate+decode pass over s, which must already
// have its radix prefix removed. The first pass counts and validates
// digits so the output can be allocated at its exact final size; the
// second fills it pairwise, high nibble first.
func decode(s string) ([]byte, error) {
	digits := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSeparator(c) {
			continue
		}
		if _, ok := nibble(c); !ok {
			return nil, &InvalidDigitError{Byte: c, Offset: digits}
		}
		digits++
	}
	if digits%2 != 0 {
		return nil, &OddCountError{Count: digits}
	}

	out := make([]byte, digits/2)
	var hi byte
	haveHi := false
	j := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSeparator(c) {
			continue
		}
		v, _ := nibble(c)
		if !haveHi {
			hi = v
			haveHi = true
		} else {
			out[j] = hi<<4 | v
			j++
			haveHi = false
		}
	}
	return out, nil
}
