// Package glyph renders word positions as short symbol codes.
//
// Each position in a wordlist maps to a 4-glyph code over 7 symbols. With a
// base of 7 and fixed length 4 the code space is 7^4 = 2401, which covers a
// BIP39-sized list (2048) with room to spare. Positions are first passed
// through a keyed permutation, so the same phrase shows different glyphs
// under different keys while decoding stays exact.
//
// Glyph set (0..6):
//
//	0: △   1: □   2: ○   3: ×   4: •   5: ◇   6: ☆
//
// 'x' and 'X' are accepted as aliases for × when parsing.
package glyph

import (
	"errors"
	"strings"
	"unicode"
)

const (
	// Base is the numeric base for glyph digits (7 unique symbols).
	Base = 7
	// Len is the fixed number of glyphs per code.
	Len = 4
	// Capacity is the number of distinct codes, Base^Len.
	Capacity = Base * Base * Base * Base
)

// ErrCapacity is returned for wordlists with more entries than codes.
var ErrCapacity = errors.New("wordlist too large for glyph codes")

// Digits defines the ordered set of 7 glyphs (0..6).
var Digits = []rune{'△', '□', '○', '×', '•', '◇', '☆'}

var decode = map[rune]int{
	'△': 0,
	'□': 1,
	'○': 2,
	'×': 3,
	'•': 4,
	'◇': 5,
	'☆': 6,
	'x': 3,
	'X': 3,
}

// ToDigits converts a code in [0, Capacity) into Len base-7 digits, most
// significant first.
func ToDigits(code int) ([Len]int, bool) {
	var out [Len]int
	if code < 0 || code >= Capacity {
		return out, false
	}
	for i := Len - 1; i >= 0; i-- {
		out[i] = code % Base
		code /= Base
	}
	return out, true
}

// FromDigits is the inverse of ToDigits.
func FromDigits(d []int) (int, bool) {
	if len(d) != Len {
		return 0, false
	}
	code := 0
	for _, v := range d {
		if v < 0 || v >= Base {
			return 0, false
		}
		code = code*Base + v
	}
	return code, true
}

// Render converts a code into its 4-glyph string.
func Render(code int) (string, bool) {
	d, ok := ToDigits(code)
	if !ok {
		return "", false
	}
	b := make([]rune, 0, Len)
	for _, v := range d {
		b = append(b, Digits[v])
	}
	return string(b), true
}

// Parse converts a glyph token back into its code. Whitespace and sep are
// ignored so visually separated input ("△·□·○·×") parses.
func Parse(tok, sep string) (int, bool) {
	runes := []rune(StripSep(tok, sep))
	if len(runes) != Len {
		return 0, false
	}
	d := make([]int, Len)
	for i, r := range runes {
		v, ok := decode[r]
		if !ok {
			return 0, false
		}
		d[i] = v
	}
	return FromDigits(d)
}

// StripSep removes sep and all Unicode whitespace from s.
func StripSep(s, sep string) string {
	if sep != "" {
		s = strings.ReplaceAll(s, sep, "")
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// InsertSep places sep between the runes of s. An empty sep returns s.
func InsertSep(s, sep string) string {
	if sep == "" {
		return s
	}
	r := []rune(s)
	var b strings.Builder
	for i, ch := range r {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteRune(ch)
	}
	return b.String()
}
