package glyph

import (
	"fmt"
	"strings"
)

// Codec maps word positions of one wordlist to glyph codes and back under a
// fixed permutation.
type Codec struct {
	words []string
	perm  []int // code -> word index
	inv   []int // word index -> code
}

// NewCodec builds a codec for words keyed by seed. The list must be
// non-empty and no larger than Capacity.
func NewCodec(words []string, seed [32]byte) (*Codec, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("glyph codec needs a non-empty wordlist")
	}
	if len(words) > Capacity {
		return nil, fmt.Errorf("%w: %d entries, at most %d supported", ErrCapacity, len(words), Capacity)
	}
	p, inv := Permutation(len(words), seed)
	return &Codec{words: words, perm: p, inv: inv}, nil
}

// Encode renders each word index as a glyph token, in order.
func (c *Codec) Encode(indices []int) ([]string, error) {
	out := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(c.inv) {
			return nil, fmt.Errorf("word index %d out of range [0,%d)", idx, len(c.inv))
		}
		tok, ok := Render(c.inv[idx])
		if !ok {
			return nil, fmt.Errorf("internal error: invalid code for index %d", idx)
		}
		out = append(out, tok)
	}
	return out, nil
}

// Decode maps glyph tokens back to words. Tokens may contain sep and
// whitespace between glyphs.
func (c *Codec) Decode(tokens []string, sep string) ([]string, error) {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		code, ok := Parse(tok, sep)
		if !ok {
			return nil, fmt.Errorf("invalid glyph token %q", tok)
		}
		if code >= len(c.perm) {
			return nil, fmt.Errorf("glyph token %q is outside this wordlist", tok)
		}
		out = append(out, c.words[c.perm[code]])
	}
	return out, nil
}

// EncodeVerified encodes indices and then decodes the result, failing unless
// the decoded words match the words at indices exactly and in order. No
// tokens are returned on failure.
func (c *Codec) EncodeVerified(indices []int) ([]string, error) {
	tokens, err := c.Encode(indices)
	if err != nil {
		return nil, fmt.Errorf("encode failed: %w", err)
	}
	decoded, err := c.Decode(tokens, "")
	if err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}
	if len(decoded) != len(indices) {
		return nil, fmt.Errorf("round-trip mismatch: decoded length %d != %d", len(decoded), len(indices))
	}
	for i, idx := range indices {
		if decoded[i] != c.words[idx] {
			return nil, fmt.Errorf("round-trip mismatch at position %d: have %q, want %q", i, decoded[i], c.words[idx])
		}
	}
	return tokens, nil
}

// Join formats tokens for display, inserting sep between glyphs.
func Join(tokens []string, sep string) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = InsertSep(t, sep)
	}
	return strings.Join(parts, "  ")
}
