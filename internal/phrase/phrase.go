// Package phrase draws seed phrase words uniformly at random from a wordlist.
//
// Randomness comes from a cryptographically secure source: by default the
// decred userspace CSPRNG, which is reseeded from the operating system's
// entropy source. Words are sampled with replacement, so a phrase may
// repeat a word. No checksum is computed.
package phrase

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/crypto/rand"
)

// MaxCount is the longest phrase Draw will produce.
const MaxCount = 1024

// ErrInvalidCount matches InvalidCountError.
var ErrInvalidCount = errors.New("invalid word count")

// ErrEmptyWordlist is returned when there is nothing to sample from.
var ErrEmptyWordlist = errors.New("empty wordlist")

// InvalidCountError reports a phrase length outside [1, MaxCount].
type InvalidCountError struct {
	Count int
}

func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("word count must be between 1 and %d, got %d", MaxCount, e.Count)
}

// Is lets errors.Is(err, ErrInvalidCount) match.
func (e *InvalidCountError) Is(target error) bool { return target == ErrInvalidCount }

// Source yields uniform integers in [0, n). Implementations used outside
// tests must be cryptographically secure.
type Source interface {
	IntN(n int) int
}

type csprng struct{}

func (csprng) IntN(n int) int { return rand.IntN(n) }

// Generator samples words from a Source.
type Generator struct {
	src Source
}

// New returns a Generator reading from src, or from the default CSPRNG when
// src is nil.
func New(src Source) *Generator {
	if src == nil {
		src = csprng{}
	}
	return &Generator{src: src}
}

var std = New(nil)

// Draw returns count independent indices, each uniform in [0, size).
func (g *Generator) Draw(size, count int) ([]int, error) {
	if count <= 0 || count > MaxCount {
		return nil, &InvalidCountError{Count: count}
	}
	if size <= 0 {
		return nil, ErrEmptyWordlist
	}
	out := make([]int, count)
	for i := range out {
		out[i] = g.src.IntN(size)
	}
	return out, nil
}

// Generate returns count words picked from words.
func (g *Generator) Generate(words []string, count int) ([]string, error) {
	idx, err := g.Draw(len(words), count)
	if err != nil {
		return nil, err
	}
	return Pick(words, idx), nil
}

// Pick maps indices to their words.
func Pick(words []string, indices []int) []string {
	out := make([]string, len(indices))
	for i, j := range indices {
		out[i] = words[j]
	}
	return out
}

// Draw samples with the default generator.
func Draw(size, count int) ([]int, error) { return std.Draw(size, count) }

// Generate samples with the default generator.
func Generate(words []string, count int) ([]string, error) { return std.Generate(words, count) }
