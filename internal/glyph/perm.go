package glyph

import (
	"crypto/sha256"
	"math/rand/v2"
)

// DefaultSeed keys the permutation when no glyph key is given, so output
// without a key is still stable across runs.
var DefaultSeed = sha256.Sum256([]byte("seedriot/glyph/v1/default"))

// Permutation returns a deterministic permutation p of [0..n-1] derived
// from seed, and its inverse. p[code] is a word index; inv[index] is its code.
func Permutation(n int, seed [32]byte) ([]int, []int) {
	if n <= 0 {
		return []int{}, []int{}
	}

	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	r := rand.New(rand.NewChaCha8(seed))
	r.Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })

	return p, Inv(p)
}

// Inv computes the inverse mapping of a permutation p where p[i] is the value
// at position i. The returned slice inv has inv[p[i]] = i for all i.
func Inv(p []int) []int {
	inv := make([]int, len(p))
	for i, v := range p {
		inv[v] = i
	}
	return inv
}
