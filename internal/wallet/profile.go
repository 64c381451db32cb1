// Package wallet holds the static table of wallet presets: which mnemonic
// technology each product uses and which phrase lengths it accepts.
//
// Lookups are case-insensitive. The registry is built once and never mutated;
// every accessor hands out copies.
package wallet

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Profile describes one named wallet product.
type Profile struct {
	Key        string // unique lowercase identifier, e.g. "trezor"
	Name       string // display name
	Technology string // free-text label, may name several schemes
	WordCounts []int  // supported phrase lengths; the first entry is the default
	Notes      string
}

// Default returns the profile's default phrase length.
func (p Profile) Default() int {
	if len(p.WordCounts) == 0 {
		return 0
	}
	return p.WordCounts[0]
}

// Supports reports whether n is one of the profile's phrase lengths.
func (p Profile) Supports(n int) bool {
	return slices.Contains(p.WordCounts, n)
}

func (p Profile) clone() Profile {
	p.WordCounts = slices.Clone(p.WordCounts)
	return p
}

// Registry maps normalized wallet keys to profiles.
type Registry struct {
	byKey map[string]Profile
	keys  []string // sorted
}

// ErrInvalidProfile is returned by NewRegistry for malformed preset data.
var ErrInvalidProfile = errors.New("invalid wallet profile")

// NewRegistry validates profiles and indexes them by lowercase key.
func NewRegistry(profiles ...Profile) (*Registry, error) {
	r := &Registry{byKey: make(map[string]Profile, len(profiles))}
	for _, p := range profiles {
		key := normalize(p.Key)
		if key == "" {
			return nil, fmt.Errorf("%w: empty key for %q", ErrInvalidProfile, p.Name)
		}
		if _, dup := r.byKey[key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidProfile, key)
		}
		if len(p.WordCounts) == 0 {
			return nil, fmt.Errorf("%w: %q has no word counts", ErrInvalidProfile, key)
		}
		for _, n := range p.WordCounts {
			if n <= 0 {
				return nil, fmt.Errorf("%w: %q has non-positive word count %d", ErrInvalidProfile, key, n)
			}
		}
		p = p.clone()
		p.Key = key
		r.byKey[key] = p
		r.keys = append(r.keys, key)
	}
	sort.Strings(r.keys)
	return r, nil
}

// Lookup finds a profile by key, ignoring case and surrounding whitespace.
func (r *Registry) Lookup(key string) (Profile, bool) {
	p, ok := r.byKey[normalize(key)]
	if !ok {
		return Profile{}, false
	}
	return p.clone(), true
}

// All returns every profile sorted by key.
func (r *Registry) All() []Profile {
	out := make([]Profile, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.byKey[k].clone())
	}
	return out
}

// Len returns the number of registered profiles.
func (r *Registry) Len() int { return len(r.keys) }

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
