package glyph

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/crypto/argon2"
)

// Supported key derivation functions.
const (
	KDFArgon2id = "argon2id"
	KDFNone     = "none"
)

// ErrWeakKey matches every key strength rejection.
var ErrWeakKey = errors.New("weak key")

// KeyPolicy defines how we validate and derive the effective key material.
//   - If KDF == "argon2id" (default), we use Argon2id to slow down brute force
//     and enforce practical minimum lengths.
//   - If KDF == "none", we enforce pure minimum entropy by format (BIP39/hex/base64)
//     and reject everything else unless AllowWeak == true.
type KeyPolicy struct {
	KDF         string // "argon2id" (default) or "none"
	KDFMemMB    uint32 // memory in MB (e.g., 512)
	KDFTime     uint32 // iterations (e.g., 3)
	KDFParallel uint8  // parallelism (e.g., 1)
	AllowWeak   bool   // allow weak keys (bypass enforcement)
}

// DefaultKeyPolicy returns argon2id with 512MB, 3 passes and 1 lane.
func DefaultKeyPolicy() KeyPolicy {
	return KeyPolicy{
		KDF:         KDFArgon2id,
		KDFMemMB:    512,
		KDFTime:     3,
		KDFParallel: 1,
	}
}

// MaxKDFMemMB caps the Argon2id memory cost (64 GiB).
const MaxKDFMemMB = 64 * 1024

// Validate reports an unknown KDF or an out-of-range memory cost.
func (p KeyPolicy) Validate() error {
	switch strings.ToLower(strings.TrimSpace(p.KDF)) {
	case "", KDFArgon2id, KDFNone:
	default:
		return fmt.Errorf("unknown KDF %q (supported: argon2id, none)", p.KDF)
	}
	if p.KDFMemMB > MaxKDFMemMB {
		return fmt.Errorf("KDF memory must be at most %d MB, got %d", MaxKDFMemMB, p.KDFMemMB)
	}
	return nil
}

// MinBitsFor returns the key strength expected for a phrase of n words.
func MinBitsFor(n int) int {
	if n >= 24 {
		return 256
	}
	return 128
}

// KeyMaterial derives a 32-byte permutation seed from key.
//   - argon2id: Argon2id over a fixed domain salt, then SHA-256.
//   - none:     SHA-256 of the key.
func KeyMaterial(key string, policy KeyPolicy) ([32]byte, error) {
	var seed [32]byte
	if err := policy.Validate(); err != nil {
		return seed, err
	}

	switch strings.ToLower(strings.TrimSpace(policy.KDF)) {
	case "", KDFArgon2id:
		salt := []byte("SeedRiot/v1/argon2id/domain-sep")
		mem := policy.KDFMemMB
		if mem == 0 {
			mem = 512
		}
		passes := policy.KDFTime
		if passes == 0 {
			passes = 3
		}
		par := policy.KDFParallel
		if par == 0 {
			par = 1
		}
		derived := argon2.IDKey([]byte(key), salt, passes, mem*1024, par, 32)
		return sha256.Sum256(derived), nil

	case KDFNone:
		return sha256.Sum256([]byte(key)), nil
	}
	return seed, nil
}

// CheckStrength enforces a minimum key strength for minBits under policy.
//
// With argon2id the KDF carries the hardness, so only a minimum length is
// required: 16 characters for 128 bits, 20 for 256. With none the key must
// itself carry the entropy: a 12/24-word BIP39 phrase, hex of minBits/4
// characters, or base64 of minBits/8 bytes.
func CheckStrength(key string, minBits int, policy KeyPolicy) error {
	if policy.AllowWeak {
		return nil
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: key is empty", ErrWeakKey)
	}

	switch strings.ToLower(strings.TrimSpace(policy.KDF)) {
	case "", KDFArgon2id:
		minLen := 16
		if minBits >= 256 {
			minLen = 20
		}
		if utf8.RuneCountInString(key) < minLen {
			return fmt.Errorf("%w: need %d+ characters with argon2id (or use --allow-weak-key)", ErrWeakKey, minLen)
		}
		return nil

	case KDFNone:
		if entropyFormatBits(key) >= minBits {
			return nil
		}
		return fmt.Errorf("%w: key does not meet %d-bit minimum; use a 12/24-word BIP39 phrase, %d+ hex chars or base64 of %d+ bytes",
			ErrWeakKey, minBits, minBits/4, minBits/8)

	default:
		return fmt.Errorf("unknown KDF %q (supported: argon2id, none)", policy.KDF)
	}
}

// SeedFor checks key against policy and returns the permutation seed. An
// empty key selects DefaultSeed without any checks.
func SeedFor(key string, minBits int, policy KeyPolicy) ([32]byte, error) {
	if strings.TrimSpace(key) == "" {
		return DefaultSeed, nil
	}
	if err := CheckStrength(key, minBits, policy); err != nil {
		return [32]byte{}, err
	}
	return KeyMaterial(key, policy)
}

var bip39Index = func() map[string]struct{} {
	m := make(map[string]struct{}, len(wordlists.English))
	for _, w := range wordlists.English {
		m[w] = struct{}{}
	}
	return m
}()

// entropyFormatBits returns the entropy a key carries by format alone, or 0.
func entropyFormatBits(key string) int {
	if words := strings.Fields(strings.ToLower(key)); len(words) == 12 || len(words) == 24 {
		for _, w := range words {
			if _, ok := bip39Index[w]; !ok {
				return 0
			}
		}
		if len(words) == 12 {
			return 128
		}
		return 256
	}
	if len(key)%2 == 0 {
		if _, err := hex.DecodeString(key); err == nil {
			return len(key) * 4
		}
	}
	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.RawURLEncoding, base64.RawStdEncoding} {
		if data, err := enc.DecodeString(key); err == nil {
			return len(data) * 8
		}
	}
	return 0
}
