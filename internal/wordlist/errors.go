package wordlist

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches NotFoundError via errors.Is.
	ErrNotFound = errors.New("wordlist not found")
	// ErrInvalid matches ValidationError via errors.Is.
	ErrInvalid = errors.New("wordlist invalid")
)

// NotFoundError reports a wordlist path that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("wordlist %q not found; pass --wordlist with a custom list or run 'seedriot wordlist export' to write the bundled demo list", e.Path)
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError reports a wordlist that exists but cannot be used.
type ValidationError struct {
	Path   string
	Count  int    // usable words found
	Min    int    // required minimum
	Reason string // set for content problems other than size
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("wordlist %q: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("wordlist %q must contain at least %d entries to mirror BIP39 entropy; got %d", e.Path, e.Min, e.Count)
}

// Is lets errors.Is(err, ErrInvalid) match.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }
