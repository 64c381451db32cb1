// Package wordlist loads and validates newline-delimited word files and
// writes the bundled BIP39 English list for demos.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/tyler-smith/go-bip39/wordlists"
)

const (
	// MinWords is the smallest usable list, matching the BIP39 list size.
	MinWords = 2048

	// DefaultPath is where the demo list lives unless --wordlist says otherwise.
	DefaultPath = "data/demo_wordlist.txt"

	// MaxLineBytes bounds a single line, line ending included.
	MaxLineBytes = 64 * 1024
)

const utf8BOM = "\uFEFF"

// Load reads path and returns its non-blank, trimmed lines in file order.
// Duplicates are kept. The file is read fresh on every call.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &NotFoundError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()

	words, err := parse(path, f)
	if err != nil {
		return nil, err
	}
	if len(words) < MinWords {
		return nil, &ValidationError{Path: path, Count: len(words), Min: MinWords}
	}
	return words, nil
}

// parse splits r into trimmed words, skipping blanks. CRLF endings and a
// leading BOM are accepted; invalid UTF-8 is not.
func parse(path string, r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), MaxLineBytes)
	words := make([]string, 0, MinWords)
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Text()
		if line == 1 {
			raw = strings.TrimPrefix(raw, utf8BOM)
		}
		if !utf8.ValidString(raw) {
			return nil, &ValidationError{Path: path, Reason: fmt.Sprintf("line %d is not valid UTF-8", line)}
		}
		w := strings.TrimSpace(raw)
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &ValidationError{Path: path, Reason: fmt.Sprintf("line %d is longer than %d bytes", line+1, MaxLineBytes)}
		}
		return nil, fmt.Errorf("read wordlist %q: %w", path, err)
	}
	return words, nil
}

// Demo returns a copy of the BIP39 English wordlist.
func Demo() []string {
	return slices.Clone(wordlists.English)
}

// Export writes words to path, one per line, replacing any existing file
// atomically. Lists shorter than MinWords are refused so an exported file
// is always loadable.
func Export(path string, words []string) error {
	if len(words) < MinWords {
		return &ValidationError{Path: path, Count: len(words), Min: MinWords}
	}
	var b strings.Builder
	for _, w := range words {
		b.WriteString(w)
		b.WriteByte('\n')
	}
	return writeFile(path, []byte(b.String()), 0o644)
}
