// SeedRiot — demo seed phrase generator
//
// Draws mnemonic-style phrases from a wordlist for demos and training:
// - Wallet presets fix the phrase length (--wallet, see --list-wallets)
// - Or pick any length (--word-count), labelled "Custom"
// - Words come from a newline-delimited list of at least 2048 entries
// - Every word is drawn independently from a CSPRNG (repeats allowed)
//
// Nothing here computes BIP39/SLIP39 checksums or derives keys. A phrase
// from this tool is not a wallet backup.
//
// Optional output:
// - --glyphs prints each word as a 4-glyph code (△ □ ○ × • ◇ ☆), keyed by
//   --glyph-key; `seedriot decode` maps codes back to words
// - --qr prints the phrase as a terminal QR code
package main

import (
	"errors"
	"os"

	"seedriot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
