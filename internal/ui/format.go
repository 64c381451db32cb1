package ui

import (
	"fmt"
	"strconv"
	"strings"

	"seedriot/internal/wallet"
)

// Report is the result of one generation run.
type Report struct {
	Wallet     string
	Technology string
	WordCount  int
	Words      []string
	Glyphs     string // optional, already formatted
	QR         string // optional, already rendered
}

// String formats the report. Without glyphs or QR it is exactly four lines:
// wallet, technology, word count and the space-joined phrase.
func (r Report) String() string {
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", Style(label, Label), Style(value, Value))
	}
	line("Wallet:", r.Wallet)
	line("Technology:", r.Technology)
	line("Words:", strconv.Itoa(r.WordCount))
	line("Seed phrase:", strings.Join(r.Words, " "))
	if r.Glyphs != "" {
		line("Glyphs:", r.Glyphs)
	}
	if r.QR != "" {
		b.WriteString("\n")
		b.WriteString(r.QR)
	}
	return b.String()
}

// Listing formats profiles as blocks separated by a blank line, in the
// order given.
func Listing(profiles []wallet.Profile) string {
	blocks := make([]string, 0, len(profiles))
	for _, p := range profiles {
		counts := make([]string, len(p.WordCounts))
		for i, c := range p.WordCounts {
			counts[i] = strconv.Itoa(c)
		}
		blocks = append(blocks, fmt.Sprintf("%s (%s)\n  %s %s\n  %s %s\n  %s %s",
			Style(p.Name, Title), p.Key,
			Style("Technology:", Label), p.Technology,
			Style("Supported lengths:", Label), strings.Join(counts, ", "),
			Style("Notes:", Label), Style(p.Notes, Muted),
		))
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
