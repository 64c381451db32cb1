package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"seedriot/internal/glyph"
	"seedriot/internal/phrase"
	"seedriot/internal/plan"
	"seedriot/internal/ui"
	"seedriot/internal/wordlist"
)

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	// Listing ignores every other flag and never touches config or wordlist.
	if a.listWallets {
		colorMode := "auto"
		if a.noColor {
			colorMode = "never"
		}
		ui.SetColorEnabled(colorFor(cmd.OutOrStdout(), colorMode))
		_, err := fmt.Fprint(cmd.OutOrStdout(), ui.Listing(a.registry.All()))
		return classify(err)
	}

	report, err := a.generate(cmd)
	if err != nil {
		return classify(err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), report.String())
	return classify(err)
}

// generate resolves, loads and samples. It fails before sampling on any
// request or wordlist problem and returns the complete report otherwise.
func (a *app) generate(cmd *cobra.Command) (ui.Report, error) {
	req := plan.Request{
		Wallet:       a.walletKey,
		WordCount:    a.wordCount,
		HasWordCount: cmd.Flags().Changed("word-count"),
	}
	p, err := plan.Resolve(req, a.registry)
	if err != nil {
		return ui.Report{}, err
	}

	if err := a.setup(cmd); err != nil {
		return ui.Report{}, err
	}
	req.WordlistPath = a.wordlistPath
	a.logger.Debug("resolved plan", "wallet", p.WalletName, "technology", p.Technology, "words", p.WordCount, "custom", p.Custom)

	words, err := wordlist.Load(req.WordlistPath)
	if err != nil {
		return ui.Report{}, err
	}
	a.logger.Debug("loaded wordlist", "path", req.WordlistPath, "entries", len(words))

	// A glyph codec needs a list small enough to encode, so build it before
	// sampling.
	var codec *glyph.Codec
	if a.glyphs {
		seed, err := a.glyphSeed(cmd, glyph.MinBitsFor(p.WordCount))
		if err != nil {
			return ui.Report{}, err
		}
		if codec, err = glyph.NewCodec(words, seed); err != nil {
			return ui.Report{}, err
		}
	}

	indices, err := a.generator.Draw(len(words), p.WordCount)
	if err != nil {
		return ui.Report{}, err
	}
	picked := phrase.Pick(words, indices)

	report := ui.Report{
		Wallet:     p.WalletName,
		Technology: p.Technology,
		WordCount:  p.WordCount,
		Words:      picked,
	}
	if codec != nil {
		tokens, err := codec.EncodeVerified(indices)
		if err != nil {
			return ui.Report{}, err
		}
		report.Glyphs = glyph.Join(tokens, a.glyphSep)
	}
	if a.qr {
		if report.QR, err = ui.QR(strings.Join(picked, " ")); err != nil {
			return ui.Report{}, err
		}
	}
	a.logger.Debug("generated phrase", "words", len(picked), "glyphs", codec != nil, "qr", a.qr)
	return report, nil
}
