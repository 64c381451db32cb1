package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"seedriot/internal/glyph"
	"seedriot/internal/wordlist"
)

func newDecodeCmd(a *app) *cobra.Command {
	var phraseOnly bool
	cmd := &cobra.Command{
		Use:   "decode <glyphs>...",
		Short: "Map glyph codes back to words",
		Long: `Decode 4-glyph tokens printed by --glyphs back to their words. Use the same
--wordlist and glyph key settings that produced them. x or X may be typed
for ×.`,
		Example: `  seedriot decode '△□○× ☆□△•'
  seedriot decode --glyph-prompt △□○× ☆□△•`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return classify(err)
			}
			tokens, ok := splitTokens(args, a.glyphSep)
			if !ok {
				return usageErrorf("invalid glyph input")
			}

			words, err := wordlist.Load(a.wordlistPath)
			if err != nil {
				return classify(err)
			}
			seed, err := a.glyphSeed(cmd, glyph.MinBitsFor(len(tokens)))
			if err != nil {
				return classify(err)
			}
			codec, err := glyph.NewCodec(words, seed)
			if err != nil {
				return classify(err)
			}
			decoded, err := codec.Decode(tokens, a.glyphSep)
			if err != nil {
				// Tokens may be secret; keep them out of the error.
				a.logger.Debug("decode failed", "tokens", len(tokens))
				return usageErrorf("invalid glyph input")
			}

			var b strings.Builder
			if !phraseOnly {
				for i, tok := range tokens {
					fmt.Fprintf(&b, "%s → %s\n", glyph.InsertSep(tok, a.glyphSep), decoded[i])
				}
				b.WriteString("Phrase: ")
			}
			b.WriteString(strings.Join(decoded, " "))
			b.WriteByte('\n')
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return classify(err)
		},
	}
	cmd.Flags().BoolVar(&phraseOnly, "phrase-only", false, "print only the recovered phrase")
	return cmd
}

// splitTokens joins args, drops whitespace and the glyph separator, and
// cuts the remainder into Len-rune tokens. Tokens may therefore be passed
// as separate arguments, one quoted string, or with glyphs spaced apart.
func splitTokens(args []string, sep string) ([]string, bool) {
	runes := []rune(glyph.StripSep(strings.Join(args, ""), sep))
	if len(runes) == 0 || len(runes)%glyph.Len != 0 {
		return nil, false
	}
	out := make([]string, 0, len(runes)/glyph.Len)
	for i := 0; i < len(runes); i += glyph.Len {
		out = append(out, string(runes[i:i+glyph.Len]))
	}
	return out, true
}
