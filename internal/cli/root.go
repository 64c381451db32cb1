// Package cli defines the seedriot command line.
//
// Commands
//
//   - seedriot                   Generate a seed phrase (--wallet and/or --word-count)
//   - seedriot --list-wallets    Print the wallet presets
//   - seedriot wordlist export   Write the bundled BIP39 demo wordlist
//   - seedriot decode            Map glyph codes back to words
//
// Every error is returned to Execute wrapped in an ExitError carrying the
// process exit code; nothing is written to stdout until a command has all
// of its output ready.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seedriot/internal/config"
	"seedriot/internal/glyph"
	"seedriot/internal/phrase"
	"seedriot/internal/ui"
	"seedriot/internal/wallet"
	"seedriot/internal/wordlist"
)

// Version is the release version (set via -ldflags).
var Version = "dev"

// deps are the collaborators commands run against. Tests swap them out.
type deps struct {
	registry  *wallet.Registry
	generator *phrase.Generator
	stdin     *os.File
}

func defaultDeps() deps {
	return deps{
		registry:  wallet.Builtin(),
		generator: phrase.New(nil),
		stdin:     os.Stdin,
	}
}

// app carries parsed flags and resolved settings for one invocation.
type app struct {
	deps

	// persistent
	cfgFile      string
	wordlistPath string
	verbose      bool
	noColor      bool
	glyphKey     string
	glyphPrompt  bool
	glyphKDF     string
	allowWeakKey bool
	glyphSep     string

	// generation
	walletKey   string
	wordCount   int
	listWallets bool
	glyphs      bool
	qr          bool

	cfg    *config.Config
	logger *log.Logger
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	root := newRootCmd(defaultDeps())
	return fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	)
}

func newRootCmd(d deps) *cobra.Command {
	a := &app{deps: d}

	root := &cobra.Command{
		Use:   "seedriot",
		Short: "Generate demo wallet seed phrases",
		Long: `seedriot draws seed phrase words uniformly at random from a wordlist,
using the phrase lengths of well-known wallet products.

The output simulates a recovery phrase for demos and training. No BIP39 or
SLIP39 checksum is computed and no keys are derived from it.`,
		Example: `  seedriot --list-wallets
  seedriot --wallet trezor
  seedriot --wallet trezor --word-count 24
  seedriot --word-count 15 --wordlist words.txt
  seedriot wordlist export`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runGenerate,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsage, Err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (TOML)")
	pf.StringVar(&a.wordlistPath, "wordlist", wordlist.DefaultPath, "path to a newline-delimited wordlist")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging on stderr")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	pf.StringVar(&a.glyphKey, "glyph-key", "", "key that reorders the glyph mapping")
	pf.BoolVar(&a.glyphPrompt, "glyph-prompt", false, "prompt for the glyph key without echo; overrides --glyph-key")
	pf.StringVar(&a.glyphKDF, "glyph-kdf", glyph.KDFArgon2id, "glyph key derivation: argon2id or none")
	pf.BoolVar(&a.allowWeakKey, "allow-weak-key", false, "accept glyph keys below the strength minimum")
	pf.StringVar(&a.glyphSep, "glyph-sep", "", "separator between glyphs when printing; stripped when decoding")

	f := root.Flags()
	f.StringVar(&a.walletKey, "wallet", "", "wallet identifier (see --list-wallets)")
	f.IntVar(&a.wordCount, "word-count", 0, "number of words; must be supported by --wallet when both are given")
	f.BoolVar(&a.listWallets, "list-wallets", false, "display supported wallet presets and exit")
	f.BoolVar(&a.glyphs, "glyphs", false, "also print each word as a 4-glyph code")
	f.BoolVar(&a.qr, "qr", false, "also print the phrase as a terminal QR code")

	root.AddCommand(newWordlistCmd(a), newDecodeCmd(a))
	return root
}

// setup loads the config file and applies it underneath explicitly set
// flags, then configures color and logging.
func (a *app) setup(cmd *cobra.Command) error {
	a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	flags := cmd.Flags()
	if !flags.Changed("wordlist") {
		a.wordlistPath = cfg.Wordlist
	}
	if !flags.Changed("glyph-kdf") {
		a.glyphKDF = cfg.Glyph.KDF
	}
	if cfg.Verbose && !a.verbose {
		a.verbose = true
		a.logger.SetLevel(log.DebugLevel)
	}
	colorMode := cfg.Color
	if a.noColor {
		colorMode = "never"
	}
	ui.SetColorEnabled(colorFor(cmd.OutOrStdout(), colorMode))

	a.logger.Debug("configured", "config", a.cfgFile, "wordlist", a.wordlistPath, "color", ui.ColorEnabled())
	return nil
}

func colorFor(w io.Writer, mode string) bool {
	f, _ := w.(*os.File)
	return ui.ColorMode(mode, f)
}

// keyPolicy combines config and flags into the glyph key policy.
func (a *app) keyPolicy() glyph.KeyPolicy {
	p := a.cfg.Glyph.KeyPolicy()
	p.KDF = a.glyphKDF
	p.AllowWeak = a.allowWeakKey
	return p
}

// glyphSeed returns the permutation seed for the configured glyph key.
func (a *app) glyphSeed(cmd *cobra.Command, minBits int) ([32]byte, error) {
	key := a.glyphKey
	if a.glyphPrompt {
		k, err := ui.PromptSecret(a.stdin, cmd.ErrOrStderr(), "glyph key")
		if err != nil {
			return [32]byte{}, err
		}
		key = k
	}
	policy := a.keyPolicy()
	a.logger.Debug("deriving glyph seed", "keyed", key != "", "kdf", policy.KDF)
	return glyph.SeedFor(key, minBits, policy)
}
