package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedriot/internal/config"
	"seedriot/internal/glyph"
	"seedriot/internal/phrase"
	"seedriot/internal/plan"
	"seedriot/internal/ui"
	"seedriot/internal/wallet"
	"seedriot/internal/wordlist"
)

func testDeps(t *testing.T) deps {
	t.Helper()
	stdin, err := os.Open(os.DevNull)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stdin.Close() })
	return deps{
		registry:  wallet.Builtin(),
		generator: phrase.New(nil),
		stdin:     stdin,
	}
}

func writeWords(t *testing.T, n int) (string, []string) {
	t.Helper()
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("word%04d", i)
	}
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o600))
	return path, words
}

func run(t *testing.T, d deps, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(d)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	return exitErr.Code
}

func reportLines(t *testing.T, out string) []string {
	t.Helper()
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func assertPhrase(t *testing.T, line string, n int, words []string) {
	t.Helper()
	require.True(t, strings.HasPrefix(line, "Seed phrase: "), line)
	got := strings.Fields(strings.TrimPrefix(line, "Seed phrase: "))
	require.Len(t, got, n)
	for _, w := range got {
		assert.Contains(t, words, w)
	}
}

func TestGenerate_WalletDefault(t *testing.T) {
	path, words := writeWords(t, wordlist.MinWords)
	out, _, err := run(t, testDeps(t), "--wallet", "TREZOR", "--wordlist", path)
	require.NoError(t, err)

	lines := reportLines(t, out)
	require.Len(t, lines, 4)
	assert.Equal(t, "Wallet: Trezor", lines[0])
	assert.Equal(t, "Technology: BIP39", lines[1])
	assert.Equal(t, "Words: 12", lines[2])
	assertPhrase(t, lines[3], 12, words)
}

func TestGenerate_WalletExplicitCount(t *testing.T) {
	path, words := writeWords(t, wordlist.MinWords)
	out, _, err := run(t, testDeps(t), "--wallet", "trezor", "--word-count", "24", "--wordlist", path)
	require.NoError(t, err)

	lines := reportLines(t, out)
	assert.Equal(t, "Words: 24", lines[2])
	assertPhrase(t, lines[3], 24, words)
}

func TestGenerate_UnsupportedCount(t *testing.T) {
	path, _ := writeWords(t, wordlist.MinWords)
	out, _, err := run(t, testDeps(t), "--wallet", "trezor", "--word-count", "16", "--wordlist", path)
	require.ErrorIs(t, err, plan.ErrUsage)
	assert.Equal(t, ExitUsage, exitCode(t, err))
	assert.Contains(t, err.Error(), "[12 24]")
	assert.Empty(t, out)
}

func TestGenerate_Custom(t *testing.T) {
	path, words := writeWords(t, wordlist.MinWords)
	out, _, err := run(t, testDeps(t), "--word-count", "15", "--wordlist", path)
	require.NoError(t, err)

	lines := reportLines(t, out)
	require.Len(t, lines, 4)
	assert.Equal(t, "Wallet: Custom", lines[0])
	assert.Equal(t, "Technology: Custom", lines[1])
	assert.Equal(t, "Words: 15", lines[2])
	assertPhrase(t, lines[3], 15, words)
}

func TestGenerate_NeedsWalletOrCount(t *testing.T) {
	// The wordlist is missing too, but the request is rejected first.
	out, _, err := run(t, testDeps(t), "--wordlist", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, plan.ErrUsage)
	assert.Equal(t, ExitUsage, exitCode(t, err))
	assert.Empty(t, out)
}

func TestGenerate_NonPositiveCount(t *testing.T) {
	path, _ := writeWords(t, wordlist.MinWords)
	for _, n := range []string{"0", "-3"} {
		_, _, err := run(t, testDeps(t), "--word-count", n, "--wordlist", path)
		require.ErrorIs(t, err, plan.ErrUsage)
		assert.Equal(t, ExitUsage, exitCode(t, err))
	}
}

func TestGenerate_HugeWordCount(t *testing.T) {
	path, _ := writeWords(t, wordlist.MinWords)
	for _, n := range []string{"1025", "4611686018427387904"} {
		out, _, err := run(t, testDeps(t), "--word-count", n, "--wordlist", path)
		require.ErrorIs(t, err, plan.ErrUsage)
		assert.Equal(t, ExitUsage, exitCode(t, err))
		assert.Contains(t, err.Error(), "at most 1024")
		assert.Empty(t, out)
	}
}

func TestGenerate_BadWordCountFlag(t *testing.T) {
	_, _, err := run(t, testDeps(t), "--word-count", "twelve")
	assert.Equal(t, ExitUsage, exitCode(t, err))
}

func TestGenerate_UnknownWallet(t *testing.T) {
	path, _ := writeWords(t, wordlist.MinWords)
	_, _, err := run(t, testDeps(t), "--wallet", "exodus", "--wordlist", path)
	require.ErrorIs(t, err, plan.ErrUnknownWallet)
	assert.Equal(t, ExitUsage, exitCode(t, err))
	assert.Contains(t, err.Error(), "exodus")
}

func TestGenerate_WordlistErrors(t *testing.T) {
	_, _, err := run(t, testDeps(t), "--wallet", "ledger", "--wordlist", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, wordlist.ErrNotFound)
	assert.Equal(t, ExitFailure, exitCode(t, err))

	short, _ := writeWords(t, wordlist.MinWords-1)
	out, _, err := run(t, testDeps(t), "--wallet", "ledger", "--wordlist", short)
	require.ErrorIs(t, err, wordlist.ErrInvalid)
	assert.Equal(t, ExitFailure, exitCode(t, err))
	assert.Empty(t, out)
}

func TestListWallets_IgnoresEverythingElse(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	out, _, err := run(t, testDeps(t),
		"--list-wallets",
		"--wordlist", missing,
		"--config", missing,
		"--wallet", "nosuch",
		"--word-count", "-1",
	)
	require.NoError(t, err)
	assert.Equal(t, ui.Listing(wallet.Builtin().All()), out)

	blocks := strings.Split(strings.TrimSuffix(out, "\n"), "\n\n")
	require.Len(t, blocks, 9)
	assert.Equal(t, "BitBox02 (bitbox)\n  Technology: BIP39\n  Supported lengths: 12, 24\n  Notes: Swiss-made hardware wallet.", blocks[0])
	assert.True(t, strings.HasPrefix(blocks[8], "Trust Wallet (trust)"))
}

func TestGenerate_Glyphs_RoundTripThroughDecode(t *testing.T) {
	path, _ := writeWords(t, wordlist.MinWords)
	args := []string{"--wordlist", path, "--glyph-key", "0123456789abcdef0123456789abcdef", "--glyph-kdf", "none"}

	out, _, err := run(t, testDeps(t), append([]string{"--wallet", "metamask", "--glyphs"}, args...)...)
	require.NoError(t, err)
	lines := reportLines(t, out)
	require.Len(t, lines, 5)
	require.True(t, strings.HasPrefix(lines[4], "Glyphs: "))
	glyphs := strings.TrimPrefix(lines[4], "Glyphs: ")
	phraseWords := strings.TrimPrefix(lines[3], "Seed phrase: ")

	decoded, _, err := run(t, testDeps(t), append(append([]string{"decode", "--phrase-only"}, args...), glyphs)...)
	require.NoError(t, err)
	assert.Equal(t, phraseWords+"\n", decoded)

	// Another key gives different words back.
	other, _, err := run(t, testDeps(t), "decode", "--phrase-only", "--wordlist", path,
		"--glyph-key", "ffffffffffffffffffffffffffffffff", "--glyph-kdf", "none", glyphs)
	require.NoError(t, err)
	assert.NotEqual(t, phraseWords+"\n", other)
}

func TestGenerate_GlyphsWithSeparator(t *testing.T) {
	path, _ := writeWords(t, wordlist.MinWords)
	out, _, err := run(t, testDeps(t), "--word-count", "2", "--glyphs", "--glyph-sep", "·", "--wordlist", path)
	require.NoError(t, err)
	lines := reportLines(t, out)
	glyphs := strings.TrimPrefix(lines[4], "Glyphs: ")
	assert.Equal(t, 2*(glyph.Len-1), strings.Count(glyphs, "·"))

	decoded, _, err := run(t, testDeps(t), "decode", "--glyph-sep", "·", "--wordlist", path, glyphs)
	require.NoError(t, err)
	assert.Contains(t, decoded, "Phrase: "+strings.TrimPrefix(lines[3], "Seed phrase: "))
}

func TestGenerate_GlyphsRejectWeakKey(t *testing.T) {
	path, _ := writeWords(t, wordlist.MinWords)
	out, _, err := run(t, testDeps(t), "--wallet", "trust", "--glyphs", "--glyph-key", "short", "--glyph-kdf", "none", "--wordlist", path)
	require.ErrorIs(t, err, glyph.ErrWeakKey)
	assert.Equal(t, ExitUsage, exitCode(t, err))
	assert.Empty(t, out)

	_, _, err = run(t, testDeps(t), "--wallet", "trust", "--glyphs", "--glyph-key", "short", "--glyph-kdf", "none", "--allow-weak-key", "--wordlist", path)
	require.NoError(t, err)
}

func TestGenerate_GlyphsNeedSmallList(t *testing.T) {
	path, _ := writeWords(t, glyph.Capacity+1)
	_, _, err := run(t, testDeps(t), "--wallet", "trust", "--glyphs", "--wordlist", path)
	require.ErrorIs(t, err, glyph.ErrCapacity)
	assert.Equal(t, ExitUsage, exitCode(t, err))

	// Without --glyphs the same list is fine.
	_, _, err = run(t, testDeps(t), "--wallet", "trust", "--wordlist", path)
	require.NoError(t, err)
}

func TestGenerate_GlyphPromptNeedsTerminal(t *testing.T) {
	path, _ := writeWords(t, wordlist.MinWords)
	_, _, err := run(t, testDeps(t), "--wallet", "trust", "--glyphs", "--glyph-prompt", "--wordlist", path)
	require.ErrorIs(t, err, ui.ErrNoTerminal)
	assert.Equal(t, ExitUsage, exitCode(t, err))
}

func TestDecode_InvalidInput(t *testing.T) {
	path, _ := writeWords(t, wordlist.MinWords)
	for _, in := range []string{"△□○", "abcd", "☆☆☆☆"} {
		_, _, err := run(t, testDeps(t), "decode", "--wordlist", path, in)
		assert.Equal(t, ExitUsage, exitCode(t, err), "input %q", in)
		assert.NotContains(t, err.Error(), in)
	}
}

func TestGenerate_QR(t *testing.T) {
	path, _ := writeWords(t, wordlist.MinWords)
	out, _, err := run(t, testDeps(t), "--wallet", "ledger", "--qr", "--wordlist", path)
	require.NoError(t, err)
	lines := reportLines(t, out)
	require.Greater(t, len(lines), 10)
	assert.Equal(t, "", lines[4])
	assert.Contains(t, lines[5], "█")
}

func TestGenerate_ConfigWordlist(t *testing.T) {
	cfgPath, words := writeWords(t, wordlist.MinWords)
	other, _ := writeWords(t, wordlist.MinWords-10)

	cfgFile := filepath.Join(t.TempDir(), "seedriot.toml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(fmt.Sprintf("wordlist = %q\nverbose = true\n", cfgPath)), 0o600))

	out, errOut, err := run(t, testDeps(t), "--config", cfgFile, "--word-count", "3")
	require.NoError(t, err)
	line := reportLines(t, out)[3]
	assertPhrase(t, line, 3, words)
	assert.Contains(t, errOut, "loaded wordlist")
	assert.NotContains(t, errOut, strings.TrimPrefix(line, "Seed phrase: "), "phrase must never be logged")

	// An explicit flag wins over the config file.
	_, _, err = run(t, testDeps(t), "--config", cfgFile, "--word-count", "3", "--wordlist", other)
	require.ErrorIs(t, err, wordlist.ErrInvalid)
}

func TestGenerate_MissingConfig(t *testing.T) {
	_, _, err := run(t, testDeps(t), "--config", filepath.Join(t.TempDir(), "nope.toml"), "--word-count", "3")
	require.ErrorIs(t, err, config.ErrNotFound)
	assert.Equal(t, ExitFailure, exitCode(t, err))
}

func TestGenerate_DeterministicSource(t *testing.T) {
	path, words := writeWords(t, wordlist.MinWords)
	d := testDeps(t)
	d.generator = phrase.New(&fixedSource{vals: []int{7, 2047, 7}})

	out, _, err := run(t, d, "--word-count", "3", "--wordlist", path)
	require.NoError(t, err)
	assert.Equal(t, "Seed phrase: "+words[7]+" "+words[2047]+" "+words[7], reportLines(t, out)[3])
}

type fixedSource struct {
	vals []int
	pos  int
}

func (s *fixedSource) IntN(n int) int {
	v := s.vals[s.pos%len(s.vals)] % n
	s.pos++
	return v
}

func TestWordlistExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "demo_wordlist.txt")

	out, _, err := run(t, testDeps(t), "wordlist", "export", path)
	require.NoError(t, err)
	assert.Equal(t, "Wrote 2048 words to "+path+"\n", out)

	words, err := wordlist.Load(path)
	require.NoError(t, err)
	assert.Equal(t, wordlist.Demo(), words)

	_, _, err = run(t, testDeps(t), "wordlist", "export", path)
	assert.Equal(t, ExitFailure, exitCode(t, err))
	assert.Contains(t, err.Error(), "--force")

	_, _, err = run(t, testDeps(t), "wordlist", "export", "--force", path)
	require.NoError(t, err)

	// The exported list drives generation.
	gen, _, err := run(t, testDeps(t), "--wallet", "edge", "--wordlist", path)
	require.NoError(t, err)
	assertPhrase(t, reportLines(t, gen)[3], 12, words)
}

func TestWordlistExport_UsesWordlistFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	_, _, err := run(t, testDeps(t), "wordlist", "export", "--wordlist", path)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)
}
