// Package config loads the optional seedriot configuration file.
//
// Only an explicitly named file is read; there is no search path and no
// environment lookup. Flags set on the command line always win over values
// from the file.
//
// Example (TOML):
//
//	wordlist = "/usr/share/seedriot/words.txt"
//	color = "never"
//	verbose = false
//
//	[glyph]
//	kdf = "argon2id"
//	mem_mb = 256
//	time = 3
//	parallel = 1
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"seedriot/internal/glyph"
	"seedriot/internal/wordlist"
)

// ErrNotFound is returned when an explicitly named config file is missing.
var ErrNotFound = errors.New("config file not found")

// Config holds the settings a config file may provide.
type Config struct {
	Wordlist string      `mapstructure:"wordlist"`
	Color    string      `mapstructure:"color"` // auto, always or never
	Verbose  bool        `mapstructure:"verbose"`
	Glyph    GlyphConfig `mapstructure:"glyph"`
}

// GlyphConfig tunes glyph key derivation.
type GlyphConfig struct {
	KDF      string `mapstructure:"kdf"`
	MemMB    uint32 `mapstructure:"mem_mb"`
	Time     uint32 `mapstructure:"time"`
	Parallel uint8  `mapstructure:"parallel"`
}

// KeyPolicy converts the glyph settings into a key policy.
func (g GlyphConfig) KeyPolicy() glyph.KeyPolicy {
	return glyph.KeyPolicy{
		KDF:         g.KDF,
		KDFMemMB:    g.MemMB,
		KDFTime:     g.Time,
		KDFParallel: g.Parallel,
	}
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	p := glyph.DefaultKeyPolicy()
	return &Config{
		Wordlist: wordlist.DefaultPath,
		Color:    "auto",
		Glyph: GlyphConfig{
			KDF:      p.KDF,
			MemMB:    p.KDFMemMB,
			Time:     p.KDFTime,
			Parallel: p.KDFParallel,
		},
	}
}

var (
	colorModes = []string{"auto", "always", "never"}
	fileTypes  = []string{".toml", ".yaml", ".yml", ".json"}
)

// Load returns the defaults when path is empty and otherwise overlays the
// named file on top of them. Files without a recognised extension are
// parsed as TOML.
func Load(path string) (*Config, error) {
	defaults := DefaultConfig()
	if path == "" {
		return defaults, nil
	}

	v := viper.New()
	v.SetDefault("wordlist", defaults.Wordlist)
	v.SetDefault("color", defaults.Color)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("glyph.kdf", defaults.Glyph.KDF)
	v.SetDefault("glyph.mem_mb", defaults.Glyph.MemMB)
	v.SetDefault("glyph.time", defaults.Glyph.Time)
	v.SetDefault("glyph.parallel", defaults.Glyph.Parallel)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	v.SetConfigFile(path)
	if !slices.Contains(fileTypes, strings.ToLower(filepath.Ext(path))) {
		v.SetConfigType("toml")
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if !slices.Contains(colorModes, cfg.Color) {
		return nil, fmt.Errorf("config %s: color must be one of %v, got %q", path, colorModes, cfg.Color)
	}
	if err := cfg.Glyph.KeyPolicy().Validate(); err != nil {
		return nil, fmt.Errorf("config %s: glyph: %w", path, err)
	}
	return &cfg, nil
}
