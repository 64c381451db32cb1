// Package plan reconciles a requested wallet and word count against the
// wallet registry. The result is either a Plan naming the wallet, its
// technology label and the phrase length, or a usage error.
package plan

import (
	"errors"
	"fmt"
	"strings"

	"seedriot/internal/phrase"
	"seedriot/internal/wallet"
)

// CustomLabel names both wallet and technology when no preset is used.
const CustomLabel = "Custom"

// MaxWordCount is the longest custom phrase Resolve accepts.
const MaxWordCount = phrase.MaxCount

var (
	// ErrUsage matches every error Resolve returns.
	ErrUsage = errors.New("usage error")
	// ErrUnknownWallet matches UnknownWalletError.
	ErrUnknownWallet = errors.New("unknown wallet")
)

// Request is what the user asked for. HasWordCount distinguishes an
// omitted --word-count from an explicit zero.
type Request struct {
	Wallet       string
	WordCount    int
	HasWordCount bool
	WordlistPath string
}

// Plan is the effective wallet/technology/length triple for one run.
type Plan struct {
	WalletName string
	Technology string
	WordCount  int
	Custom     bool
}

// UsageError reports a contradictory or insufficient request.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// Is lets errors.Is(err, ErrUsage) match.
func (e *UsageError) Is(target error) bool { return target == ErrUsage }

// UnknownWalletError reports a wallet key missing from the registry.
type UnknownWalletError struct {
	Name string
}

func (e *UnknownWalletError) Error() string {
	return fmt.Sprintf("unknown wallet %q; use --list-wallets to inspect available options", e.Name)
}

// Is lets errors.Is match both ErrUnknownWallet and ErrUsage.
func (e *UnknownWalletError) Is(target error) bool {
	return target == ErrUnknownWallet || target == ErrUsage
}

// Resolve evaluates the request against reg. It has no side effects, so the
// same request and registry always give the same result.
func Resolve(req Request, reg *wallet.Registry) (Plan, error) {
	var (
		profile wallet.Profile
		found   bool
	)
	if name := strings.TrimSpace(req.Wallet); name != "" {
		profile, found = reg.Lookup(name)
		if !found {
			return Plan{}, &UnknownWalletError{Name: req.Wallet}
		}
	}

	if !found && !req.HasWordCount {
		return Plan{}, &UsageError{Msg: "specify --wallet or --word-count to control the mnemonic length"}
	}

	if !found {
		if req.WordCount <= 0 {
			return Plan{}, &UsageError{Msg: fmt.Sprintf("word count must be positive, got %d", req.WordCount)}
		}
		if req.WordCount > MaxWordCount {
			return Plan{}, &UsageError{Msg: fmt.Sprintf("word count must be at most %d, got %d", MaxWordCount, req.WordCount)}
		}
		return Plan{
			WalletName: CustomLabel,
			Technology: CustomLabel,
			WordCount:  req.WordCount,
			Custom:     true,
		}, nil
	}

	count := profile.Default()
	if req.HasWordCount {
		if !profile.Supports(req.WordCount) {
			return Plan{}, &UsageError{Msg: fmt.Sprintf("%s supports %v, but %d was requested", profile.Name, profile.WordCounts, req.WordCount)}
		}
		count = req.WordCount
	}
	return Plan{
		WalletName: profile.Name,
		Technology: profile.Technology,
		WordCount:  count,
	}, nil
}
