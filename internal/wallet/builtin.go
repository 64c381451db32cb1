package wallet

// presets mirrors the wallets the tool knows about out of the box.
var presets = []Profile{
	{
		Key:        "ledger",
		Name:       "Ledger",
		Technology: "BIP39",
		WordCounts: []int{24},
		Notes:      "Hardware wallet with optional passphrase support.",
	},
	{
		Key:        "trezor",
		Name:       "Trezor",
		Technology: "BIP39",
		WordCounts: []int{12, 24},
		Notes:      "Supports 12 or 24-word seed phrases.",
	},
	{
		Key:        "metamask",
		Name:       "MetaMask",
		Technology: "BIP39",
		WordCounts: []int{12},
		Notes:      "Browser wallet that uses 12-word mnemonics.",
	},
	{
		Key:        "trust",
		Name:       "Trust Wallet",
		Technology: "BIP39",
		WordCounts: []int{12},
		Notes:      "Mobile wallet with 12-word recovery phrases.",
	},
	{
		Key:        "coinbase",
		Name:       "Coinbase Wallet",
		Technology: "BIP39",
		WordCounts: []int{12},
		Notes:      "Coinbase's self-custody wallet.",
	},
	{
		Key:        "keystone",
		Name:       "Keystone",
		Technology: "BIP39 or SLIP39 (Shamir)",
		WordCounts: []int{12, 24},
		Notes:      "Air-gapped hardware wallet; Shamir backups require specialized handling.",
	},
	{
		Key:        "safe",
		Name:       "Safe (formerly Gnosis Safe)",
		Technology: "BIP39",
		WordCounts: []int{12},
		Notes:      "Multi-signature smart contract wallet.",
	},
	{
		Key:        "bitbox",
		Name:       "BitBox02",
		Technology: "BIP39",
		WordCounts: []int{12, 24},
		Notes:      "Swiss-made hardware wallet.",
	},
	{
		Key:        "edge",
		Name:       "Edge Wallet",
		Technology: "Edge Mnemonic",
		WordCounts: []int{12},
		Notes:      "Uses Edge's own mnemonic scheme but length aligns with BIP39.",
	},
}

var builtin = func() *Registry {
	r, err := NewRegistry(presets...)
	if err != nil {
		panic("wallet: bad builtin presets: " + err.Error())
	}
	return r
}()

// Builtin returns the registry of bundled wallet presets.
func Builtin() *Registry {
	return builtin
}
