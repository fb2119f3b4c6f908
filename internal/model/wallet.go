package model

// GenerateResult reports the outcome of generating a named keypair.
type GenerateResult struct {
	Name    string
	Address string
	Created bool // false when the name was already taken (not an error)
}

// BalanceResult holds a wallet's native balance. USD is a best-effort
// estimate and is empty when no quote was available.
type BalanceResult struct {
	Address  string
	Lamports uint64
	SOL      string
	USD      string
}

// TransferResult holds the signature of a confirmed transfer or airdrop.
type TransferResult struct {
	From      string
	To        string
	Amount    string
	Signature string
}

// MintResult reports a newly created token mint.
type MintResult struct {
	Name      string
	Mint      string
	Supply    string
	Signature string
}
