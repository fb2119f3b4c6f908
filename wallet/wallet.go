// Package wallet implements the tool's operations: each one loads a named
// credential from the local keystore, performs at most one network exchange
// and returns a printable result.
package wallet

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/willdougadams/simple-solana-wallet/internal/keystore"
)

// Network is the remote collaborator: a Solana RPC endpoint. Every method
// blocks until the network confirms the operation.
type Network interface {
	Balance(ctx context.Context, account solana.PublicKey) (uint64, error)
	RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error)
	TransferSOL(ctx context.Context, from solana.PrivateKey, to solana.PublicKey, lamports uint64) (solana.Signature, error)
	CreateMint(ctx context.Context, payer solana.PrivateKey, mint solana.PrivateKey, decimals uint8, initialSupply uint64) (solana.Signature, error)
	TransferToken(ctx context.Context, from solana.PrivateKey, to solana.PublicKey, mint solana.PublicKey, amount uint64, decimals uint8) (solana.Signature, error)
}

// Quoter supplies a SOL/USD spot rate for balance display.
type Quoter interface {
	SOLToUSDRate(ctx context.Context) (string, error)
}

// Wallet wires the keystore to the network client.
type Wallet struct {
	store  *keystore.Keystore
	net    Network
	quoter Quoter // optional; nil disables the USD estimate
	log    *zap.Logger
}

// New creates a Wallet. quoter may be nil.
func New(store *keystore.Keystore, net Network, quoter Quoter, log *zap.Logger) *Wallet {
	if log == nil {
		log = zap.NewNop()
	}
	return &Wallet{store: store, net: net, quoter: quoter, log: log}
}
