package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/willdougadams/simple-solana-wallet/internal/common"
	"github.com/willdougadams/simple-solana-wallet/internal/keystore"
	"github.com/willdougadams/simple-solana-wallet/internal/model"
)

// Mint creates a new token mint with the minter's keypair as authority,
// mints the initial supply to the minter, and records the mint address under
// name. A taken name fails hard before anything touches the network.
func (w *Wallet) Mint(ctx context.Context, minter, amount, name string) (*model.MintResult, error) {
	payer, err := w.store.Keypair(minter)
	if err != nil {
		return nil, err
	}

	// Fail before the on-chain mint exists, not after.
	if _, err := w.store.MintAddress(name); err == nil {
		return nil, fmt.Errorf("mint %q: %w", name, keystore.ErrExists)
	} else if !errors.Is(err, keystore.ErrNotFound) {
		return nil, err
	}

	supply, err := common.ParseAmount(amount, common.TokenDecimals)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	mint := solana.NewWallet()
	sig, err := w.net.CreateMint(ctx, payer, mint.PrivateKey, common.TokenDecimals, supply)
	if err != nil {
		return nil, err
	}

	if err := w.store.CreateMintRecord(name, mint.PublicKey()); err != nil {
		// The mint exists on chain but could not be recorded; surface the
		// address so it is not lost.
		return nil, fmt.Errorf("mint %s created but not recorded: %w", mint.PublicKey(), err)
	}

	w.log.Debug("created mint",
		zap.String("name", name),
		zap.Stringer("mint", mint.PublicKey()))

	return &model.MintResult{
		Name:      name,
		Mint:      mint.PublicKey().String(),
		Supply:    common.FormatAmount(supply, common.TokenDecimals),
		Signature: sig.String(),
	}, nil
}
