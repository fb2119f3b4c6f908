package wallet

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/willdougadams/simple-solana-wallet/internal/common"
	"github.com/willdougadams/simple-solana-wallet/internal/model"
)

// SendToken transfers tokens of the mint recorded under mintName from the
// sender's keypair to the destination. The destination may be a locally
// known wallet name or a literal base58 address.
func (w *Wallet) SendToken(ctx context.Context, sender, destination, amount, mintName string) (*model.TransferResult, error) {
	key, err := w.store.Keypair(sender)
	if err != nil {
		return nil, err
	}

	mint, err := w.store.MintAddress(mintName)
	if err != nil {
		return nil, err
	}

	toAddress, err := w.store.ResolveAddress(destination)
	if err != nil {
		return nil, err
	}
	toPubkey, err := solana.PublicKeyFromBase58(toAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid destination address %q: %w", toAddress, err)
	}

	amountUnits, err := common.ParseAmount(amount, common.TokenDecimals)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	sig, err := w.net.TransferToken(ctx, key, toPubkey, mint, amountUnits, common.TokenDecimals)
	if err != nil {
		return nil, err
	}

	return &model.TransferResult{
		From:      key.PublicKey().String(),
		To:        toPubkey.String(),
		Amount:    common.FormatAmount(amountUnits, common.TokenDecimals),
		Signature: sig.String(),
	}, nil
}
