package wallet

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/willdougadams/simple-solana-wallet/internal/common"
	"github.com/willdougadams/simple-solana-wallet/internal/model"
)

// Send submits a native transfer from the keypair stored under name and
// waits for confirmation. The destination may be a locally known wallet name
// or a literal base58 address.
func (w *Wallet) Send(ctx context.Context, name, destination, amount string) (*model.TransferResult, error) {
	key, err := w.store.Keypair(name)
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

	lamports, err := common.SOLToLamports(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	sig, err := w.net.TransferSOL(ctx, key, toPubkey, lamports)
	if err != nil {
		return nil, err
	}

	return &model.TransferResult{
		From:      key.PublicKey().String(),
		To:        toPubkey.String(),
		Amount:    common.LamportsToSOL(lamports),
		Signature: sig.String(),
	}, nil
}
