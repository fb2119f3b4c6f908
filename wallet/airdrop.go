package wallet

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/willdougadams/simple-solana-wallet/internal/common"
	"github.com/willdougadams/simple-solana-wallet/internal/model"
)

// airdropLamports is the fixed faucet grant requested per invocation.
const airdropLamports = 1 * solana.LAMPORTS_PER_SOL

// Airdrop requests test-network funds for the keypair stored under name and
// waits for the airdrop to confirm.
func (w *Wallet) Airdrop(ctx context.Context, name string) (*model.TransferResult, error) {
	key, err := w.store.Keypair(name)
	if err != nil {
		return nil, err
	}

	sig, err := w.net.RequestAirdrop(ctx, key.PublicKey(), airdropLamports)
	if err != nil {
		return nil, err
	}

	return &model.TransferResult{
		To:        key.PublicKey().String(),
		Amount:    common.LamportsToSOL(airdropLamports),
		Signature: sig.String(),
	}, nil
}
