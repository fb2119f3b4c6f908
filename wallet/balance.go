package wallet

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/willdougadams/simple-solana-wallet/internal/common"
	"github.com/willdougadams/simple-solana-wallet/internal/model"
)

// Balance queries the native balance of the keypair stored under name. The
// USD estimate is best effort: a failed quote is logged and the field left
// empty rather than failing the command.
func (w *Wallet) Balance(ctx context.Context, name string) (*model.BalanceResult, error) {
	key, err := w.store.Keypair(name)
	if err != nil {
		return nil, err
	}

	lamports, err := w.net.Balance(ctx, key.PublicKey())
	if err != nil {
		return nil, err
	}

	result := &model.BalanceResult{
		Address:  key.PublicKey().String(),
		Lamports: lamports,
		SOL:      common.LamportsToSOL(lamports),
	}

	if w.quoter != nil {
		rate, err := w.quoter.SOLToUSDRate(ctx)
		if err != nil {
			w.log.Warn("failed to get SOL/USD rate", zap.Error(err))
			return result, nil
		}
		// Float only for display, never for amounts.
		solFloat, solErr := strconv.ParseFloat(result.SOL, 64)
		rateFloat, rateErr := strconv.ParseFloat(rate, 64)
		if solErr != nil || rateErr != nil {
			// Same best-effort policy as a failed quote: skip the
			// estimate rather than print a bogus 0.00.
			w.log.Warn("unusable SOL/USD rate", zap.String("rate", rate))
			return result, nil
		}
		result.USD = fmt.Sprintf("%.2f", solFloat*rateFloat)
	}

	return result, nil
}
