package wallet

import (
	"go.uber.org/zap"

	"github.com/willdougadams/simple-solana-wallet/internal/model"
)

// Generate creates a new keypair under name. When the name is already taken
// the existing key file is left untouched and the result carries
// Created=false; the collision is reported, not an error.
func (w *Wallet) Generate(name string) (*model.GenerateResult, error) {
	key, created, err := w.store.Generate(name)
	if err != nil {
		return nil, err
	}
	if !created {
		return &model.GenerateResult{Name: name, Created: false}, nil
	}

	address := key.PublicKey().String()
	w.log.Debug("generated keypair", zap.String("name", name), zap.String("address", address))

	return &model.GenerateResult{
		Name:    name,
		Address: address,
		Created: true,
	}, nil
}
