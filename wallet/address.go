package wallet

// Address returns the public address of the keypair stored under name.
func (w *Wallet) Address(name string) (string, error) {
	key, err := w.store.Keypair(name)
	if err != nil {
		return "", err
	}
	return key.PublicKey().String(), nil
}
