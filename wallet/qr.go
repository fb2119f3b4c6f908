package wallet

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

const qrSize = 256 // PNG edge length in pixels

// QR writes a QR code PNG of the address stored under name to outPath and
// returns the encoded address.
func (w *Wallet) QR(name, outPath string) (string, error) {
	address, err := w.Address(name)
	if err != nil {
		return "", err
	}
	if err := qrcode.WriteFile(address, qrcode.Medium, qrSize, outPath); err != nil {
		return "", fmt.Errorf("failed to write QR code: %w", err)
	}
	return address, nil
}
