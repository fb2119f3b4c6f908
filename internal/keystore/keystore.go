package keystore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// Sentinel errors for keystore lookups. Callers match with errors.Is.
var (
	ErrNotFound = errors.New("not found")
	ErrExists   = errors.New("already exists")
	ErrCorrupt  = errors.New("corrupt key file")
)

const secretKeyLen = 64 // full ed25519 private key

// Keystore maps user-chosen names to signing keypairs and mint records,
// backed by flat files in two directories. One file per name; files are
// written once and never mutated.
type Keystore struct {
	keysDir  string
	mintsDir string
}

// New returns a Keystore rooted at the given directories. The directories
// are created lazily on first write.
func New(keysDir, mintsDir string) *Keystore {
	return &Keystore{keysDir: keysDir, mintsDir: mintsDir}
}

// Generate creates a fresh keypair under name and persists its secret as
// comma-separated byte values. When a keypair already exists under name the
// call is a no-op: it returns created=false and a nil key, leaving the
// existing file untouched. This soft collision policy is deliberate and
// differs from CreateMintRecord, which fails hard.
func (k *Keystore) Generate(name string) (key solana.PrivateKey, created bool, err error) {
	if err := validateName(name); err != nil {
		return nil, false, err
	}
	if err := os.MkdirAll(k.keysDir, 0o700); err != nil {
		return nil, false, fmt.Errorf("failed to create keys directory: %w", err)
	}

	// O_EXCL makes the existence check and the write a single atomic step.
	f, err := os.OpenFile(k.keyPath(name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to create key file: %w", err)
	}
	defer f.Close()

	wallet := solana.NewWallet()
	if _, err := f.WriteString(encodeSecret(wallet.PrivateKey)); err != nil {
		// Do not leave a partial blob behind: it would read as Corrupt
		// and make the name look taken.
		os.Remove(f.Name())
		return nil, false, fmt.Errorf("failed to write key file: %w", err)
	}
	return wallet.PrivateKey, true, nil
}

// Keypair loads the signing keypair stored under name.
func (k *Keystore) Keypair(name string) (solana.PrivateKey, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(k.keyPath(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("keypair %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}
	key, err := decodeSecret(string(data))
	if err != nil {
		return nil, fmt.Errorf("keypair %q: %w: %v", name, ErrCorrupt, err)
	}
	return key, nil
}

// ResolveAddress interprets token as either the name of a locally stored
// keypair or a literal base58 address. When keys/<token> exists the stored
// keypair's public address is returned; otherwise token passes through
// unchanged. The literal branch is not validated here — a malformed address
// only surfaces when the network client parses it.
func (k *Keystore) ResolveAddress(token string) (string, error) {
	if _, err := os.Stat(k.keyPath(token)); err == nil {
		key, err := k.Keypair(token)
		if err != nil {
			return "", err
		}
		return key.PublicKey().String(), nil
	}
	return token, nil
}

// CreateMintRecord persists the mint address under name. Unlike Generate,
// a taken name is a hard failure (ErrExists).
func (k *Keystore) CreateMintRecord(name string, mint solana.PublicKey) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(k.mintsDir, 0o700); err != nil {
		return fmt.Errorf("failed to create mints directory: %w", err)
	}

	f, err := os.OpenFile(k.mintPath(name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("mint %q: %w", name, ErrExists)
		}
		return fmt.Errorf("failed to create mint record: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(mint.String()); err != nil {
		return fmt.Errorf("failed to write mint record: %w", err)
	}
	return nil
}

// MintAddress loads the mint address recorded under name.
func (k *Keystore) MintAddress(name string) (solana.PublicKey, error) {
	if err := validateName(name); err != nil {
		return solana.PublicKey{}, err
	}
	data, err := os.ReadFile(k.mintPath(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return solana.PublicKey{}, fmt.Errorf("mint %q: %w", name, ErrNotFound)
		}
		return solana.PublicKey{}, fmt.Errorf("failed to read mint record: %w", err)
	}
	mint, err := solana.PublicKeyFromBase58(strings.TrimSpace(string(data)))
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("mint %q: %w: %v", name, ErrCorrupt, err)
	}
	return mint, nil
}

func (k *Keystore) keyPath(name string) string {
	return filepath.Join(k.keysDir, name)
}

func (k *Keystore) mintPath(name string) string {
	return filepath.Join(k.mintsDir, name)
}

// validateName rejects names that are empty or would escape the keystore
// directory. Names double as filenames.
func validateName(name string) error {
	if name == "" {
		return errors.New("name must not be empty")
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("name %q is not filesystem-safe", name)
	}
	return nil
}

// encodeSecret renders the secret key as comma-separated byte values,
// e.g. "12,0,255,...". This matches the on-disk format of earlier versions
// of the tool, so existing key files keep working.
func encodeSecret(key solana.PrivateKey) string {
	parts := make([]string, len(key))
	for i, b := range key {
		parts[i] = strconv.Itoa(int(b))
	}
	return strings.Join(parts, ",")
}

func decodeSecret(s string) (solana.PrivateKey, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != secretKeyLen {
		return nil, fmt.Errorf("expected %d byte values, got %d", secretKeyLen, len(parts))
	}
	key := make(solana.PrivateKey, secretKeyLen)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("byte %d: %w", i, err)
		}
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("byte %d: value %d out of range", i, v)
		}
		key[i] = byte(v)
	}
	return key, nil
}
