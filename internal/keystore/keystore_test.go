package keystore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Keystore {
	t.Helper()
	dir := t.TempDir()
	return New(filepath.Join(dir, "keys"), filepath.Join(dir, "mints"))
}

func TestGenerateAndKeypair(t *testing.T) {
	ks := newTestStore(t)

	key, created, err := ks.Generate("alice")
	require.NoError(t, err)
	require.True(t, created)
	require.Len(t, []byte(key), 64)

	// Repeated resolution returns the same credential and address.
	got, err := ks.Keypair("alice")
	require.NoError(t, err)
	assert.Equal(t, key, got)

	again, err := ks.Keypair("alice")
	require.NoError(t, err)
	assert.Equal(t, got.PublicKey(), again.PublicKey())
}

func TestGenerateTwiceIsNoOp(t *testing.T) {
	ks := newTestStore(t)

	first, created, err := ks.Generate("alice")
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := ks.Generate("alice")
	require.NoError(t, err, "collision must not be an error")
	assert.False(t, created)
	assert.Nil(t, second)

	// The stored secret is still the first one.
	stored, err := ks.Keypair("alice")
	require.NoError(t, err)
	assert.Equal(t, first, stored)
}

func TestKeypairNotFound(t *testing.T) {
	ks := newTestStore(t)

	_, err := ks.Keypair("nobody")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestKeypairCorrupt(t *testing.T) {
	ks := newTestStore(t)

	require.NoError(t, os.MkdirAll(ks.keysDir, 0o700))

	cases := map[string]string{
		"truncated":    "1,2,3",
		"not-numbers":  "a,b,c",
		"out-of-range": "300," + encodeSecret(make(solana.PrivateKey, 64))[2:],
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, os.WriteFile(ks.keyPath(name), []byte(content), 0o600))
			_, err := ks.Keypair(name)
			require.ErrorIs(t, err, ErrCorrupt)
		})
	}
}

func TestKeypairRoundTripsThroughDisk(t *testing.T) {
	ks := newTestStore(t)

	key, _, err := ks.Generate("alice")
	require.NoError(t, err)

	// The file holds comma-separated byte values that decode back to the
	// same secret.
	data, err := os.ReadFile(ks.keyPath("alice"))
	require.NoError(t, err)
	decoded, err := decodeSecret(string(data))
	require.NoError(t, err)
	assert.Equal(t, key, decoded)
	assert.Equal(t, key.PublicKey(), decoded.PublicKey())
}

func TestResolveAddress(t *testing.T) {
	ks := newTestStore(t)

	key, _, err := ks.Generate("alice")
	require.NoError(t, err)

	// Known name resolves to the stored public address.
	addr, err := ks.ResolveAddress("alice")
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey().String(), addr)

	// Anything else passes through literally, valid address or not.
	external := solana.NewWallet().PublicKey().String()
	addr, err = ks.ResolveAddress(external)
	require.NoError(t, err)
	assert.Equal(t, external, addr)

	addr, err = ks.ResolveAddress("definitely-not-base58")
	require.NoError(t, err)
	assert.Equal(t, "definitely-not-base58", addr)
}

func TestMintRecords(t *testing.T) {
	ks := newTestStore(t)
	mint := solana.NewWallet().PublicKey()

	_, err := ks.MintAddress("coin")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, ks.CreateMintRecord("coin", mint))

	got, err := ks.MintAddress("coin")
	require.NoError(t, err)
	assert.Equal(t, mint, got)

	// Second create with the same name fails hard, unlike Generate.
	err = ks.CreateMintRecord("coin", solana.NewWallet().PublicKey())
	require.ErrorIs(t, err, ErrExists)

	// The original record survives the failed create.
	got, err = ks.MintAddress("coin")
	require.NoError(t, err)
	assert.Equal(t, mint, got)
}

func TestMintRecordCorrupt(t *testing.T) {
	ks := newTestStore(t)

	require.NoError(t, os.MkdirAll(ks.mintsDir, 0o700))
	require.NoError(t, os.WriteFile(ks.mintPath("bad"), []byte("not an address"), 0o600))

	_, err := ks.MintAddress("bad")
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestGenerateFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	keysDir := filepath.Join(dir, "keys")

	// Block directory creation with a regular file in its place.
	require.NoError(t, os.WriteFile(keysDir, nil, 0o600))

	ks := New(keysDir, filepath.Join(dir, "mints"))
	_, _, err := ks.Generate("alice")
	require.Error(t, err)

	// Once the obstruction is gone the name is still usable: nothing
	// half-written marks it as taken or corrupt.
	require.NoError(t, os.Remove(keysDir))
	_, statErr := os.Stat(filepath.Join(keysDir, "alice"))
	assert.True(t, os.IsNotExist(statErr), "failed Generate must not leave a key file")
	key, created, err := ks.Generate("alice")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Len(t, []byte(key), 64)
}

func TestNameValidation(t *testing.T) {
	ks := newTestStore(t)

	for _, name := range []string{"", ".", "..", "a/b", `a\b`} {
		_, _, err := ks.Generate(name)
		assert.Error(t, err, "name %q", name)

		err = ks.CreateMintRecord(name, solana.NewWallet().PublicKey())
		assert.Error(t, err, "name %q", name)
	}
}
