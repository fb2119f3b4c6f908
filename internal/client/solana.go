package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
	sendandconfirmtransaction "github.com/gagliardetto/solana-go/rpc/sendAndConfirmTransaction"
	"github.com/gagliardetto/solana-go/rpc/ws"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/willdougadams/simple-solana-wallet/internal/config"
)

// confirmTimeout bounds every confirmation wait. The RPC library itself
// would block forever on a lost websocket.
const confirmTimeout = 90 * time.Second

// mintAccountSize is the size of an SPL token mint account in bytes.
const mintAccountSize = 82

// SolanaClient is a client for working with Solana RPC. The websocket
// connection used for confirmations is dialed lazily, so commands that never
// wait on a signature stay HTTP-only.
type SolanaClient struct {
	rpcClient  *rpc.Client
	wsURL      string
	commitment rpc.CommitmentType
	log        *zap.Logger

	wsClient *ws.Client
}

// New creates a Solana client from the configuration. RPC calls are
// rate-limited so that batch-y commands stay inside public endpoint quotas.
func New(cfg *config.Config, log *zap.Logger) (*SolanaClient, error) {
	commitment, err := cfg.CommitmentType()
	if err != nil {
		return nil, err
	}

	rpcClient := rpc.NewWithCustomRPCClient(
		rpc.NewWithLimiter(cfg.RPCURL, rate.Every(time.Second), cfg.RPCRateLimit),
	)

	return &SolanaClient{
		rpcClient:  rpcClient,
		wsURL:      cfg.WSURL,
		commitment: commitment,
		log:        log,
	}, nil
}

// Close releases the websocket connection, if one was opened.
func (c *SolanaClient) Close() {
	if c.wsClient != nil {
		c.wsClient.Close()
	}
}

// Balance gets the SOL balance in lamports for the given account.
func (c *SolanaClient) Balance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	balance, err := c.rpcClient.GetBalance(ctx, account, c.commitment)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance.Value, nil
}

// RequestAirdrop requests test-network funds for the account and waits for
// the airdrop transaction to confirm.
func (c *SolanaClient) RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error) {
	sig, err := c.rpcClient.RequestAirdrop(ctx, account, lamports, c.commitment)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to request airdrop: %w", err)
	}
	c.log.Debug("airdrop requested",
		zap.Stringer("account", account),
		zap.Uint64("lamports", lamports),
		zap.Stringer("signature", sig))

	if err := c.confirmSignature(ctx, sig); err != nil {
		return solana.Signature{}, err
	}
	return sig, nil
}

// TransferSOL submits a native transfer and waits for confirmation.
func (c *SolanaClient) TransferSOL(ctx context.Context, from solana.PrivateKey, to solana.PublicKey, lamports uint64) (solana.Signature, error) {
	transferInstruction := system.NewTransferInstruction(
		lamports,
		from.PublicKey(),
		to,
	).Build()

	return c.signAndSend(ctx, []solana.Instruction{transferInstruction}, from)
}

// CreateMint creates a new token mint with the payer as mint authority and
// mints the initial supply to the payer's associated token account, all in
// one transaction signed by both the payer and the new mint account.
func (c *SolanaClient) CreateMint(ctx context.Context, payer solana.PrivateKey, mint solana.PrivateKey, decimals uint8, initialSupply uint64) (solana.Signature, error) {
	payerPubkey := payer.PublicKey()
	mintPubkey := mint.PublicKey()

	rentExempt, err := c.rpcClient.GetMinimumBalanceForRentExemption(
		ctx,
		mintAccountSize,
		rpc.CommitmentFinalized,
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to get rent exemption: %w", err)
	}

	payerATA, _, err := solana.FindAssociatedTokenAddress(payerPubkey, mintPubkey)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to find associated token account address: %w", err)
	}

	instructions := []solana.Instruction{
		system.NewCreateAccountInstruction(
			rentExempt,
			mintAccountSize,
			solana.TokenProgramID,
			payerPubkey,
			mintPubkey,
		).Build(),
		token.NewInitializeMintInstructionBuilder().
			SetDecimals(decimals).
			SetMintAuthority(payerPubkey).
			SetMintAccount(mintPubkey).
			SetSysVarRentPubkeyAccount(solana.SysVarRentPubkey).
			Build(),
		associatedtokenaccount.NewCreateInstruction(
			payerPubkey, // payer
			payerPubkey, // owner
			mintPubkey,  // mint
		).Build(),
		token.NewMintToInstruction(
			initialSupply,
			mintPubkey,
			payerATA,
			payerPubkey,
			[]solana.PublicKey{},
		).Build(),
	}

	c.log.Debug("creating mint",
		zap.Stringer("mint", mintPubkey),
		zap.Uint64("supply", initialSupply))

	return c.signAndSend(ctx, instructions, payer, mint)
}

// TransferToken moves tokens of the given mint from the sender's associated
// token account to the destination's, creating the destination account when
// it does not exist yet.
func (c *SolanaClient) TransferToken(ctx context.Context, from solana.PrivateKey, to solana.PublicKey, mint solana.PublicKey, amount uint64, decimals uint8) (solana.Signature, error) {
	fromPubkey := from.PublicKey()

	sourceTokenAccount, _, err := solana.FindAssociatedTokenAddress(fromPubkey, mint)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to find source token account address: %w", err)
	}

	// The source account must exist and is never created here: a missing
	// source means the sender holds none of this token.
	_, err = c.rpcClient.GetTokenAccountBalance(ctx, sourceTokenAccount, c.commitment)
	if err != nil {
		if isAccountNotFoundError(err) {
			return solana.Signature{}, fmt.Errorf("no token account for mint %s under sender %s", mint, fromPubkey)
		}
		return solana.Signature{}, fmt.Errorf("failed to check source token account: %w", err)
	}

	destTokenAccount, _, err := solana.FindAssociatedTokenAddress(to, mint)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to find destination token account address: %w", err)
	}

	var instructions []solana.Instruction

	destAccountInfo, err := c.rpcClient.GetAccountInfo(ctx, destTokenAccount)
	if err != nil && !isAccountNotFoundError(err) {
		return solana.Signature{}, fmt.Errorf("failed to get destination account info: %w", err)
	}
	if err != nil || destAccountInfo.Value == nil {
		instructions = append(instructions, associatedtokenaccount.NewCreateInstruction(
			fromPubkey, // payer
			to,         // owner
			mint,       // mint
		).Build())
	}

	instructions = append(instructions, token.NewTransferCheckedInstruction(
		amount,
		decimals,
		sourceTokenAccount,
		mint,
		destTokenAccount,
		fromPubkey,
		[]solana.PublicKey{},
	).Build())

	return c.signAndSend(ctx, instructions, from)
}

// signAndSend builds a transaction from the instructions with the first
// signer as fee payer, signs it with all signers, submits it and waits for
// confirmation.
func (c *SolanaClient) signAndSend(ctx context.Context, instructions []solana.Instruction, signers ...solana.PrivateKey) (solana.Signature, error) {
	recent, err := c.rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to get recent blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(
		instructions,
		recent.Value.Blockhash,
		solana.TransactionPayer(signers[0].PublicKey()),
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		for i := range signers {
			if signers[i].PublicKey().Equals(key) {
				return &signers[i]
			}
		}
		return nil
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	wsClient, err := c.ensureWS(ctx)
	if err != nil {
		return solana.Signature{}, err
	}

	timeout := confirmTimeout
	sig, err := sendandconfirmtransaction.SendAndConfirmTransactionWithOpts(
		ctx,
		c.rpcClient,
		wsClient,
		tx,
		rpc.TransactionOpts{
			SkipPreflight:       false,
			PreflightCommitment: rpc.CommitmentFinalized,
		},
		&timeout,
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	c.log.Debug("transaction confirmed", zap.Stringer("signature", sig))
	return sig, nil
}

// confirmSignature waits until the network confirms the given signature.
func (c *SolanaClient) confirmSignature(ctx context.Context, sig solana.Signature) error {
	wsClient, err := c.ensureWS(ctx)
	if err != nil {
		return err
	}

	sub, err := wsClient.SignatureSubscribe(sig, c.commitment)
	if err != nil {
		return fmt.Errorf("failed to subscribe to signature: %w", err)
	}
	defer sub.Unsubscribe()

	ctx, cancel := context.WithTimeout(ctx, confirmTimeout)
	defer cancel()

	result, err := sub.Recv(ctx)
	if err != nil {
		return fmt.Errorf("failed to confirm signature %s: %w", sig, err)
	}
	if result.Value.Err != nil {
		return fmt.Errorf("transaction %s failed: %v", sig, result.Value.Err)
	}
	return nil
}

func (c *SolanaClient) ensureWS(ctx context.Context) (*ws.Client, error) {
	if c.wsClient != nil {
		return c.wsClient, nil
	}
	wsClient, err := ws.Connect(ctx, c.wsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to websocket endpoint: %w", err)
	}
	c.wsClient = wsClient
	return wsClient, nil
}

// isAccountNotFoundError checks if the error indicates a missing account.
func isAccountNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, rpc.ErrNotFound) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "could not find account") ||
		strings.Contains(errStr, "not found")
}
