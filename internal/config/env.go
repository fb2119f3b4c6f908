package config

import (
	"fmt"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the tool. Network
// selection and commitment level are fixed per run; there are no runtime
// flags for them. The value is immutable after Load and is passed explicitly
// to whichever component needs it.
type Config struct {
	RPCURL       string `envconfig:"SOLANA_RPC_URL" default:"https://api.devnet.solana.com"`
	WSURL        string `envconfig:"SOLANA_WS_URL" default:"wss://api.devnet.solana.com"`
	Commitment   string `envconfig:"SOLANA_COMMITMENT" default:"confirmed"`
	KeysDir      string `envconfig:"WALLET_KEYS_DIR" default:"keys"`
	MintsDir     string `envconfig:"WALLET_MINTS_DIR" default:"mints"`
	RPCRateLimit int    `envconfig:"SOLANA_RPC_RATE_LIMIT" default:"5"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"warn"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if _, err := cfg.CommitmentType(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CommitmentType maps the configured commitment name to the RPC type.
func (c *Config) CommitmentType() (rpc.CommitmentType, error) {
	switch c.Commitment {
	case "processed":
		return rpc.CommitmentProcessed, nil
	case "confirmed":
		return rpc.CommitmentConfirmed, nil
	case "finalized":
		return rpc.CommitmentFinalized, nil
	default:
		return "", fmt.Errorf("unknown commitment level %q", c.Commitment)
	}
}
