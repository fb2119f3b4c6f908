package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/willdougadams/simple-solana-wallet/internal/cli"
	"github.com/willdougadams/simple-solana-wallet/internal/client"
	"github.com/willdougadams/simple-solana-wallet/internal/config"
	"github.com/willdougadams/simple-solana-wallet/internal/keystore"
	"github.com/willdougadams/simple-solana-wallet/wallet"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env overrides nothing already set in the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	solanaClient, err := client.New(cfg, log)
	if err != nil {
		return err
	}
	defer solanaClient.Close()

	w := wallet.New(
		keystore.New(cfg.KeysDir, cfg.MintsDir),
		solanaClient,
		client.NewPriceClient(),
		log,
	)

	// Ctrl-C cancels an in-flight confirmation wait instead of leaving the
	// process hanging on the subscription.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(w).ExecuteContext(ctx)
}

// newLogger builds a stderr console logger so stdout stays clean for
// command output.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = lvl
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}
