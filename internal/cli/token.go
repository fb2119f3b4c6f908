package cli

import (
	"github.com/spf13/cobra"

	"github.com/willdougadams/simple-solana-wallet/wallet"
)

func newMintCmd(w *wallet.Wallet) *cobra.Command {
	return &cobra.Command{
		Use:   "mint <minter> <amount> <name>",
		Short: "Create a token mint and mint the initial supply",
		Args:  exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := w.Mint(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			cmd.Printf("created mint %q at %s with supply %s (signature %s)\n",
				res.Name, res.Mint, res.Supply, res.Signature)
			return nil
		},
	}
}

func newSendSplCmd(w *wallet.Wallet) *cobra.Command {
	return &cobra.Command{
		Use:   "sendSpl <sender> <destination> <amount> <name>",
		Short: "Transfer tokens of a recorded mint",
		Args:  exactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := w.SendToken(cmd.Context(), args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}
			cmd.Printf("sent %s %q tokens from %s to %s (signature %s)\n",
				res.Amount, args[3], res.From, res.To, res.Signature)
			return nil
		},
	}
}
