// Package cli defines the command surface. Commands take positional
// arguments only; network and commitment settings come from the
// environment, not from flags.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/willdougadams/simple-solana-wallet/wallet"
)

// NewRootCmd builds the command tree around a Wallet. Argument-count
// mismatches and unknown commands surface as errors carrying the correct
// invocation form and the list of valid commands; the caller decides the
// exit code.
func NewRootCmd(w *wallet.Wallet) *cobra.Command {
	root := &cobra.Command{
		Use:   "wallet",
		Short: "Solana wallet helper: keypairs, balances, airdrops and transfers",
		Long: `A command-line wallet helper for the Solana devnet. Keypairs live as
flat files under keys/, token mint records under mints/. Destinations may be
either a locally known wallet name or a literal base58 address.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Unknown subcommands must reach RunE instead of cobra's default
		// unknown-command error, which carries no usage hint.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			// Unrecognized command: name it and list the valid ones.
			return fmt.Errorf("unknown command %q\n\n%s", args[0], cmd.UsageString())
		},
	}

	root.AddCommand(
		newGenerateCmd(w),
		newAddressCmd(w),
		newBalanceCmd(w),
		newAirdropCmd(w),
		newSendCmd(w),
		newMintCmd(w),
		newSendSplCmd(w),
		newQRCmd(w),
	)

	return root
}

// exactArgs is cobra.ExactArgs with the correct invocation form appended,
// so a bad argument count tells the user what to type.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%v\n\nUsage:\n  %s", err, cmd.UseLine())
		}
		return nil
	}
}

// rangeArgs is cobra.RangeArgs with the same treatment.
func rangeArgs(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.RangeArgs(min, max)(cmd, args); err != nil {
			return fmt.Errorf("%v\n\nUsage:\n  %s", err, cmd.UseLine())
		}
		return nil
	}
}
