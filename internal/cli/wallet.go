package cli

import (
	"github.com/spf13/cobra"

	"github.com/willdougadams/simple-solana-wallet/wallet"
)

func newGenerateCmd(w *wallet.Wallet) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <name>",
		Short: "Create a new local keypair",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := w.Generate(args[0])
			if err != nil {
				return err
			}
			if !res.Created {
				// A taken name is reported, not failed; the existing
				// key file stays untouched.
				cmd.Printf("wallet %q already exists, keeping the existing keypair\n", res.Name)
				return nil
			}
			cmd.Printf("generated wallet %q with address %s\n", res.Name, res.Address)
			return nil
		},
	}
}

func newAddressCmd(w *wallet.Wallet) *cobra.Command {
	return &cobra.Command{
		Use:   "address <name>",
		Short: "Print the stored public address",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := w.Address(args[0])
			if err != nil {
				return err
			}
			cmd.Println(address)
			return nil
		},
	}
}

func newBalanceCmd(w *wallet.Wallet) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <name>",
		Short: "Print the SOL balance",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := w.Balance(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if res.USD != "" {
				cmd.Printf("%s has %s SOL (~%s USD)\n", res.Address, res.SOL, res.USD)
			} else {
				cmd.Printf("%s has %s SOL\n", res.Address, res.SOL)
			}
			return nil
		},
	}
}

func newAirdropCmd(w *wallet.Wallet) *cobra.Command {
	return &cobra.Command{
		Use:   "airdrop <name>",
		Short: "Request devnet funds and wait for confirmation",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := w.Airdrop(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cmd.Printf("airdropped %s SOL to %s (signature %s)\n", res.Amount, res.To, res.Signature)
			return nil
		},
	}
}

func newSendCmd(w *wallet.Wallet) *cobra.Command {
	return &cobra.Command{
		Use:   "send <name> <destination> <amount>",
		Short: "Transfer SOL to a wallet name or address",
		Args:  exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := w.Send(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			cmd.Printf("sent %s SOL from %s to %s (signature %s)\n", res.Amount, res.From, res.To, res.Signature)
			return nil
		},
	}
}

func newQRCmd(w *wallet.Wallet) *cobra.Command {
	return &cobra.Command{
		Use:   "qr <name> [output.png]",
		Short: "Write a QR code PNG of the stored address",
		Args:  rangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := args[0] + ".png"
			if len(args) == 2 {
				out = args[1]
			}
			address, err := w.QR(args[0], out)
			if err != nil {
				return err
			}
			cmd.Printf("wrote QR code for %s to %s\n", address, out)
			return nil
		},
	}
}
