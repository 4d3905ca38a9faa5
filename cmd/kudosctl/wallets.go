package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(walletsCmd)
	walletsCmd.AddCommand(walletsGetCmd)
	walletsCmd.AddCommand(walletsCreateCmd)
	walletsCmd.AddCommand(walletsListCmd)
}

var walletsCmd = &cobra.Command{
	Use:   "wallets",
	Short: "Provision and inspect wallets",
}

var walletsGetCmd = &cobra.Command{
	Use:   "get USER_ID",
	Short: "Show a user's balances",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wallet, err := svc.Store.GetWallet(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if wantJSON(cmd) {
			return printJSON(cmd.OutOrStdout(), wallet)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  earned=%d  giveable=%d  version=%d\n",
			wallet.UserId, wallet.EarnedBalance, wallet.GiveableBalance, wallet.Version)
		return nil
	},
}

var walletsCreateCmd = &cobra.Command{
	Use:   "create USER_ID",
	Short: "Provision an empty wallet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wallet, err := svc.Store.CreateWallet(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created wallet for %s\n", wallet.UserId)
		return nil
	},
}

var walletsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every wallet",
	RunE: func(cmd *cobra.Command, args []string) error {
		wallets, err := svc.Store.ListWallets(cmd.Context())
		if err != nil {
			return err
		}
		if wantJSON(cmd) {
			return printJSON(cmd.OutOrStdout(), wallets)
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "USER\tEARNED\tGIVEABLE")
		for _, w := range wallets {
			fmt.Fprintf(tw, "%s\t%d\t%d\n", w.UserId, w.EarnedBalance, w.GiveableBalance)
		}
		return tw.Flush()
	},
}
