package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/chris/kudos-ledger/pkg/allocation"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(definitionsCmd)
	definitionsCmd.AddCommand(definitionsLoadCmd)
	definitionsCmd.AddCommand(definitionsListCmd)

	definitionsLoadCmd.Flags().StringP("file", "f", "", "TOML file with [[definition]] tables")
	definitionsListCmd.Flags().Bool("active", false, "Only active definitions")
}

var definitionsCmd = &cobra.Command{
	Use:   "definitions",
	Short: "Manage recurring allocation definitions",
}

var definitionsLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Create or replace definitions from a TOML file",
	Long: `Create or replace allocation definitions from a TOML file, for example:

  [[definition]]
  id = "monthly-giveable"
  amount = 100
  cadence = "MONTHLY"
  balance_class = "giveable"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		if path == "" {
			return fmt.Errorf("definition file required: kudosctl definitions load -f <file>")
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open definitions: %w", err)
		}
		defer f.Close()

		defs, err := allocation.LoadDefinitions(f)
		if err != nil {
			return err
		}
		for i := range defs {
			if err := svc.Allocation.SaveDefinition(cmd.Context(), &defs[i]); err != nil {
				return fmt.Errorf("save %s: %w", defs[i].Id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s, %d %s)\n",
				defs[i].Id, defs[i].Cadence, defs[i].Amount, defs[i].BalanceClass)
		}
		return nil
	},
}

var definitionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List allocation definitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		activeOnly, _ := cmd.Flags().GetBool("active")
		defs, err := svc.Allocation.Definitions(cmd.Context(), activeOnly)
		if err != nil {
			return err
		}
		if wantJSON(cmd) {
			return printJSON(cmd.OutOrStdout(), defs)
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCADENCE\tAMOUNT\tCLASS\tACTIVE\tRECEIVERS\tSCHEDULE")
		for _, d := range defs {
			receivers := "all"
			if len(d.ReceiverIds) > 0 {
				receivers = strings.Join(d.ReceiverIds, ",")
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%t\t%s\t%s\n",
				d.Id, d.Cadence, d.Amount, d.BalanceClass, d.Active, receivers, d.Cadence.ScheduleExpression())
		}
		return tw.Flush()
	},
}
