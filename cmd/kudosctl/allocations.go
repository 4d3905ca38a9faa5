package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/chris/kudos-ledger/pkg/cadence"
	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(allocationsCmd)
	allocationsCmd.AddCommand(allocationsGrantCmd)
	allocationsCmd.AddCommand(allocationsRunCmd)
	allocationsCmd.AddCommand(allocationsDueCmd)
	allocationsCmd.AddCommand(allocationsTriggerCmd)
	allocationsCmd.AddCommand(allocationsRecordsCmd)

	allocationsGrantCmd.Flags().Int64("amount", 0, "Coins per user")
	allocationsGrantCmd.Flags().String("class", string(models.GIVEABLE), "Balance to credit: earned or giveable")
	allocationsGrantCmd.Flags().StringSlice("users", nil, "Receivers (default: every wallet)")

	allocationsRunCmd.Flags().String("cadence", "", "Cadence to run (default: the definition's)")

	allocationsTriggerCmd.Flags().Duration("delay", 0, "Delay before workers see the run (max 15m)")
}

var allocationsCmd = &cobra.Command{
	Use:   "allocations",
	Short: "Grant coins and run allocation definitions",
}

var allocationsGrantCmd = &cobra.Command{
	Use:   "grant",
	Short: "Grant coins now, to every wallet or to --users",
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, _ := cmd.Flags().GetInt64("amount")
		class, _ := cmd.Flags().GetString("class")
		users, _ := cmd.Flags().GetStringSlice("users")

		var (
			affected []string
			err      error
		)
		if len(users) == 0 {
			affected, err = svc.Allocation.AllocateCoinsToAll(cmd.Context(), amount, models.BalanceClass(class))
		} else {
			affected, err = svc.Allocation.AllocateCoinsToSpecificUsers(cmd.Context(), users, amount, models.BalanceClass(class))
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Granted %d %s coins to %d users: %s\n",
			amount, class, len(affected), strings.Join(affected, ", "))
		return nil
	},
}

var allocationsRunCmd = &cobra.Command{
	Use:   "run DEFINITION_ID",
	Short: "Run a definition for the current period",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("cadence")

		var c cadence.Cadence
		if raw != "" {
			parsed, err := cadence.Parse(raw)
			if err != nil {
				return err
			}
			c = parsed
		} else {
			def, err := svc.Allocation.Definition(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			c = def.Cadence
		}

		outcome, err := svc.Allocation.RunScheduled(cmd.Context(), args[0], c)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s\n", args[0], c, outcome)
		return nil
	},
}

var allocationsDueCmd = &cobra.Command{
	Use:   "due",
	Short: "Run every active definition once, like a scheduler tick",
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := svc.Allocation.RunDue(cmd.Context())
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DEFINITION\tCADENCE\tOUTCOME\tERROR")
		for _, r := range results {
			msg := ""
			if r.Err != nil {
				msg = r.Err.Error()
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.DefinitionId, r.Cadence, r.Outcome, msg)
		}
		return tw.Flush()
	},
}

var allocationsTriggerCmd = &cobra.Command{
	Use:   "trigger DEFINITION_ID",
	Short: "Queue a run of a definition for the allocation worker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if svc.Scheduler == nil {
			return errors.New("no allocation queue configured: set SQS_ALLOCATION_QUEUE_URL")
		}
		delay, _ := cmd.Flags().GetDuration("delay")

		def, err := svc.Allocation.Definition(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		req := &models.AllocationRequest{
			DefinitionId: def.Id,
			Cadence:      def.Cadence,
			RequestedAt:  time.Now().UTC(),
		}
		if err := svc.Scheduler.ScheduleAllocation(cmd.Context(), req, delay); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Queued %s (%s) with delay %s\n", def.Id, def.Cadence, delay)
		return nil
	},
}

var allocationsRecordsCmd = &cobra.Command{
	Use:   "records DEFINITION_ID",
	Short: "Show the allocation records of a definition, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := svc.Allocation.ListRecords(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if wantJSON(cmd) {
			return printJSON(cmd.OutOrStdout(), records)
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "PERIOD\tSTATUS\tRECEIVERS\tAMOUNT\tERROR")
		for _, r := range records {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", r.Period, r.Status, len(r.ReceiverIds), r.Amount, r.Error)
		}
		return tw.Flush()
	},
}
