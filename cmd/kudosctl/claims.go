package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/chris/kudos-ledger/pkg/claims"
	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(claimsCmd)
	claimsCmd.AddCommand(claimsListCmd)
	claimsCmd.AddCommand(claimsShowCmd)
	claimsCmd.AddCommand(claimsApproveCmd)
	claimsCmd.AddCommand(claimsRejectCmd)

	claimsListCmd.Flags().String("user", "", "Only claims sent by this user")
	claimsListCmd.Flags().String("status", "", "PENDING, APPROVED or REJECTED")
	claimsListCmd.Flags().Int("page", 1, "Page number, starting at 1")
	claimsListCmd.Flags().Int("limit", claims.DefaultPageSize, "Claims per page")
	claimsListCmd.Flags().String("order", string(claims.OrderDesc), "Sort by creation time: asc or desc")
}

var claimsCmd = &cobra.Command{
	Use:   "claims",
	Short: "Review recognition claims",
}

var claimsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List claims",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		status, _ := cmd.Flags().GetString("status")
		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")
		order, _ := cmd.Flags().GetString("order")

		result, err := svc.Claims.Filter(cmd.Context(), claims.Filter{
			UserID: user,
			Status: models.ClaimStatus(status),
			Page:   page,
			Limit:  limit,
			Order:  claims.Order(order),
		})
		if err != nil {
			return err
		}
		if wantJSON(cmd) {
			return printJSON(cmd.OutOrStdout(), result)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tSENDER\tSTATUS\tTOTAL\tRECEIVERS\tCREATED")
		for _, v := range result.Claims {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
				v.Claim.Id, displayName(v.Sender), v.Claim.Status, v.Claim.TotalAmount(),
				len(v.Receivers), v.Claim.CreatedAt.Format("2006-01-02 15:04"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "page %d, %d of %d claims\n", result.Page, len(result.Claims), result.Total)
		return nil
	},
}

var claimsShowCmd = &cobra.Command{
	Use:   "show CLAIM_ID",
	Short: "Show a claim and its ledger entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		claim, err := svc.Claims.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		txs, err := svc.Store.ListTransactionsByClaimID(cmd.Context(), claim.Id)
		if err != nil {
			return err
		}
		if wantJSON(cmd) {
			return printJSON(cmd.OutOrStdout(), map[string]any{"claim": claim, "transactions": txs})
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s  %s  sender=%s  recognition=%s\n", claim.Id, claim.Status, claim.SenderId, claim.RecognitionId)
		for _, r := range claim.Receivers {
			fmt.Fprintf(out, "  -> %s  %d\n", r.ReceiverId, r.Amount)
		}
		for _, tx := range txs {
			fmt.Fprintf(out, "  %s %-8s %-8s %+d\n", tx.UserId, tx.Kind, tx.Status, tx.Amount)
		}
		return nil
	},
}

var claimsApproveCmd = &cobra.Command{
	Use:   "approve CLAIM_ID",
	Short: "Approve a pending claim and credit its receivers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		claim, err := svc.Claims.Approve(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Approved claim %s: %d coins to %d receivers\n",
			claim.Id, claim.TotalAmount(), len(claim.Receivers))
		return nil
	},
}

var claimsRejectCmd = &cobra.Command{
	Use:   "reject CLAIM_ID",
	Short: "Reject a pending claim and refund its sender",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		claim, err := svc.Claims.Reject(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Rejected claim %s: %d coins refunded to %s\n",
			claim.Id, claim.TotalAmount(), claim.SenderId)
		return nil
	},
}

func displayName(p claims.Participant) string {
	if p.Name != "" {
		return p.Name
	}
	return p.UserId
}
