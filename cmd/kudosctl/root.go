package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/chris/kudos-ledger/pkg/config"
	"github.com/chris/kudos-ledger/pkg/service"
	"github.com/spf13/cobra"
)

// svc is built from the environment before any subcommand runs. Tests set it directly.
var svc *service.Services

var rootCmd = &cobra.Command{
	Use:          "kudosctl",
	Short:        "Administer the kudos ledger",
	Long:         `kudosctl talks to the ledger storage configured in the environment (or .env).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if svc != nil {
			return nil
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := config.NewLogger(cfg.LogLevel)
		svc, err = service.New(cmd.Context(), cfg, logger)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func wantJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}
