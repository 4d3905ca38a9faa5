// Command kudosctl administers the kudos ledger: claims, allocations,
// allocation definitions and wallets.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
