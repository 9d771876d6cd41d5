// bracketforge is an interactive tournament bracket designer.
//
// Run: bracketforge edit tournament.json
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:     "bracketforge",
	Short:   "bracketforge — design tournament brackets on an infinite canvas",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Optional .env for BRACKETFORGE_* overrides; absence is fine.
		_ = godotenv.Load()
	},
}

func main() {
	rootCmd.AddCommand(editCmd(), teamsCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
