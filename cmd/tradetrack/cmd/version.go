package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the tradetrack CLI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tradetrack version %s\n", version)
		fmt.Fprintln(cmd.OutOrStdout(), "A personal trading journal with equity and drawdown analytics")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
