package cli

import (
	"fmt"

	"github.com/Luka12345937/MULUMBA-Beleive/internal/console"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", console.AppTitle, console.AppVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
