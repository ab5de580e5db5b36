// Version command for the shringar CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is reported by the version command and --version.
const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the shringar version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "shringar", version)
	},
}
