// Dashboard summary command.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, closeStore, err := openRegistry()
		if err != nil {
			return err
		}
		defer closeStore()

		stats := reg.Summarize(time.Now())
		if flagJSON {
			return printJSON(cmd, stats)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Services:             %d\n", stats.Services)
		fmt.Fprintf(out, "Clients:              %d\n", stats.Clients)
		fmt.Fprintf(out, "Today's appointments: %d\n", stats.TodayAppointments)
		fmt.Fprintf(out, "Revenue:              ₹%.0f\n", stats.Revenue)
		fmt.Fprintf(out, "Jewelry items:        %d\n", stats.JewelryItems)
		fmt.Fprintf(out, "Gold items:           %d\n", stats.GoldItems)
		fmt.Fprintf(out, "In stock:             %d\n", stats.InStockItems)
		return nil
	},
}
