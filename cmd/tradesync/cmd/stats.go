package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ananidze/tradesync/pkg/dashsdk"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate dashboard statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := client.Stats(cmd.Context())
		if err != nil {
			return err
		}
		return printStats(stats)
	},
}

func printStats(stats *dashsdk.DashboardStats) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "Total balance:\t%.2f\n", stats.TotalBalance)
	fmt.Fprintf(w, "Total equity:\t%.2f\n", stats.TotalEquity)
	fmt.Fprintf(w, "Total PnL:\t%.2f\n", stats.TotalPnL)
	fmt.Fprintf(w, "Daily PnL:\t%.2f\n", stats.DailyPnL)
	fmt.Fprintf(w, "Active accounts:\t%d\n", stats.ActiveAccounts)
	fmt.Fprintf(w, "Open trades:\t%d\n", stats.OpenTrades)
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
