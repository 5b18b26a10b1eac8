package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "List trades across the tracked accounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		trades, err := client.Trades(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "SYMBOL\tTYPE\tOPENED\tOPEN\tCLOSE\tLOTS\tPNL\tSTATUS")
		for _, t := range trades {
			closePrice, pnl := "-", "-"
			if t.ClosePrice != nil {
				closePrice = fmt.Sprintf("%.5f", *t.ClosePrice)
			}
			if t.PnL != nil {
				pnl = fmt.Sprintf("%.2f", *t.PnL)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%.5f\t%s\t%.2f\t%s\t%s\n",
				t.Symbol, t.Type, t.OpenTime.Format(time.DateTime),
				t.OpenPrice, closePrice, t.LotSize, pnl, t.Status)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(tradesCmd)
}
