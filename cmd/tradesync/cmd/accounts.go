package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the tracked trading accounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		accounts, err := client.Accounts(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "FIRM\tACCOUNT\tBALANCE\tEQUITY\tDAILY PNL\tTOTAL PNL\tSTATUS")
		for _, a := range accounts {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%s\n",
				a.FirmName, a.AccountNumber, a.Balance, a.Equity,
				a.DailyPnL, a.TotalPnL, a.Status)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(accountsCmd)
}
