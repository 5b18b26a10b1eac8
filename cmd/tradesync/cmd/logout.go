package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the stored session",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		flow.Logout()
		fmt.Println("Signed out")
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
