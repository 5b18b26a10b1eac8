package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register <email>",
	Short: "Create a new dashboard account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := promptPassword("Password")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Confirm password")
		if err != nil {
			return err
		}
		if password != confirm {
			return errors.New("passwords do not match")
		}

		resp, err := client.Register(cmd.Context(), args[0], password)
		if err != nil {
			return err
		}

		fmt.Println(resp.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
