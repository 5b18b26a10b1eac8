package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ananidze/tradesync/pkg/authflow"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in to the dashboard",
	Long: `Sign in with email and password. When the account has a second factor
enrolled, the command prompts for the authenticator code to complete the
login. The session token is stored locally until logout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := promptPassword("Password")
		if err != nil {
			return err
		}

		state, err := flow.SubmitLogin(cmd.Context(), args[0], password)
		if err != nil {
			return err
		}

		if state == authflow.StatePendingSecondFactor {
			code, err := promptLine("Authenticator code")
			if err != nil {
				return err
			}
			if state, err = flow.SubmitSecondFactorCode(cmd.Context(), code); err != nil {
				return err
			}
		}

		if state == authflow.StateAuthenticated {
			fmt.Printf("Signed in as %s\n", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
