package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var twofaCmd = &cobra.Command{
	Use:   "twofa",
	Short: "Manage two-factor authentication",
}

var twofaEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Begin two-factor enrollment for the signed-in account",
	Long: `Begin two-factor enrollment. The backend issues a shared secret and a
provisioning URI; add either to an authenticator app, then confirm with
"tradesync twofa verify <code>". The secret is displayed once and not
stored by this client.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		setup, err := flow.BeginEnrollment(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Secret:        %s\n", setup.Secret)
		fmt.Printf("Provisioning:  %s\n", setup.OtpauthURL)
		fmt.Println("\nScan the provisioning URI (or enter the secret) in your")
		fmt.Println("authenticator app, then run: tradesync twofa verify <code>")
		return nil
	},
}

var twofaVerifyCmd = &cobra.Command{
	Use:   "verify <code>",
	Short: "Confirm enrollment or complete a pending login challenge",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := flow.SubmitSecondFactorCode(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Two-factor authentication verified")
		return nil
	},
}

func init() {
	twofaCmd.AddCommand(twofaEnableCmd)
	twofaCmd.AddCommand(twofaVerifyCmd)
	rootCmd.AddCommand(twofaCmd)
}
