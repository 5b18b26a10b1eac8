package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ananidze/tradesync/pkg/authflow"
	"github.com/ananidze/tradesync/pkg/dashsdk"
	"github.com/ananidze/tradesync/pkg/tokenstore"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch flow.State() {
		case authflow.StateAnonymous:
			fmt.Println("Not signed in")
			return nil
		case authflow.StatePendingSecondFactor:
			fmt.Println("Login pending second-factor verification")
			fmt.Println("Complete it with: tradesync twofa verify <code>")
			return nil
		}

		token, _ := tokens.Get(tokenstore.SlotSession)
		claims, err := dashsdk.ParseTokenClaims(token)
		if err != nil {
			// An opaque or malformed token is still a session; the backend
			// decides whether it works.
			fmt.Println("Signed in")
			return nil
		}

		fmt.Printf("Signed in as %s\n", claims.Email)
		if !claims.ExpiresAt.IsZero() {
			fmt.Printf("Session expires %s\n", claims.ExpiresAt.Format(time.RFC1123))
		}
		if claims.Expired() {
			fmt.Println("Session looks expired; the next request will require a new login")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
