package cmd

import (
	"fmt"

	"scribe-cli/auth"

	"github.com/spf13/cobra"
)

var signOutCmd = &cobra.Command{
	Use:     "sign-out",
	Aliases: []string{"so"},
	Short:   "Sign out and clear the stored session",
	Args:    cobra.NoArgs,
	Run:     signOut,
}

func init() {
	RootCmd.AddCommand(signOutCmd)
}

func signOut(cmd *cobra.Command, args []string) {
	auth.SignOut()
	fmt.Println("✅ Signed out")
}
