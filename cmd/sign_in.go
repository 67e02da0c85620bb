package cmd

import (
	"scribe-cli/auth"
	"scribe-cli/term"

	"github.com/spf13/cobra"
)

var signInCmd = &cobra.Command{
	Use:     "sign-in",
	Aliases: []string{"si"},
	Short:   "Sign in with your email",
	Args:    cobra.NoArgs,
	Run:     signIn,
}

func init() {
	RootCmd.AddCommand(signInCmd)
}

func signIn(cmd *cobra.Command, args []string) {
	err := auth.PromptSignIn()
	if err != nil {
		term.OutputErrorAndExit("Error signing in: %v", err)
	}
}
