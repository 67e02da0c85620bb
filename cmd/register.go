package cmd

import (
	"scribe-cli/auth"
	"scribe-cli/term"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Args:  cobra.NoArgs,
	Run:   register,
}

func init() {
	RootCmd.AddCommand(registerCmd)
}

func register(cmd *cobra.Command, args []string) {
	err := auth.PromptRegister()
	if err != nil {
		term.OutputErrorAndExit("Error creating account: %v", err)
	}
}
