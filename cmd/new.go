package cmd

import (
	"scribe-cli/auth"
	"scribe-cli/term"
	"scribe-cli/types"

	"github.com/spf13/cobra"
)

var newDraftFlag bool

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Write a new post",
	Args:  cobra.NoArgs,
	Run:   newPost,
}

func init() {
	RootCmd.AddCommand(newCmd)

	newCmd.Flags().BoolVar(&newDraftFlag, "draft", false, "save as a draft instead of publishing")
}

func newPost(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	title, err := term.GetRequiredUserStringInput("Title:")
	if err != nil {
		term.OutputErrorAndExit("Error getting title: %v", err)
	}

	content, err := term.GetUserStringInput("Content:")
	if err != nil {
		term.OutputErrorAndExit("Error getting content: %v", err)
	}

	controller := newController()
	controller.CreatePost(types.CreatePostRequest{
		Title:       title,
		Content:     content,
		IsPublished: !newDraftFlag,
	})
}
