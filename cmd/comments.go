package cmd

import (
	"fmt"

	"scribe-cli/auth"
	"scribe-cli/term"

	"github.com/spf13/cobra"
)

var commentsCmd = &cobra.Command{
	Use:     "comments [post-id]",
	Aliases: []string{"cs"},
	Short:   "Show a post with its comments",
	Args:    cobra.ExactArgs(1),
	Run:     comments,
}

func init() {
	RootCmd.AddCommand(commentsCmd)
}

func comments(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	postId := parseId(args[0], "post")

	controller := newController()
	controller.ShowPost(postId)

	fmt.Println()
	term.PrintCmds("", "comment", "edit-comment", "delete-comment")
}
