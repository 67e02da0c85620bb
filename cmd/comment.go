package cmd

import (
	"scribe-cli/auth"
	"scribe-cli/ui"

	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:     "comment [post-id]",
	Aliases: []string{"c"},
	Short:   "Comment on a post",
	Args:    cobra.ExactArgs(1),
	Run:     comment,
}

func init() {
	RootCmd.AddCommand(commentCmd)
}

func comment(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	postId := parseId(args[0], "post")

	controller := newController()
	controller.Dispatch(ui.Action{Kind: ui.ActionAddComment, PostId: postId})
}
