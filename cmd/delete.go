package cmd

import (
	"scribe-cli/auth"
	"scribe-cli/ui"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [post-id]",
	Aliases: []string{"del"},
	Short:   "Delete one of your posts",
	Args:    cobra.ExactArgs(1),
	Run:     deletePost,
}

func init() {
	RootCmd.AddCommand(deleteCmd)
}

func deletePost(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	postId := parseId(args[0], "post")

	controller := newController()
	controller.Dispatch(ui.Action{Kind: ui.ActionDeletePost, PostId: postId})
}
