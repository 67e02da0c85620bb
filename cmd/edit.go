package cmd

import (
	"scribe-cli/auth"
	"scribe-cli/ui"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:     "edit [post-id]",
	Aliases: []string{"e"},
	Short:   "Edit one of your posts",
	Args:    cobra.ExactArgs(1),
	Run:     edit,
}

func init() {
	RootCmd.AddCommand(editCmd)
}

func edit(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	postId := parseId(args[0], "post")

	controller := newController()
	controller.Dispatch(ui.Action{Kind: ui.ActionEditPost, PostId: postId})
}
