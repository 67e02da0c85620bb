package cmd

import (
	"scribe-cli/auth"
	"scribe-cli/ui"

	"github.com/spf13/cobra"
)

var deleteCommentCmd = &cobra.Command{
	Use:     "delete-comment [post-id] [comment-id]",
	Aliases: []string{"dc"},
	Short:   "Delete one of your comments",
	Args:    cobra.ExactArgs(2),
	Run:     deleteComment,
}

func init() {
	RootCmd.AddCommand(deleteCommentCmd)
}

func deleteComment(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	postId := parseId(args[0], "post")
	commentId := parseId(args[1], "comment")

	controller := newController()
	controller.Dispatch(ui.Action{Kind: ui.ActionDeleteComment, PostId: postId, CommentId: commentId})
}
