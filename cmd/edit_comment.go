package cmd

import (
	"scribe-cli/auth"
	"scribe-cli/ui"

	"github.com/spf13/cobra"
)

var editCommentCmd = &cobra.Command{
	Use:     "edit-comment [post-id] [comment-id]",
	Aliases: []string{"ec"},
	Short:   "Edit one of your comments",
	Args:    cobra.ExactArgs(2),
	Run:     editComment,
}

func init() {
	RootCmd.AddCommand(editCommentCmd)
}

func editComment(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	postId := parseId(args[0], "post")
	commentId := parseId(args[1], "comment")

	controller := newController()
	controller.Dispatch(ui.Action{Kind: ui.ActionEditComment, PostId: postId, CommentId: commentId})
}
