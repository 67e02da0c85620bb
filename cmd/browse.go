package cmd

import (
	"strconv"

	"scribe-cli/auth"
	"scribe-cli/term"
	"scribe-cli/ui"

	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"b"},
	Short:   "Browse posts interactively",
	Args:    cobra.NoArgs,
	Run:     browse,
}

func init() {
	RootCmd.AddCommand(browseCmd)
}

const (
	browseReload        = "Reload"
	browseTogglePosts   = "Toggle post order"
	browseToggleComment = "Toggle comment order on a post"
	browseNewPost       = "New post"
	browseEditPost      = "Edit a post"
	browseDeletePost    = "Delete a post"
	browseAddComment    = "Comment on a post"
	browseEditComment   = "Edit a comment"
	browseDeleteComment = "Delete a comment"
	browseSignOut       = "Sign out"
	browseQuit          = "Quit"
)

var browseOptions = []string{
	browseReload,
	browseTogglePosts,
	browseToggleComment,
	browseNewPost,
	browseEditPost,
	browseDeletePost,
	browseAddComment,
	browseEditComment,
	browseDeleteComment,
	browseSignOut,
	browseQuit,
}

// browse is the interactive session: load the post list, then loop on a menu
// of actions until the user quits or the session goes away.
func browse(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	controller := newController()
	controller.Start()

	for controller.View() == ui.ViewAuthenticated {
		selected, err := term.SelectFromList("What next?", browseOptions)
		if err != nil {
			term.OutputErrorAndExit("Error selecting action: %v", err)
		}

		if selected == browseQuit {
			return
		}

		action, ok := browseAction(selected)
		if !ok {
			continue
		}

		controller.Dispatch(action)
	}

	// kicked back to the unauthenticated view (sign-out or expiry)
	term.PrintCmds("", "sign-in", "register")
}

func browseAction(selected string) (ui.Action, bool) {
	switch selected {
	case browseReload:
		return ui.Action{Kind: ui.ActionReload}, true

	case browseTogglePosts:
		return ui.Action{Kind: ui.ActionTogglePostsOrder}, true

	case browseToggleComment:
		postId, ok := promptBrowseId("Post id:")
		return ui.Action{Kind: ui.ActionToggleCommentsOrder, PostId: postId}, ok

	case browseNewPost:
		return ui.Action{Kind: ui.ActionNewPost}, true

	case browseEditPost:
		postId, ok := promptBrowseId("Post id:")
		return ui.Action{Kind: ui.ActionEditPost, PostId: postId}, ok

	case browseDeletePost:
		postId, ok := promptBrowseId("Post id:")
		return ui.Action{Kind: ui.ActionDeletePost, PostId: postId}, ok

	case browseAddComment:
		postId, ok := promptBrowseId("Post id:")
		return ui.Action{Kind: ui.ActionAddComment, PostId: postId}, ok

	case browseEditComment:
		postId, ok := promptBrowseId("Post id:")
		if !ok {
			return ui.Action{}, false
		}
		commentId, ok := promptBrowseId("Comment id:")
		return ui.Action{Kind: ui.ActionEditComment, PostId: postId, CommentId: commentId}, ok

	case browseDeleteComment:
		postId, ok := promptBrowseId("Post id:")
		if !ok {
			return ui.Action{}, false
		}
		commentId, ok := promptBrowseId("Comment id:")
		return ui.Action{Kind: ui.ActionDeleteComment, PostId: postId, CommentId: commentId}, ok

	case browseSignOut:
		return ui.Action{Kind: ui.ActionSignOut}, true
	}

	return ui.Action{}, false
}

func promptBrowseId(msg string) (int64, bool) {
	input, err := term.GetRequiredUserStringInput(msg)
	if err != nil {
		return 0, false
	}

	id, err := strconv.ParseInt(input, 10, 64)
	if err != nil || id <= 0 {
		term.NotifyWarning("not a valid id: %s", input)
		return 0, false
	}

	return id, true
}
