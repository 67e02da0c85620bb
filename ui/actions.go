package ui

// ActionKind enumerates everything the user can do from the post list. The
// controller dispatches on these structured payloads rather than inspecting
// whatever UI element happened to be clicked.
type ActionKind string

const (
	ActionReload              ActionKind = "reload"
	ActionTogglePostsOrder    ActionKind = "toggle-posts-order"
	ActionToggleCommentsOrder ActionKind = "toggle-comments-order"

	ActionNewPost    ActionKind = "new-post"
	ActionEditPost   ActionKind = "edit-post"
	ActionDeletePost ActionKind = "delete-post"

	ActionAddComment    ActionKind = "add-comment"
	ActionEditComment   ActionKind = "edit-comment"
	ActionDeleteComment ActionKind = "delete-comment"

	ActionSignOut ActionKind = "sign-out"
)

// Action addresses its target explicitly: comment actions carry both the post
// id and the comment id.
type Action struct {
	Kind      ActionKind
	PostId    int64
	CommentId int64
}
