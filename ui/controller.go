package ui

import (
	"fmt"
	"sync"

	"scribe-cli/auth"
	"scribe-cli/render"
	"scribe-cli/term"
	"scribe-cli/types"
)

type View int

const (
	ViewUnauthenticated View = iota
	ViewAuthenticated
)

// Controller owns the application state and orchestrates the API client, sort
// state, and renderer. All user interaction goes through the injected funcs so
// tests can drive it without a terminal.
type Controller struct {
	client   types.ApiClient
	renderer *render.Renderer
	state    *State
	view     View

	// Confirm gates destructive actions; a false return is a silent no-op.
	Confirm func(msg string, args ...interface{}) (bool, error)
	// Input collects a line of text with an optional prefill (edit modals).
	Input func(msg, def string) (string, error)
	// Notify surfaces transient notices (errors included); nothing is thrown
	// past the controller.
	Notify func(msg string, args ...interface{})
	// Print emits rendered view nodes.
	Print func(s string)
}

func NewController(client types.ApiClient, renderer *render.Renderer) *Controller {
	return &Controller{
		client:   client,
		renderer: renderer,
		state:    NewState(),
		view:     ViewUnauthenticated,

		Confirm: term.ConfirmYesNo,
		Input:   term.GetUserStringInputWithDefault,
		Notify:  term.NotifyWarning,
		Print: func(s string) {
			fmt.Print(s)
		},
	}
}

func (c *Controller) View() View {
	return c.view
}

func (c *Controller) State() *State {
	return c.state
}

// Start transitions to the authenticated view when a session exists,
// loading the post list under the current global sort order.
func (c *Controller) Start() {
	if auth.Current() == nil {
		c.view = ViewUnauthenticated
		return
	}

	c.view = ViewAuthenticated
	c.LoadPostList()
}

func (c *Controller) Dispatch(action Action) {
	switch action.Kind {
	case ActionReload:
		c.LoadPostList()

	case ActionTogglePostsOrder:
		c.state.Sort.TogglePostsOrder()
		c.LoadPostList()

	case ActionToggleCommentsOrder:
		c.state.Sort.ToggleCommentsOrder(action.PostId)
		c.RefreshComments(action.PostId)

	case ActionNewPost:
		c.newPost()

	case ActionEditPost:
		c.editPost(action.PostId)

	case ActionDeletePost:
		c.deletePost(action.PostId)

	case ActionAddComment:
		c.addComment(action.PostId)

	case ActionEditComment:
		c.editComment(action.PostId, action.CommentId)

	case ActionDeleteComment:
		c.deleteComment(action.PostId, action.CommentId)

	case ActionSignOut:
		auth.SignOut()
		c.view = ViewUnauthenticated
	}
}

// LoadPostList fetches the post list under the current global order, then
// fans out one comment fetch per post. The fetches run concurrently and may
// resolve in any order; each post's comments land in its own view slot, so a
// late response for post A can't contaminate post B. A response superseded by
// a newer load is discarded (latest request wins).
func (c *Controller) LoadPostList() {
	seq := c.state.nextListSeq()

	posts, apiErr := c.client.ListPosts(c.state.Sort.PostsOrder())
	if apiErr != nil {
		c.handleApiError(apiErr)
		return
	}

	views := make([]*render.PostView, len(posts))
	for i, post := range posts {
		views[i] = &render.PostView{
			Post:         post,
			CommentOrder: c.state.Sort.CommentsOrder(post.Id),
		}
	}

	var mu sync.Mutex
	errCh := make(chan *types.ApiError, len(views))

	for _, view := range views {
		go func(view *render.PostView) {
			comments, apiErr := c.client.ListComments(view.Post.Id, view.CommentOrder)
			if apiErr != nil {
				errCh <- apiErr
				return
			}

			mu.Lock()
			view.Comments = comments
			mu.Unlock()

			errCh <- nil
		}(view)
	}

	var firstErr *types.ApiError
	for range views {
		if apiErr := <-errCh; apiErr != nil && firstErr == nil {
			firstErr = apiErr
		}
	}

	if firstErr != nil {
		c.handleApiError(firstErr)
		return
	}

	if seq != c.state.currentListSeq() {
		// a newer load is already in flight or done
		return
	}

	c.state.setViews(views)
	c.Print(c.renderer.PostList(views, c.state.Sort.PostsOrder()))
}

// ShowPost renders a single post's card. The contract has no single-post
// endpoint, so this filters the list response.
func (c *Controller) ShowPost(postId int64) {
	posts, apiErr := c.client.ListPosts(c.state.Sort.PostsOrder())
	if apiErr != nil {
		c.handleApiError(apiErr)
		return
	}

	var target *types.Post
	for _, post := range posts {
		if post.Id == postId {
			target = post
			break
		}
	}

	if target == nil {
		c.Notify("post %d not found", postId)
		return
	}

	order := c.state.Sort.CommentsOrder(postId)
	comments, apiErr := c.client.ListComments(postId, order)
	if apiErr != nil {
		c.handleApiError(apiErr)
		return
	}

	view := &render.PostView{Post: target, Comments: comments, CommentOrder: order}
	c.state.setViews([]*render.PostView{view})
	c.Print(c.renderer.PostCard(view))
}

// RefreshComments re-fetches and re-renders a single post's comment subtree.
// Comment mutations go through here so the rest of the list is left alone.
func (c *Controller) RefreshComments(postId int64) {
	view := c.state.View(postId)
	if view == nil {
		// nothing rendered yet for this post (one-shot command); build the
		// whole card instead
		c.ShowPost(postId)
		return
	}

	seq := c.state.nextCommentSeq(postId)
	order := c.state.Sort.CommentsOrder(postId)

	comments, apiErr := c.client.ListComments(postId, order)
	if apiErr != nil {
		c.handleApiError(apiErr)
		return
	}

	if seq != c.state.currentCommentSeq(postId) {
		return
	}

	view.Comments = comments
	view.CommentOrder = order
	c.Print(c.renderer.PostCard(view))
}

func (c *Controller) newPost() {
	title, err := c.Input("Title:", "")
	if err != nil || title == "" {
		return
	}

	content, err := c.Input("Content:", "")
	if err != nil {
		return
	}

	publish, err := c.Confirm("Publish now?")
	if err != nil {
		return
	}

	c.CreatePost(types.CreatePostRequest{
		Title:       title,
		Content:     content,
		IsPublished: publish,
	})
}

// CreatePost submits an already-collected post and reloads the list under the
// current global sort order.
func (c *Controller) CreatePost(req types.CreatePostRequest) {
	apiErr := c.client.CreatePost(req)
	if apiErr != nil {
		c.handleApiError(apiErr)
		return
	}

	c.LoadPostList()
}

func (c *Controller) editPost(postId int64) {
	post := c.findPost(postId)
	if post == nil {
		return
	}

	// prefill from the targeted post
	title, err := c.Input("Title:", post.Title)
	if err != nil || title == "" {
		return
	}

	content, err := c.Input("Content:", post.Content)
	if err != nil {
		return
	}

	apiErr := c.client.UpdatePost(postId, types.UpdatePostRequest{
		Title:   title,
		Content: content,
	})
	if apiErr != nil {
		c.handleApiError(apiErr)
		return
	}

	c.LoadPostList()
}

func (c *Controller) deletePost(postId int64) {
	confirmed, err := c.Confirm("Delete post %d?", postId)
	if err != nil || !confirmed {
		// declined confirmation is a no-op, no network call
		return
	}

	apiErr := c.client.DeletePost(postId)
	if apiErr != nil {
		c.handleApiError(apiErr)
		return
	}

	c.LoadPostList()
}

func (c *Controller) addComment(postId int64) {
	content, err := c.Input("Comment:", "")
	if err != nil || content == "" {
		return
	}

	apiErr := c.client.CreateComment(postId, types.CreateCommentRequest{Content: content})
	if apiErr != nil {
		c.handleApiError(apiErr)
		return
	}

	c.RefreshComments(postId)
}

// findPost resolves a post from the current view registry, falling back to a
// fresh list fetch for one-shot commands that never loaded the list.
func (c *Controller) findPost(postId int64) *types.Post {
	if view := c.state.View(postId); view != nil {
		return view.Post
	}

	posts, apiErr := c.client.ListPosts(c.state.Sort.PostsOrder())
	if apiErr != nil {
		c.handleApiError(apiErr)
		return nil
	}

	for _, post := range posts {
		if post.Id == postId {
			return post
		}
	}

	c.Notify("post %d not found", postId)
	return nil
}

func (c *Controller) editComment(postId, commentId int64) {
	var def string
	if view := c.state.View(postId); view != nil {
		for _, comment := range view.Comments {
			if comment.Id == commentId {
				def = comment.Content
				break
			}
		}
	} else if comments, apiErr := c.client.ListComments(postId, c.state.Sort.CommentsOrder(postId)); apiErr == nil {
		for _, comment := range comments {
			if comment.Id == commentId {
				def = comment.Content
				break
			}
		}
	}

	content, err := c.Input("Comment:", def)
	if err != nil || content == "" {
		return
	}

	apiErr := c.client.UpdateComment(postId, commentId, types.UpdateCommentRequest{Content: content})
	if apiErr != nil {
		c.handleApiError(apiErr)
		return
	}

	c.RefreshComments(postId)
}

func (c *Controller) deleteComment(postId, commentId int64) {
	confirmed, err := c.Confirm("Delete this comment?")
	if err != nil || !confirmed {
		return
	}

	apiErr := c.client.DeleteComment(postId, commentId)
	if apiErr != nil {
		c.handleApiError(apiErr)
		return
	}

	c.RefreshComments(postId)
}

// handleApiError is where every failed call lands. Session expiry forces the
// unauthenticated view with a single notice even when several in-flight
// fetches hit the same 401; everything else surfaces as a transient notice.
func (c *Controller) handleApiError(apiErr *types.ApiError) {
	if apiErr.IsSessionExpired() {
		c.view = ViewUnauthenticated
		if auth.ConsumeSessionExpired() {
			c.Notify("session expired, please sign in again")
		}
		return
	}

	c.Notify(apiErr.Msg)
}
