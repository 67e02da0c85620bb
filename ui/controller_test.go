package ui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"scribe-cli/auth"
	"scribe-cli/fs"
	"scribe-cli/render"
	"scribe-cli/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient implements types.ApiClient in memory so controller scenarios can
// run without a server. Posts are kept sorted by id according to the requested
// order, mirroring the server's created-at ordering.
type fakeClient struct {
	mu sync.Mutex

	posts          []*types.Post
	commentsByPost map[int64][]*types.Comment
	nextId         int64

	listOrders    []types.SortOrder
	commentOrders map[int64][]types.SortOrder

	deletePostCalls    int
	deleteCommentCalls int

	listPostsErr    *types.ApiError
	listCommentsErr *types.ApiError

	// commentDelay lets a test make one post's fetch resolve after the others
	commentDelay map[int64]time.Duration
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		commentsByPost: map[int64][]*types.Comment{},
		commentOrders:  map[int64][]types.SortOrder{},
		commentDelay:   map[int64]time.Duration{},
	}
}

func (f *fakeClient) addPost(title, authorName string) *types.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextId++
	post := &types.Post{
		Id:        f.nextId,
		Title:     title,
		Content:   "content of " + title,
		Author:    &types.Author{Username: authorName},
		CreatedAt: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(f.nextId) * time.Hour),
	}
	f.posts = append(f.posts, post)
	return post
}

func (f *fakeClient) addComment(postId int64, content, authorName string) *types.Comment {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextId++
	comment := &types.Comment{
		Id:      f.nextId,
		PostId:  postId,
		Content: content,
		Author:  &types.Author{Username: authorName},
	}
	f.commentsByPost[postId] = append(f.commentsByPost[postId], comment)
	return comment
}

func (f *fakeClient) Register(req types.RegisterRequest) *types.ApiError {
	return nil
}

func (f *fakeClient) SignIn(req types.SignInRequest) (*types.SignInResponse, *types.ApiError) {
	return &types.SignInResponse{AccessToken: "fake-token"}, nil
}

func (f *fakeClient) ListPosts(order types.SortOrder) ([]*types.Post, *types.ApiError) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listPostsErr != nil {
		return nil, f.listPostsErr
	}

	f.listOrders = append(f.listOrders, order)

	out := make([]*types.Post, len(f.posts))
	copy(out, f.posts)
	sort.Slice(out, func(i, j int) bool {
		if order == types.SortAsc {
			return out[i].Id < out[j].Id
		}
		return out[i].Id > out[j].Id
	})
	return out, nil
}

func (f *fakeClient) CreatePost(req types.CreatePostRequest) *types.ApiError {
	f.addPost(req.Title, "alice")
	return nil
}

func (f *fakeClient) UpdatePost(postId int64, req types.UpdatePostRequest) *types.ApiError {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, post := range f.posts {
		if post.Id == postId {
			post.Title = req.Title
			post.Content = req.Content
			return nil
		}
	}
	return &types.ApiError{Type: types.ApiErrorTypeRequest, Status: 404, Msg: "post not found"}
}

func (f *fakeClient) DeletePost(postId int64) *types.ApiError {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletePostCalls++
	for i, post := range f.posts {
		if post.Id == postId {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return &types.ApiError{Type: types.ApiErrorTypeRequest, Status: 404, Msg: "post not found"}
}

func (f *fakeClient) ListComments(postId int64, order types.SortOrder) ([]*types.Comment, *types.ApiError) {
	f.mu.Lock()
	delay := f.commentDelay[postId]
	f.mu.Unlock()
	if delay > 0 {
		time.Sleep(delay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listCommentsErr != nil {
		return nil, f.listCommentsErr
	}

	f.commentOrders[postId] = append(f.commentOrders[postId], order)

	out := make([]*types.Comment, len(f.commentsByPost[postId]))
	copy(out, f.commentsByPost[postId])
	sort.Slice(out, func(i, j int) bool {
		if order == types.SortAsc {
			return out[i].Id < out[j].Id
		}
		return out[i].Id > out[j].Id
	})
	return out, nil
}

func (f *fakeClient) CreateComment(postId int64, req types.CreateCommentRequest) *types.ApiError {
	f.addComment(postId, req.Content, "alice")
	return nil
}

func (f *fakeClient) UpdateComment(postId, commentId int64, req types.UpdateCommentRequest) *types.ApiError {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, comment := range f.commentsByPost[postId] {
		if comment.Id == commentId {
			comment.Content = req.Content
			return nil
		}
	}
	return &types.ApiError{Type: types.ApiErrorTypeRequest, Status: 404, Msg: "comment not found"}
}

func (f *fakeClient) DeleteComment(postId, commentId int64) *types.ApiError {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCommentCalls++
	comments := f.commentsByPost[postId]
	for i, comment := range comments {
		if comment.Id == commentId {
			f.commentsByPost[postId] = append(comments[:i], comments[i+1:]...)
			return nil
		}
	}
	return &types.ApiError{Type: types.ApiErrorTypeRequest, Status: 404, Msg: "comment not found"}
}

// testHarness wires a controller to the fake client with all user interaction
// captured instead of hitting a terminal.
type testHarness struct {
	client     *fakeClient
	controller *Controller

	printed []string
	notices []string

	confirmAnswer bool
	inputs        []string
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()

	dir := t.TempDir()
	fs.HomeSessionPath = filepath.Join(dir, "session.json")
	fs.HomeAccountsPath = filepath.Join(dir, "accounts.json")
	require.NoError(t, auth.Clear())
	auth.ConsumeSessionExpired()

	h := &testHarness{
		client:        newFakeClient(),
		confirmAnswer: true,
	}

	h.controller = NewController(h.client, render.New("alice", 200))
	h.controller.Print = func(s string) {
		h.printed = append(h.printed, s)
	}
	h.controller.Notify = func(msg string, args ...interface{}) {
		h.notices = append(h.notices, fmt.Sprintf(msg, args...))
	}
	h.controller.Confirm = func(msg string, args ...interface{}) (bool, error) {
		return h.confirmAnswer, nil
	}
	h.controller.Input = func(msg, def string) (string, error) {
		if len(h.inputs) == 0 {
			return def, nil
		}
		next := h.inputs[0]
		h.inputs = h.inputs[1:]
		return next, nil
	}

	return h
}

func (h *testHarness) lastPrinted(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, h.printed)
	return h.printed[len(h.printed)-1]
}

func (h *testHarness) signedIn(t *testing.T) {
	t.Helper()
	require.NoError(t, auth.Establish("fake-token", "alice"))
	h.controller.Start()
}

func TestStartWithoutSessionStaysUnauthenticated(t *testing.T) {
	h := newHarness(t)

	h.controller.Start()

	assert.Equal(t, ViewUnauthenticated, h.controller.View())
	assert.Empty(t, h.printed)
}

func TestCreatedPostAppearsUnderCurrentOrder(t *testing.T) {
	h := newHarness(t)
	h.client.addPost("First", "bob")
	h.signedIn(t)

	h.controller.CreatePost(types.CreatePostRequest{Title: "Hello", Content: "hi", IsPublished: true})

	out := h.lastPrinted(t)
	assert.Contains(t, out, "Hello")
	// newest first: the new post renders above the existing one
	assert.Less(t, strings.Index(out, "Hello"), strings.Index(out, "First"))
}

func TestCreatedPostLastUnderAscendingOrder(t *testing.T) {
	h := newHarness(t)
	h.client.addPost("First", "bob")
	h.signedIn(t)

	h.controller.Dispatch(Action{Kind: ActionTogglePostsOrder})
	h.controller.CreatePost(types.CreatePostRequest{Title: "Hello", Content: "hi", IsPublished: true})

	out := h.lastPrinted(t)
	assert.Less(t, strings.Index(out, "First"), strings.Index(out, "Hello"))
}

func TestTogglePostsOrderTwiceRoundTrips(t *testing.T) {
	h := newHarness(t)
	h.client.addPost("First", "bob")
	h.client.addPost("Second", "bob")
	h.signedIn(t)

	original := h.lastPrinted(t)

	h.controller.Dispatch(Action{Kind: ActionTogglePostsOrder})
	flipped := h.lastPrinted(t)
	assert.Less(t, strings.Index(flipped, "First"), strings.Index(flipped, "Second"))

	h.controller.Dispatch(Action{Kind: ActionTogglePostsOrder})
	assert.Equal(t, original, h.lastPrinted(t))
}

func TestToggleCommentsOrderLeavesOtherPostsAlone(t *testing.T) {
	h := newHarness(t)
	p1 := h.client.addPost("One", "bob")
	p2 := h.client.addPost("Two", "bob")
	h.client.addComment(p1.Id, "a", "carol")
	h.client.addComment(p1.Id, "b", "carol")
	h.signedIn(t)

	h.controller.Dispatch(Action{Kind: ActionToggleCommentsOrder, PostId: p1.Id})

	assert.Equal(t, types.SortAsc, h.controller.State().Sort.CommentsOrder(p1.Id))
	assert.Equal(t, types.SortDesc, h.controller.State().Sort.CommentsOrder(p2.Id))

	// only the one post's card was re-rendered
	out := h.lastPrinted(t)
	assert.Contains(t, out, "One")
	assert.NotContains(t, out, "Two")
}

func TestDeclinedConfirmationMakesNoCall(t *testing.T) {
	h := newHarness(t)
	post := h.client.addPost("Keep me", "alice")
	comment := h.client.addComment(post.Id, "keep me too", "alice")
	h.signedIn(t)
	h.confirmAnswer = false

	h.controller.Dispatch(Action{Kind: ActionDeletePost, PostId: post.Id})
	h.controller.Dispatch(Action{Kind: ActionDeleteComment, PostId: post.Id, CommentId: comment.Id})

	assert.Equal(t, 0, h.client.deletePostCalls)
	assert.Equal(t, 0, h.client.deleteCommentCalls)
}

func TestConfirmedDeleteRemovesPost(t *testing.T) {
	h := newHarness(t)
	post := h.client.addPost("Doomed", "alice")
	h.client.addPost("Survivor", "alice")
	h.signedIn(t)

	h.controller.Dispatch(Action{Kind: ActionDeletePost, PostId: post.Id})

	assert.Equal(t, 1, h.client.deletePostCalls)
	out := h.lastPrinted(t)
	assert.NotContains(t, out, "Doomed")
	assert.Contains(t, out, "Survivor")
}

func TestCommentFetchesLandOnTheirOwnPosts(t *testing.T) {
	h := newHarness(t)
	p1 := h.client.addPost("Slow", "bob")
	p2 := h.client.addPost("Fast", "bob")
	h.client.addComment(p1.Id, "slow comment", "carol")
	h.client.addComment(p2.Id, "fast comment", "carol")

	// the first post's fetch resolves well after the second's
	h.client.commentDelay[p1.Id] = 30 * time.Millisecond

	h.signedIn(t)

	v1 := h.controller.State().View(p1.Id)
	v2 := h.controller.State().View(p2.Id)
	require.NotNil(t, v1)
	require.NotNil(t, v2)

	require.Len(t, v1.Comments, 1)
	require.Len(t, v2.Comments, 1)
	assert.Equal(t, "slow comment", v1.Comments[0].Content)
	assert.Equal(t, "fast comment", v2.Comments[0].Content)
}

func TestSessionExpiryNoticeShownOnce(t *testing.T) {
	h := newHarness(t)
	h.client.addPost("Post", "bob")
	h.signedIn(t)
	require.Equal(t, ViewAuthenticated, h.controller.View())

	// the transport layer invalidates the session on 401, then every call
	// fails with the same expiry until re-auth
	auth.InvalidateSession()
	expired := &types.ApiError{
		Type:   types.ApiErrorTypeSessionExpired,
		Status: 401,
		Msg:    "session expired",
	}
	h.client.listPostsErr = expired

	h.controller.Dispatch(Action{Kind: ActionReload})
	h.controller.Dispatch(Action{Kind: ActionReload})

	assert.Equal(t, ViewUnauthenticated, h.controller.View())

	count := 0
	for _, notice := range h.notices {
		if strings.Contains(notice, "session expired") {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestNonAuthErrorsSurfaceAsNotices(t *testing.T) {
	h := newHarness(t)
	h.signedIn(t)

	h.client.listPostsErr = &types.ApiError{
		Type:   types.ApiErrorTypeRequest,
		Status: 500,
		Msg:    "failed to load posts",
	}

	h.controller.Dispatch(Action{Kind: ActionReload})

	// the view survives, only a transient notice is shown
	assert.Equal(t, ViewAuthenticated, h.controller.View())
	require.NotEmpty(t, h.notices)
	assert.Equal(t, "failed to load posts", h.notices[len(h.notices)-1])
}

func TestAddCommentRerendersOnlyThatCard(t *testing.T) {
	h := newHarness(t)
	p1 := h.client.addPost("Target", "bob")
	h.client.addPost("Bystander", "bob")
	h.signedIn(t)

	h.inputs = []string{"great read"}
	h.controller.Dispatch(Action{Kind: ActionAddComment, PostId: p1.Id})

	out := h.lastPrinted(t)
	assert.Contains(t, out, "great read")
	assert.Contains(t, out, "Target")
	assert.NotContains(t, out, "Bystander")
}

func TestEditCommentPrefillsExistingContent(t *testing.T) {
	h := newHarness(t)
	post := h.client.addPost("Post", "bob")
	comment := h.client.addComment(post.Id, "original text", "alice")
	h.signedIn(t)

	var sawDefault string
	h.controller.Input = func(msg, def string) (string, error) {
		sawDefault = def
		return "fixed text", nil
	}

	h.controller.Dispatch(Action{Kind: ActionEditComment, PostId: post.Id, CommentId: comment.Id})

	assert.Equal(t, "original text", sawDefault)
	assert.Contains(t, h.lastPrinted(t), "fixed text")
}

func TestSignOutReturnsToUnauthenticated(t *testing.T) {
	h := newHarness(t)
	h.signedIn(t)
	require.Equal(t, ViewAuthenticated, h.controller.View())

	h.controller.Dispatch(Action{Kind: ActionSignOut})

	assert.Equal(t, ViewUnauthenticated, h.controller.View())
	assert.Nil(t, auth.Current())
}
