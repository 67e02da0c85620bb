package ui

import (
	"scribe-cli/render"
	"scribe-cli/types"
)

// SortState holds the global post ordering and an independent ordering per
// post for its comments. Comment orderings are created lazily on first access
// and kept for the life of the session.
type SortState struct {
	postsOrder    types.SortOrder
	commentOrders map[int64]types.SortOrder
}

func NewSortState() *SortState {
	return &SortState{
		postsOrder:    types.SortDesc,
		commentOrders: map[int64]types.SortOrder{},
	}
}

func (s *SortState) PostsOrder() types.SortOrder {
	return s.postsOrder
}

func (s *SortState) SetPostsOrder(order types.SortOrder) {
	s.postsOrder = order
}

func (s *SortState) TogglePostsOrder() types.SortOrder {
	s.postsOrder = s.postsOrder.Toggled()
	return s.postsOrder
}

func (s *SortState) CommentsOrder(postId int64) types.SortOrder {
	if order, ok := s.commentOrders[postId]; ok {
		return order
	}
	s.commentOrders[postId] = types.SortDesc
	return types.SortDesc
}

func (s *SortState) SetCommentsOrder(postId int64, order types.SortOrder) {
	s.commentOrders[postId] = order
}

func (s *SortState) ToggleCommentsOrder(postId int64) types.SortOrder {
	order := s.CommentsOrder(postId).Toggled()
	s.commentOrders[postId] = order
	return order
}

// State is the application state owned by the Controller: the sort state, the
// current view registry, and the fetch sequence counters that make overlapping
// re-fetches safe. No ambient globals; everything the renderer needs to
// re-render a subtree is reachable from here.
type State struct {
	Sort *SortState

	views      []*render.PostView
	viewByPost map[int64]*render.PostView

	listSeq     uint64
	commentSeqs map[int64]uint64
}

func NewState() *State {
	return &State{
		Sort:        NewSortState(),
		viewByPost:  map[int64]*render.PostView{},
		commentSeqs: map[int64]uint64{},
	}
}

func (s *State) setViews(views []*render.PostView) {
	s.views = views
	s.viewByPost = map[int64]*render.PostView{}
	for _, view := range views {
		s.viewByPost[view.Post.Id] = view
	}
}

func (s *State) View(postId int64) *render.PostView {
	return s.viewByPost[postId]
}

func (s *State) Views() []*render.PostView {
	return s.views
}

// nextListSeq/nextCommentSeq implement "latest request wins" for superseded
// re-fetches: a response whose sequence number is no longer current is
// discarded instead of rendered.
func (s *State) nextListSeq() uint64 {
	s.listSeq++
	return s.listSeq
}

func (s *State) currentListSeq() uint64 {
	return s.listSeq
}

func (s *State) nextCommentSeq(postId int64) uint64 {
	s.commentSeqs[postId]++
	return s.commentSeqs[postId]
}

func (s *State) currentCommentSeq(postId int64) uint64 {
	return s.commentSeqs[postId]
}
