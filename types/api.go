package types

type ApiClient interface {
	Register(req RegisterRequest) *ApiError
	SignIn(req SignInRequest) (*SignInResponse, *ApiError)

	ListPosts(sort SortOrder) ([]*Post, *ApiError)
	CreatePost(req CreatePostRequest) *ApiError
	UpdatePost(postId int64, req UpdatePostRequest) *ApiError
	DeletePost(postId int64) *ApiError

	ListComments(postId int64, sort SortOrder) ([]*Comment, *ApiError)
	CreateComment(postId int64, req CreateCommentRequest) *ApiError
	UpdateComment(postId, commentId int64, req UpdateCommentRequest) *ApiError
	DeleteComment(postId, commentId int64) *ApiError
}
