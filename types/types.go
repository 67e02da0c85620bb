package types

import (
	"fmt"
	"strings"
	"time"
)

// SortOrder is the createdAt ordering for a post list or a comment list.
// The zero value is not valid; use SortDesc as the default.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) Toggled() SortOrder {
	if o == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// ParseSortOrder validates a user-supplied order value (e.g. a --sort flag).
func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case string(SortAsc):
		return SortAsc, nil
	case string(SortDesc):
		return SortDesc, nil
	}
	return "", fmt.Errorf("invalid sort order %q (expected asc or desc)", s)
}

// ClientSession is the persisted auth state for this machine. There is exactly
// one per process; it lives in session.json under the scribe home dir.
type ClientSession struct {
	Token       string `json:"token"`
	DisplayName string `json:"displayName"`
}

// ClientAccount records an email → username pairing from a registration made on
// this machine. Login responses carry no username, so this is the only way to
// show the chosen username after a later sign-in. Best effort only.
type ClientAccount struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Author is the nested author object served by newer API revisions.
type Author struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Post as served by the API. Older revisions send a flat author_email field,
// newer ones a nested author object; both may appear in the same list.
type Post struct {
	Id          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	AuthorEmail string    `json:"author_email,omitempty"`
	Author      *Author   `json:"author,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Comment struct {
	Id          int64     `json:"id"`
	PostId      int64     `json:"post_id"`
	Content     string    `json:"content"`
	AuthorEmail string    `json:"author_email,omitempty"`
	Author      *Author   `json:"author,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ResolveAuthor computes the single display identity for a post or comment.
// Precedence: nested username, nested email, flat email field, "anon". Both
// response shapes funnel through here; don't resolve author fields anywhere
// else.
func ResolveAuthor(author *Author, flatEmail string) string {
	if author != nil {
		if s := strings.TrimSpace(author.Username); s != "" {
			return s
		}
		if s := strings.TrimSpace(author.Email); s != "" {
			return s
		}
	}
	if s := strings.TrimSpace(flatEmail); s != "" {
		return s
	}
	return "anon"
}

func (p *Post) AuthorIdentity() string {
	return ResolveAuthor(p.Author, p.AuthorEmail)
}

func (c *Comment) AuthorIdentity() string {
	return ResolveAuthor(c.Author, c.AuthorEmail)
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	AccessToken string `json:"access_token"`
}

type CreatePostRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsPublished bool   `json:"is_published"`
}

type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}
