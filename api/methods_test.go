package api

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"scribe-cli/auth"
	"scribe-cli/fs"
	"scribe-cli/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startServer points the package client at an httptest server and resets the
// session state, undoing both when the test finishes.
func startServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	prevURL := BaseURL
	BaseURL = server.URL
	t.Cleanup(func() { BaseURL = prevURL })

	dir := t.TempDir()
	fs.HomeSessionPath = filepath.Join(dir, "session.json")
	fs.HomeAccountsPath = filepath.Join(dir, "accounts.json")
	require.NoError(t, auth.Clear())
	auth.ConsumeSessionExpired()

	return server
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	})
	require.NoError(t, auth.Establish("tok-123", "alice"))

	var client Api
	_, apiErr := client.ListPosts(types.SortDesc)

	require.Nil(t, apiErr)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoBearerTokenWithoutSession(t *testing.T) {
	var gotAuth string
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	})

	var client Api
	_, apiErr := client.ListPosts(types.SortDesc)

	require.Nil(t, apiErr)
	assert.Empty(t, gotAuth)
}

func TestSortOrderForwardedAsQueryParam(t *testing.T) {
	var gotSort string
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotSort = r.URL.Query().Get("sort")
		w.Write([]byte("[]"))
	})

	var client Api
	_, apiErr := client.ListPosts(types.SortAsc)
	require.Nil(t, apiErr)
	assert.Equal(t, "asc", gotSort)

	_, apiErr = client.ListComments(3, types.SortDesc)
	require.Nil(t, apiErr)
	assert.Equal(t, "desc", gotSort)
}

func TestDetailMessageWins(t *testing.T) {
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": "title must not be empty"}`))
	})

	var client Api
	apiErr := client.CreatePost(types.CreatePostRequest{})

	require.NotNil(t, apiErr)
	assert.Equal(t, types.ApiErrorTypeValidation, apiErr.Type)
	assert.Equal(t, "title must not be empty", apiErr.Msg)
}

func TestFallbackMessageWhenNoDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"non-JSON body", "<html>Internal Server Error</html>"},
		{"JSON without detail", `{"error": "nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			startServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(tt.body))
			})

			var client Api
			apiErr := client.CreatePost(types.CreatePostRequest{Title: "x", Content: "y"})

			require.NotNil(t, apiErr)
			assert.Equal(t, types.ApiErrorTypeRequest, apiErr.Type)
			assert.Equal(t, "failed to create post", apiErr.Msg)
		})
	}
}

func TestUnauthorizedInvalidatesSession(t *testing.T) {
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "token expired"}`))
	})
	require.NoError(t, auth.Establish("stale-token", "alice"))

	var client Api
	_, apiErr := client.ListPosts(types.SortDesc)

	require.NotNil(t, apiErr)
	assert.True(t, apiErr.IsSessionExpired())
	assert.Nil(t, auth.Current())
	// the expiry notice is armed exactly once
	assert.True(t, auth.ConsumeSessionExpired())
	assert.False(t, auth.ConsumeSessionExpired())

	// the persisted session is gone too
	restored, err := auth.Restore()
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestConcurrentUnauthorizedCalls(t *testing.T) {
	// several comment fetches run in parallel during a list load; when the
	// token has expired they all hit 401 at once, and the first one clears
	// the session while the others are still reading it
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "token expired"}`))
	})
	require.NoError(t, auth.Establish("stale-token", "alice"))

	var client Api
	errs := make([]*types.ApiError, 4)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.ListComments(int64(i+1), types.SortDesc)
		}(i)
	}
	wg.Wait()

	for _, apiErr := range errs {
		require.NotNil(t, apiErr)
		assert.True(t, apiErr.IsSessionExpired())
	}

	assert.Nil(t, auth.Current())
	// however many calls hit the expiry, one notice is pending
	assert.True(t, auth.ConsumeSessionExpired())
	assert.False(t, auth.ConsumeSessionExpired())
}

func TestPackageClientServesInterface(t *testing.T) {
	var gotAuth string
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	})
	require.NoError(t, auth.Establish("tok-789", "alice"))

	// the package-level Client is what cmd and auth are wired to
	require.NotNil(t, Client)
	posts, apiErr := Client.ListPosts(types.SortDesc)

	require.Nil(t, apiErr)
	assert.Empty(t, posts)
	assert.Equal(t, "Bearer tok-789", gotAuth)
}

func TestSignInWrongCredentialsIsNotExpiry(t *testing.T) {
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "incorrect email or password"}`))
	})

	var client Api
	resp, apiErr := client.SignIn(types.SignInRequest{Email: "a@x.com", Password: "bad"})

	assert.Nil(t, resp)
	require.NotNil(t, apiErr)
	assert.Equal(t, types.ApiErrorTypeValidation, apiErr.Type)
	assert.Equal(t, "incorrect email or password", apiErr.Msg)
	// wrong credentials never arm the session-expired notice
	assert.False(t, auth.ConsumeSessionExpired())
}

func TestSignInReturnsToken(t *testing.T) {
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"access_token": "tok-456", "token_type": "bearer"}`))
	})

	var client Api
	resp, apiErr := client.SignIn(types.SignInRequest{Email: "a@x.com", Password: "good-pass1"})

	require.Nil(t, apiErr)
	assert.Equal(t, "tok-456", resp.AccessToken)
}

func TestListPostsDecodesBothAuthorShapes(t *testing.T) {
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "title": "Nested", "content": "a", "author": {"username": "alice", "email": "alice@x.com"}},
			{"id": 2, "title": "Flat", "content": "b", "author_email": "bob@x.com"}
		]`))
	})

	var client Api
	posts, apiErr := client.ListPosts(types.SortDesc)

	require.Nil(t, apiErr)
	require.Len(t, posts, 2)
	assert.Equal(t, "alice", posts[0].AuthorIdentity())
	assert.Equal(t, "bob@x.com", posts[1].AuthorIdentity())
}

func TestMutationVerbsAndPaths(t *testing.T) {
	type call struct {
		method string
		path   string
	}
	var calls []call
	startServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		w.WriteHeader(http.StatusOK)
	})

	var client Api
	require.Nil(t, client.UpdatePost(5, types.UpdatePostRequest{Title: "t", Content: "c"}))
	require.Nil(t, client.DeletePost(5))
	require.Nil(t, client.CreateComment(5, types.CreateCommentRequest{Content: "c"}))
	require.Nil(t, client.UpdateComment(5, 9, types.UpdateCommentRequest{Content: "c"}))
	require.Nil(t, client.DeleteComment(5, 9))

	assert.Equal(t, []call{
		{http.MethodPut, "/posts/5"},
		{http.MethodDelete, "/posts/5"},
		{http.MethodPost, "/posts/5/comments"},
		{http.MethodPut, "/posts/5/comments/9"},
		{http.MethodDelete, "/posts/5/comments/9"},
	}, calls)
}
