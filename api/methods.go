package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"scribe-cli/types"
)

func (a *Api) Register(req types.RegisterRequest) *types.ApiError {
	serverUrl := BaseURL + "/auth/register"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := unauthenticatedClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return handleApiError(resp, errorBody, "failed to create account")
	}

	return nil
}

func (a *Api) SignIn(req types.SignInRequest) (*types.SignInResponse, *types.ApiError) {
	serverUrl := BaseURL + "/auth/login"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := unauthenticatedClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		// a 401 here is wrong credentials, not an expired session
		if resp.StatusCode == http.StatusUnauthorized {
			msg := extractDetail(errorBody)
			if msg == "" {
				msg = "failed to sign in"
			}
			return nil, &types.ApiError{Type: types.ApiErrorTypeValidation, Status: resp.StatusCode, Msg: msg}
		}
		return nil, handleApiError(resp, errorBody, "failed to sign in")
	}

	var respBody types.SignInResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &respBody, nil
}

func (a *Api) ListPosts(sort types.SortOrder) ([]*types.Post, *types.ApiError) {
	serverUrl := fmt.Sprintf("%s/posts?sort=%s", BaseURL, sort)

	resp, err := authenticatedClient.Get(serverUrl)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody, "failed to load posts")
	}

	var posts []*types.Post
	err = json.NewDecoder(resp.Body).Decode(&posts)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return posts, nil
}

func (a *Api) CreatePost(req types.CreatePostRequest) *types.ApiError {
	serverUrl := BaseURL + "/posts"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := authenticatedClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return handleApiError(resp, errorBody, "failed to create post")
	}

	return nil
}

func (a *Api) UpdatePost(postId int64, req types.UpdatePostRequest) *types.ApiError {
	serverUrl := fmt.Sprintf("%s/posts/%d", BaseURL, postId)

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	request, err := http.NewRequest(http.MethodPut, serverUrl, bytes.NewBuffer(reqBytes))
	if err != nil {
		return &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := authenticatedClient.Do(request)
	if err != nil {
		return &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return handleApiError(resp, errorBody, "failed to update post")
	}

	return nil
}

func (a *Api) DeletePost(postId int64) *types.ApiError {
	serverUrl := fmt.Sprintf("%s/posts/%d", BaseURL, postId)

	request, err := http.NewRequest(http.MethodDelete, serverUrl, nil)
	if err != nil {
		return &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error creating request: %v", err)}
	}

	resp, err := authenticatedClient.Do(request)
	if err != nil {
		return &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return handleApiError(resp, errorBody, "failed to delete post")
	}

	return nil
}

func (a *Api) ListComments(postId int64, sort types.SortOrder) ([]*types.Comment, *types.ApiError) {
	serverUrl := fmt.Sprintf("%s/posts/%d/comments?sort=%s", BaseURL, postId, sort)

	resp, err := authenticatedClient.Get(serverUrl)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody, "failed to load comments")
	}

	var comments []*types.Comment
	err = json.NewDecoder(resp.Body).Decode(&comments)
	if err != nil {
		return nil, &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return comments, nil
}

func (a *Api) CreateComment(postId int64, req types.CreateCommentRequest) *types.ApiError {
	serverUrl := fmt.Sprintf("%s/posts/%d/comments", BaseURL, postId)

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := authenticatedClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return handleApiError(resp, errorBody, "failed to add comment")
	}

	return nil
}

func (a *Api) UpdateComment(postId, commentId int64, req types.UpdateCommentRequest) *types.ApiError {
	serverUrl := fmt.Sprintf("%s/posts/%d/comments/%d", BaseURL, postId, commentId)

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	request, err := http.NewRequest(http.MethodPut, serverUrl, bytes.NewBuffer(reqBytes))
	if err != nil {
		return &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := authenticatedClient.Do(request)
	if err != nil {
		return &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return handleApiError(resp, errorBody, "failed to update comment")
	}

	return nil
}

func (a *Api) DeleteComment(postId, commentId int64) *types.ApiError {
	serverUrl := fmt.Sprintf("%s/posts/%d/comments/%d", BaseURL, postId, commentId)

	request, err := http.NewRequest(http.MethodDelete, serverUrl, nil)
	if err != nil {
		return &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error creating request: %v", err)}
	}

	resp, err := authenticatedClient.Do(request)
	if err != nil {
		return &types.ApiError{Type: types.ApiErrorTypeRequest, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return handleApiError(resp, errorBody, "failed to delete comment")
	}

	return nil
}
