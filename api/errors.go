package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"scribe-cli/auth"
	"scribe-cli/types"
)

// errorDetail is the error body shape served by the API.
type errorDetail struct {
	Detail string `json:"detail"`
}

// handleApiError turns a non-success response into an ApiError. The server's
// detail text wins when present; otherwise fallbackMsg, which is fixed per
// operation. A 401 invalidates the session before returning so the expired
// condition propagates distinguished from ordinary failures.
func handleApiError(r *http.Response, errBody []byte, fallbackMsg string) *types.ApiError {
	if r.StatusCode == http.StatusUnauthorized {
		auth.InvalidateSession()
		return &types.ApiError{
			Type:   types.ApiErrorTypeSessionExpired,
			Status: r.StatusCode,
			Msg:    "session expired",
		}
	}

	msg := extractDetail(errBody)
	if msg == "" {
		msg = fallbackMsg
	}

	errType := types.ApiErrorTypeRequest
	if r.StatusCode == http.StatusBadRequest || r.StatusCode == http.StatusUnprocessableEntity {
		errType = types.ApiErrorTypeValidation
	}

	return &types.ApiError{
		Type:   errType,
		Status: r.StatusCode,
		Msg:    msg,
	}
}

func extractDetail(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var parsed errorDetail
	if err := json.Unmarshal(body, &parsed); err != nil {
		log.Printf("error response body is not JSON: %v", err)
		return ""
	}

	return strings.TrimSpace(parsed.Detail)
}
