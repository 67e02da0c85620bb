package types

type ApiErrorType string

const (
	// ApiErrorTypeValidation covers rejected register/login input; Msg carries
	// the server's detail text.
	ApiErrorTypeValidation ApiErrorType = "validation"

	// ApiErrorTypeRequest is any other non-success outcome. Msg is the server
	// detail when present, else a fixed fallback for the attempted operation.
	ApiErrorTypeRequest ApiErrorType = "request"

	// ApiErrorTypeSessionExpired is a 401 on an authenticated call. The session
	// has already been cleared by the time a caller sees this.
	ApiErrorTypeSessionExpired ApiErrorType = "session_expired"
)

type ApiError struct {
	Type   ApiErrorType `json:"type"`
	Status int          `json:"status"`
	Msg    string       `json:"msg"`
}

func (e *ApiError) Error() string {
	return e.Msg
}

func (e *ApiError) IsSessionExpired() bool {
	return e != nil && e.Type == ApiErrorTypeSessionExpired
}
