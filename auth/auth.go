package auth

import (
	"scribe-cli/term"
)

// MustResolveAuth ensures there is a signed-in session before an authenticated
// command runs: restores the persisted session if one exists, otherwise walks
// the user through registering or signing in.
func MustResolveAuth() {
	if apiClient == nil {
		term.OutputErrorAndExit("error resolving auth: api client not set")
	}

	if Current() != nil {
		return
	}

	session, err := Restore()
	if err != nil {
		term.OutputErrorAndExit("error restoring session: %v", err)
	}

	if session != nil {
		return
	}

	err = promptInitialAuth()
	if err != nil {
		term.OutputErrorAndExit("error signing in: %v", err)
	}
}

func SignOut() {
	if err := Clear(); err != nil {
		term.OutputErrorAndExit("error clearing session: %v", err)
	}
}
