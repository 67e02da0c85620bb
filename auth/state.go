package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"scribe-cli/fs"
	"scribe-cli/types"
)

// mu guards current and expiredPending. The API layer invalidates the session
// from whichever goroutine hits a 401 first, while sibling requests are still
// reading the token, so every access goes through the accessors below.
var mu sync.Mutex

// current is the process-wide session. Nil means unauthenticated.
var current *types.ClientSession

// expiredPending is set when a 401 invalidates the session and reset once the
// notice has been shown, so "session expired" surfaces exactly once even when
// several in-flight calls hit the same expiry.
var expiredPending bool

// Current returns the active session, or nil when signed out.
func Current() *types.ClientSession {
	mu.Lock()
	defer mu.Unlock()
	return current
}

// Restore loads the persisted session, if any. Never hits the network; a
// missing file is not an error.
func Restore() (*types.ClientSession, error) {
	bytes, err := os.ReadFile(fs.HomeSessionPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading session.json: %v", err)
	}

	var session types.ClientSession
	err = json.Unmarshal(bytes, &session)
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling session.json: %v", err)
	}

	mu.Lock()
	current = &session
	mu.Unlock()

	return &session, nil
}

// Establish persists the session and makes it current. Idempotent.
func Establish(token, displayName string) error {
	session := &types.ClientSession{
		Token:       token,
		DisplayName: displayName,
	}

	mu.Lock()
	current = session
	expiredPending = false
	mu.Unlock()

	bytes, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error marshalling session: %v", err)
	}

	err = os.WriteFile(fs.HomeSessionPath, bytes, 0600)
	if err != nil {
		return fmt.Errorf("error writing session: %v", err)
	}

	return nil
}

// Clear removes the persisted session and the in-memory state. Safe to call
// when already cleared.
func Clear() error {
	mu.Lock()
	current = nil
	mu.Unlock()

	err := os.Remove(fs.HomeSessionPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing session: %v", err)
	}

	return nil
}

// InvalidateSession is called by the api package on a 401. It clears the
// session and arms the one-shot expiry notice.
func InvalidateSession() {
	mu.Lock()
	expiredPending = true
	mu.Unlock()

	if err := Clear(); err != nil {
		// already signing out; nothing useful to do with this
		_ = err
	}
}

// ConsumeSessionExpired reports whether an expiry notice is pending and
// disarms it.
func ConsumeSessionExpired() bool {
	mu.Lock()
	defer mu.Unlock()
	if expiredPending {
		expiredPending = false
		return true
	}
	return false
}

func loadAccounts() ([]*types.ClientAccount, error) {
	bytes, err := os.ReadFile(fs.HomeAccountsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []*types.ClientAccount{}, nil
		}
		return nil, fmt.Errorf("error reading accounts.json: %v", err)
	}

	var accounts []*types.ClientAccount
	err = json.Unmarshal(bytes, &accounts)
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling accounts.json: %v", err)
	}

	return accounts, nil
}

// RememberRegistration records the email → username pairing of a registration
// made on this machine. Best effort; a failure here never blocks sign-up.
func RememberRegistration(email, username string) error {
	accounts, err := loadAccounts()
	if err != nil {
		return err
	}

	found := false
	for _, account := range accounts {
		if account.Email == email {
			account.Username = username
			found = true
			break
		}
	}
	if !found {
		accounts = append(accounts, &types.ClientAccount{Email: email, Username: username})
	}

	bytes, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("error marshalling accounts: %v", err)
	}

	err = os.WriteFile(fs.HomeAccountsPath, bytes, 0600)
	if err != nil {
		return fmt.Errorf("error writing accounts: %v", err)
	}

	return nil
}

// DisplayNameForEmail resolves the name shown after sign-in. Login responses
// carry no username, so the best we can do is a username remembered from a
// prior registration with the same email, falling back to the email's
// local-part.
func DisplayNameForEmail(email string) string {
	accounts, err := loadAccounts()
	if err == nil {
		for _, account := range accounts {
			if account.Email == email && account.Username != "" {
				return account.Username
			}
		}
	}

	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
