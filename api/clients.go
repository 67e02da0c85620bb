package api

import (
	"net"
	"net/http"
	"os"
	"time"

	"scribe-cli/auth"
	"scribe-cli/types"
	"scribe-cli/utils"
)

const dialTimeout = 10 * time.Second
const reqTimeout = 30 * time.Second

type Api struct{}

// BaseURL is a var so tests can point the client at an httptest server.
var BaseURL string

var Client types.ApiClient = &Api{}

func init() {
	if host := os.Getenv("SCRIBE_API_HOST"); host != "" {
		BaseURL = utils.NormalizeHost(host)
	} else if os.Getenv("SCRIBE_ENV") == "development" {
		BaseURL = "http://localhost:8000"
	} else {
		BaseURL = "https://api.scribe.blog"
	}
}

type authenticatedTransport struct {
	underlyingTransport http.RoundTripper
}

// RoundTrip executes a single HTTP transaction, attaching the bearer token
// when a session exists.
func (t *authenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if session := auth.Current(); session != nil && session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}
	return t.underlyingTransport.RoundTrip(req)
}

var netDialer = &net.Dialer{
	Timeout: dialTimeout,
}

var unauthenticatedClient = &http.Client{
	Transport: &http.Transport{
		Dial: netDialer.Dial,
	},
	Timeout: reqTimeout,
}

var authenticatedClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: reqTimeout,
}
