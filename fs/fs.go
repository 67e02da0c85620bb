package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Exported as vars so tests can point them at a temp dir.
var HomeDir string
var HomeScribeDir string
var HomeSessionPath string
var HomeAccountsPath string
var HomeLogPath string

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't find home dir: %v\n", err)
		os.Exit(1)
	}
	HomeDir = home

	if os.Getenv("SCRIBE_ENV") == "development" {
		HomeScribeDir = filepath.Join(home, ".scribe-home-dev")
	} else {
		HomeScribeDir = filepath.Join(home, ".scribe-home")
	}

	err = os.MkdirAll(HomeScribeDir, os.ModePerm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating %s: %v\n", HomeScribeDir, err)
		os.Exit(1)
	}

	HomeSessionPath = filepath.Join(HomeScribeDir, "session.json")
	HomeAccountsPath = filepath.Join(HomeScribeDir, "accounts.json")
	HomeLogPath = filepath.Join(HomeScribeDir, "scribe.log")
}
