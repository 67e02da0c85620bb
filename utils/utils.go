package utils

import (
	"strings"
	"time"
)

// EnsureMinDuration sleeps until at least minDuration has passed since start.
// Used to keep spinners visible long enough to read.
func EnsureMinDuration(start time.Time, minDuration time.Duration) {
	elapsed := time.Since(start)
	if elapsed < minDuration {
		time.Sleep(minDuration - elapsed)
	}
}

// NormalizeHost strips trailing slashes from a configured API host so path
// joins don't produce double slashes.
func NormalizeHost(host string) string {
	for len(host) > 1 && strings.HasSuffix(host, "/") {
		host = host[:len(host)-1]
	}
	return host
}
