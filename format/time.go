package format

import (
	"fmt"
	"time"
)

// LongDate renders a timestamp the way post and comment bylines show it:
// day, full month name, year, hour:minute. A zero time renders as an empty
// string rather than a bogus epoch date.
func LongDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2 January 2006, 15:04")
}

// Time formats a time relative to now, e.g. "3w ago". Used in the compact
// post list table where a full byline would be noise.
func Time(then time.Time) string {
	return relTime(then.UTC(), time.Now().UTC())
}

const day = 24 * time.Hour
const week = 7 * day
const month = 30 * day

type magnitude struct {
	d      time.Duration
	format string
	divBy  time.Duration
}

var magnitudes = []magnitude{
	{2 * time.Second, "just now", 0},
	{time.Minute, "%ds ago", time.Second},
	{time.Hour, "%dm ago", time.Minute},
	{day, "%dh ago", time.Hour},
	{week, "%dd ago", day},
	{month, "%dw ago", week},
}

func relTime(then, now time.Time) string {
	if then.IsZero() {
		return ""
	}

	diff := now.Sub(then)
	if diff < 0 {
		diff = 0
	}

	for _, mag := range magnitudes {
		if diff < mag.d {
			if mag.divBy == 0 {
				return mag.format
			}
			return fmt.Sprintf(mag.format, diff/mag.divBy)
		}
	}

	// too old for a relative label
	return then.Local().Format("Jan 2 2006")
}
