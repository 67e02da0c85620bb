package term

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

func OutputSimpleError(msg string, args ...interface{}) {
	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+capitalize(msg)))
}

func OutputErrorAndExit(msg string, args ...interface{}) {
	StopSpinner()
	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+capitalize(msg)))
	os.Exit(1)
}

// NotifySuccess and friends are the CLI's transient notices: a single styled
// line, then back to the prompt. Nothing sticks around to be dismissed.

func NotifySuccess(msg string, args ...interface{}) {
	msg = fmt.Sprintf(msg, args...)
	fmt.Println(color.New(ColorHiGreen, color.Bold).Sprint("✅ " + capitalize(msg)))
}

func NotifyWarning(msg string, args ...interface{}) {
	msg = fmt.Sprintf(msg, args...)
	fmt.Println(color.New(ColorHiYellow, color.Bold).Sprint("⚠️  " + capitalize(msg)))
}

func NotifyError(msg string, args ...interface{}) {
	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+capitalize(msg)))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
