package term

import (
	"time"

	"scribe-cli/utils"

	"github.com/briandowns/spinner"
)

const withMessageMinDuration = 700 * time.Millisecond
const withoutMessageMinDuration = 350 * time.Millisecond

var s = spinner.New(spinner.CharSets[33], 100*time.Millisecond)
var startedAt time.Time

var lastMessage string
var active bool

func StartSpinner(msg string) {
	if active {
		if msg == lastMessage {
			return
		}
		s.Stop()
	}

	startedAt = time.Now()
	s.Prefix = msg + " "
	lastMessage = msg
	s.Start()
	active = true
}

// StopSpinner enforces a minimum visible duration so quick requests don't
// produce a distracting flash.
func StopSpinner() {
	if lastMessage != "" {
		utils.EnsureMinDuration(startedAt, withMessageMinDuration)
	} else {
		utils.EnsureMinDuration(startedAt, withoutMessageMinDuration)
	}

	s.Stop()
	ClearCurrentLine()

	active = false
}
