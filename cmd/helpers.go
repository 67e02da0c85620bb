package cmd

import (
	"strconv"

	"scribe-cli/api"
	"scribe-cli/auth"
	"scribe-cli/render"
	"scribe-cli/term"
	"scribe-cli/ui"
)

// newController builds the controller for the signed-in user, wired to the
// real API client and terminal prompts.
func newController() *ui.Controller {
	viewerName := ""
	if session := auth.Current(); session != nil {
		viewerName = session.DisplayName
	}

	renderer := render.New(viewerName, term.GetTerminalWidth())
	return ui.NewController(api.Client, renderer)
}

func parseId(arg, what string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		term.OutputErrorAndExit("invalid %s id: %s", what, arg)
	}
	return id
}
