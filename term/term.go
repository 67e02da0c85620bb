package term

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var CmdDesc = map[string][2]string{
	"register":       {"", "create an account"},
	"sign-in":        {"si", "sign in with your email"},
	"sign-out":       {"so", "sign out and clear the stored session"},
	"browse":         {"b", "browse posts interactively"},
	"posts":          {"ls", "list posts"},
	"new":            {"", "write a new post"},
	"edit":           {"e", "edit one of your posts"},
	"delete":         {"del", "delete one of your posts"},
	"comments":       {"cs", "show a post with its comments"},
	"comment":        {"c", "comment on a post"},
	"edit-comment":   {"ec", "edit one of your comments"},
	"delete-comment": {"dc", "delete one of your comments"},
}

func PrintCmds(prefix string, cmds ...string) {
	for _, cmd := range cmds {
		config, ok := CmdDesc[cmd]
		if !ok {
			continue
		}

		alias := config[0]
		desc := config[1]
		if alias != "" {
			cmd = strings.Replace(cmd, alias, fmt.Sprintf("(%s)", alias), 1)
		}
		styled := color.New(color.Bold, color.FgHiWhite, color.BgCyan).Sprintf(" scribe %s ", cmd)

		fmt.Printf("%s%s 👉 %s\n", prefix, styled, desc)
	}
}

func ClearCurrentLine() {
	fmt.Print("\033[2K\r")
}

func ClearScreen() {
	fmt.Print("\x1b[2J")
}

func MoveCursorToTopLeft() {
	fmt.Print("\x1b[H")
}

func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
