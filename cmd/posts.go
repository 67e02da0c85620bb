package cmd

import (
	"fmt"

	"scribe-cli/api"
	"scribe-cli/auth"
	"scribe-cli/render"
	"scribe-cli/term"
	"scribe-cli/types"

	"github.com/spf13/cobra"
)

var postsSortFlag string

var postsCmd = &cobra.Command{
	Use:     "posts",
	Aliases: []string{"ls"},
	Short:   "List posts",
	Args:    cobra.NoArgs,
	Run:     posts,
}

func init() {
	RootCmd.AddCommand(postsCmd)

	postsCmd.Flags().StringVar(&postsSortFlag, "sort", "desc", "sort order by creation time (asc|desc)")
}

func posts(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	order, err := types.ParseSortOrder(postsSortFlag)
	if err != nil {
		term.OutputErrorAndExit("%v", err)
	}

	term.StartSpinner("")
	posts, apiErr := api.Client.ListPosts(order)
	term.StopSpinner()

	if apiErr != nil {
		if apiErr.IsSessionExpired() && auth.ConsumeSessionExpired() {
			term.OutputErrorAndExit("session expired, please sign in again")
		}
		term.OutputErrorAndExit("Error loading posts: %v", apiErr.Msg)
	}

	renderer := render.New(auth.Current().DisplayName, term.GetTerminalWidth())
	fmt.Print(renderer.PostTable(posts))

	fmt.Println()
	term.PrintCmds("", "comments", "new", "browse")
}
