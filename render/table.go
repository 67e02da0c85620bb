package render

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

func newPostTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Title", "Author", "Created"})
	return table
}
