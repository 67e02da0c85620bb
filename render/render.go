package render

import (
	"fmt"
	"strings"

	"scribe-cli/format"
	"scribe-cli/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"
	"github.com/xlab/treeprint"
)

// Renderer turns posts and comments into terminal view nodes. It never
// prints and never fetches; callers own both.
type Renderer struct {
	// ViewerName gates the edit/delete hints: they render only on entries
	// whose resolved author equals the viewer's display name.
	ViewerName string
	Width      int
}

func New(viewerName string, width int) *Renderer {
	if width <= 0 {
		width = 80
	}
	return &Renderer{ViewerName: viewerName, Width: width}
}

// PostView pairs a post with its fetched comment list. Comments arrive
// pre-sorted by the server under the post's own comment order.
type PostView struct {
	Post         *types.Post
	Comments     []*types.Comment
	CommentOrder types.SortOrder
}

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

func orderLabel(order types.SortOrder) string {
	if order == types.SortAsc {
		return "oldest first"
	}
	return "newest first"
}

// PostList renders the whole authenticated view: a header reflecting the
// global sort order, then one card per post. An empty list renders a
// placeholder instead.
func (r *Renderer) PostList(views []*PostView, order types.SortOrder) string {
	if len(views) == 0 {
		return "🤷 No posts yet — write the first one\n"
	}

	var b strings.Builder

	header := color.New(color.Bold, color.FgHiMagenta).Sprintf("Posts · %s", orderLabel(order))
	b.WriteString(header)
	b.WriteString("\n\n")

	for _, view := range views {
		b.WriteString(r.PostCard(view))
		b.WriteString("\n")
	}

	return b.String()
}

// PostCard renders a single post with its comment subtree. This is the unit
// of targeted re-render: after a comment mutation only the affected post's
// card is rebuilt, never the whole list.
func (r *Renderer) PostCard(view *PostView) string {
	post := view.Post

	var b strings.Builder

	title := color.New(color.Bold, color.FgHiWhite).Sprint(CleanInline(post.Title))
	b.WriteString(title)
	b.WriteString("\n")

	byline := fmt.Sprintf("by %s", CleanInline(post.AuthorIdentity()))
	if ts := format.LongDate(post.CreatedAt); ts != "" {
		byline += " · " + ts
	}
	b.WriteString(color.New(color.FgHiCyan).Sprint(byline))
	b.WriteString("\n\n")

	content := wordwrap.String(CleanText(post.Content), min(r.Width-6, 80))
	b.WriteString(content)
	b.WriteString("\n")

	if r.ownedBy(post.AuthorIdentity()) {
		b.WriteString("\n")
		b.WriteString(ownerHint(fmt.Sprintf("edit %d", post.Id), fmt.Sprintf("delete %d", post.Id)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.commentSection(view))

	return cardStyle.Width(min(r.Width-2, 100)).Render(b.String()) + "\n"
}

func (r *Renderer) commentSection(view *PostView) string {
	var b strings.Builder

	label := fmt.Sprintf("%d comments · %s", len(view.Comments), orderLabel(view.CommentOrder))
	if len(view.Comments) == 1 {
		label = fmt.Sprintf("1 comment · %s", orderLabel(view.CommentOrder))
	}
	b.WriteString(color.New(color.Bold).Sprint(label))
	b.WriteString("\n")

	if len(view.Comments) > 0 {
		tree := treeprint.New()
		for _, comment := range view.Comments {
			tree.AddNode(r.CommentNode(comment))
		}
		b.WriteString(tree.String())
	}

	b.WriteString(color.New(color.FgHiCyan).Sprintf("add a comment: scribe comment %d", view.Post.Id))

	return b.String()
}

// CommentNode renders one comment entry. Ownership hints carry both the post
// id and the comment id so the controller can address the exact target.
func (r *Renderer) CommentNode(comment *types.Comment) string {
	author := CleanInline(comment.AuthorIdentity())

	head := color.New(color.Bold).Sprint(author)
	if ts := format.LongDate(comment.CreatedAt); ts != "" {
		head += color.New(color.FgHiCyan).Sprint(" · " + ts)
	}

	body := CleanInline(comment.Content)

	node := fmt.Sprintf("%s — %s", head, body)

	if r.ownedBy(comment.AuthorIdentity()) {
		node += " " + ownerHint(
			fmt.Sprintf("edit-comment %d %d", comment.PostId, comment.Id),
			fmt.Sprintf("delete-comment %d %d", comment.PostId, comment.Id),
		)
	}

	return node
}

// PostTable is the compact listing used by `scribe posts`.
func (r *Renderer) PostTable(posts []*types.Post) string {
	if len(posts) == 0 {
		return "🤷 No posts yet\n"
	}

	var b strings.Builder
	table := newPostTable(&b)

	for _, post := range posts {
		table.Append([]string{
			fmt.Sprintf("%d", post.Id),
			CleanInline(post.Title),
			CleanInline(post.AuthorIdentity()),
			format.Time(post.CreatedAt),
		})
	}

	table.Render()
	return b.String()
}

func (r *Renderer) ownedBy(authorIdentity string) bool {
	return r.ViewerName != "" && r.ViewerName == authorIdentity
}

func ownerHint(cmds ...string) string {
	parts := make([]string, len(cmds))
	for i, cmd := range cmds {
		parts[i] = "scribe " + cmd
	}
	return color.New(color.FgHiYellow).Sprintf("[%s]", strings.Join(parts, " | "))
}
