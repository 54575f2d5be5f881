package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/streamix/streamix-cli/internal/models"
)

var (
	_ list.Item = contentItem{}
)

// contentItem wraps [models.ContentItem] to implement [list.Item]. The row
// label carries the dashboard row the item came from, if any.
type contentItem struct {
	item models.ContentItem
	row  string
}

func (i contentItem) FilterValue() string { return i.item.DisplayTitle() }
func (i contentItem) Title() string       { return i.item.DisplayTitle() }
func (i contentItem) Description() string {
	kind := i.item.Type
	if kind == "" {
		kind = models.TypeMovie
	}
	desc := kind
	if i.item.VoteAverage > 0 {
		desc = fmt.Sprintf("%s • %.1f", desc, i.item.VoteAverage)
	}
	if i.row != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.row)
	}
	return desc
}
