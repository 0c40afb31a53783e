package ui

import (
	"fmt"

	"github.com/Sachou914/iTunesSekker/internal/formatter"
	"github.com/Sachou914/iTunesSekker/internal/models"
	"github.com/charmbracelet/bubbles/list"
)

var (
	_ list.Item = recordItem{}
	_ list.Item = trackItem{}
)

// recordItem wraps a [models.CatalogRecord] search result to implement [list.Item].
type recordItem struct {
	record models.CatalogRecord
	entity models.EntityType
}

func (i recordItem) FilterValue() string { return formatter.DisplayTitle(i.record, i.entity) }
func (i recordItem) Title() string       { return formatter.DisplayTitle(i.record, i.entity) }
func (i recordItem) Description() string { return formatter.DisplaySubtitle(i.record) }

// trackItem wraps a [models.Track] to implement [list.Item].
//
// rating is 0 when the track is unrated.
type trackItem struct {
	track  models.Track
	rating int
}

func (i trackItem) FilterValue() string { return i.track.TrackName }
func (i trackItem) Title() string {
	if i.rating > 0 {
		return fmt.Sprintf("%s %s", i.track.TrackName, formatter.Stars(i.rating))
	}
	return i.track.TrackName
}
func (i trackItem) Description() string {
	desc := i.track.ArtistName
	if i.track.CollectionName != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.track.CollectionName)
	}
	return desc
}
