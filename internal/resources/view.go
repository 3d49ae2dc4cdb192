package resources

import (
	"github.com/sendrec/resources/internal/catalog"
	"github.com/sendrec/resources/internal/filter"
	"github.com/sendrec/resources/internal/playback"
)

// Card is what the presentation layer gets for each visible entry.
type Card struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Play         func() `json:"-"`
}

// Overlay is exposed while an entry is playing.
type Overlay struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PlaybackURL string `json:"playbackUrl"`
	Close       func() `json:"-"`
}

// View owns the filter and selection state of one rendering of the catalog.
// It is not safe for concurrent use.
type View struct {
	catalog  *catalog.Catalog
	category string
	player   playback.Controller
}

func NewView(c *catalog.Catalog) *View {
	return &View{catalog: c, category: filter.All}
}

func (v *View) SelectCategory(category string) {
	v.category = category
}

func (v *View) Category() string {
	return v.category
}

func (v *View) Categories() []string {
	return filter.Categories(v.catalog.Entries())
}

// Visible returns the entries shown under the current category.
func (v *View) Visible() []catalog.Entry {
	return filter.Apply(v.catalog.Entries(), v.category)
}

func (v *View) Cards() []Card {
	entries := v.catalog.Entries()
	cards := make([]Card, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		if !filter.Matches(*e, v.category) {
			continue
		}
		cards = append(cards, Card{
			ID:           e.ID,
			Title:        e.Title,
			Category:     e.Category,
			Description:  e.Description,
			ThumbnailURL: e.ThumbnailURL,
			Play:         func() { v.Play(e) },
		})
	}
	return cards
}

func (v *View) Play(e *catalog.Entry) {
	v.player.Play(e)
}

// PlayID plays the catalog entry with the given id and reports whether one was found.
func (v *View) PlayID(id string) bool {
	e, ok := v.catalog.Find(id)
	if !ok {
		return false
	}
	v.Play(e)
	return true
}

func (v *View) Close() {
	v.player.Close()
}

func (v *View) State() playback.State {
	return v.player.State()
}

func (v *View) Overlay() (Overlay, bool) {
	e, ok := v.player.Selected()
	if !ok {
		return Overlay{}, false
	}
	return Overlay{
		Title:       e.Title,
		Description: e.Description,
		PlaybackURL: v.player.PlaybackURL(),
		Close:       v.Close,
	}, true
}
