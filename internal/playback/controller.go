// Package playback tracks which catalog entry the overlay player shows and
// resolves the frame source it plays.
package playback

import "github.com/sendrec/resources/internal/catalog"

type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Controller holds at most one selected entry. The zero value is Closed.
type Controller struct {
	selected *catalog.Entry
}

// Play opens the overlay on e, replacing any current selection. Playing nil closes it.
func (c *Controller) Play(e *catalog.Entry) {
	c.selected = e
}

func (c *Controller) Close() {
	c.selected = nil
}

func (c *Controller) State() State {
	if c.selected == nil {
		return Closed
	}
	return Open
}

func (c *Controller) Selected() (*catalog.Entry, bool) {
	return c.selected, c.selected != nil
}

// PlaybackURL is the frame source for the selected entry, or "" when Closed.
func (c *Controller) PlaybackURL() string {
	if c.selected == nil {
		return ""
	}
	return BuildURL(c.selected.EmbedURL)
}
