package catalog

import (
	"context"
	"fmt"
	"log/slog"
)

// Entry is one playable video record. Fields are carried exactly as the source
// supplied them; an empty EmbedURL means the entry has no embed target.
type Entry struct {
	ID           string `json:"id" toml:"id"`
	Title        string `json:"title" toml:"title"`
	Category     string `json:"category" toml:"category"`
	Description  string `json:"description" toml:"description"`
	ThumbnailURL string `json:"thumbnailUrl" toml:"thumbnail_url"`
	EmbedURL     string `json:"embedUrl,omitempty" toml:"embed_url"`
}

type Provider interface {
	Load(ctx context.Context) ([]Entry, error)
}

// Catalog is the ordered, read-only sequence of entries a view renders.
type Catalog struct {
	entries []Entry
}

func New(entries []Entry) *Catalog {
	owned := make([]Entry, len(entries))
	copy(owned, entries)
	return &Catalog{entries: owned}
}

func Load(ctx context.Context, p Provider) (*Catalog, error) {
	entries, err := p.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	slog.Info("catalog: loaded entries", "count", len(entries))
	return New(entries), nil
}

// Entries returns the catalog in source order. Callers must not modify the slice.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	return c.entries
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Find returns the first entry with the given id.
func (c *Catalog) Find(id string) (*Entry, bool) {
	if c == nil {
		return nil, false
	}
	for i := range c.entries {
		if c.entries[i].ID == id {
			return &c.entries[i], true
		}
	}
	return nil, false
}
