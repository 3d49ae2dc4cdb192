// Package validate reports suspicious catalog entries for authors. Nothing here
// gates loading or rendering: the page tolerates every entry as-is.
package validate

import (
	"fmt"
	"net/url"

	"github.com/sendrec/resources/internal/catalog"
)

const (
	MaxTitleLength       = 200
	MaxCategoryLength    = 50
	MaxDescriptionLength = 2000
)

type Issue struct {
	Index   int
	EntryID string
	Field   string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("entry %d (%q): %s: %s", i.Index, i.EntryID, i.Field, i.Message)
}

func checkLen(value string, max int, field string) string {
	if len(value) > max {
		return fmt.Sprintf("%s must be %d characters or fewer", field, max)
	}
	return ""
}

func Title(s string) string {
	if s == "" {
		return "title is empty"
	}
	return checkLen(s, MaxTitleLength, "title")
}

func Category(s string) string {
	if s == "" {
		return "category is empty"
	}
	return checkLen(s, MaxCategoryLength, "category")
}

func Description(s string) string { return checkLen(s, MaxDescriptionLength, "description") }

func ThumbnailURL(s string) string {
	if s == "" {
		return "thumbnail URL is empty"
	}
	if !isAbsoluteURL(s) {
		return "thumbnail URL is not an absolute URL"
	}
	return ""
}

func EmbedURL(s string) string {
	if s == "" {
		return "embed URL is empty; the fallback video will play"
	}
	if !isAbsoluteURL(s) {
		return "embed URL is not an absolute URL; playback parameters are appended verbatim"
	}
	return ""
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// Catalog returns every issue found, in catalog order.
func Catalog(entries []catalog.Entry) []Issue {
	var issues []Issue
	seen := make(map[string]int, len(entries))

	for i, e := range entries {
		add := func(field, msg string) {
			if msg != "" {
				issues = append(issues, Issue{Index: i, EntryID: e.ID, Field: field, Message: msg})
			}
		}

		if e.ID == "" {
			add("id", "id is empty")
		} else if first, dup := seen[e.ID]; dup {
			add("id", fmt.Sprintf("duplicates entry %d", first))
		} else {
			seen[e.ID] = i
		}
		add("title", Title(e.Title))
		add("category", Category(e.Category))
		add("description", Description(e.Description))
		add("thumbnailUrl", ThumbnailURL(e.ThumbnailURL))
		add("embedUrl", EmbedURL(e.EmbedURL))
	}
	return issues
}
