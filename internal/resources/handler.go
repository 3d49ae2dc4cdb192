package resources

import (
	"net/http"
	"net/url"

	"github.com/sendrec/resources/internal/catalog"
	"github.com/sendrec/resources/internal/filter"
)

const defaultPagePath = "/resources"

type Handler struct {
	catalog  *catalog.Catalog
	pagePath string
}

func NewHandler(c *catalog.Catalog) *Handler {
	return &Handler{catalog: c, pagePath: defaultPagePath}
}

// viewFromRequest replays the interaction encoded in the query string:
// category selects the filter, play opens the overlay on that entry.
// A missing category means All; an explicit empty one selects entries
// with no category.
func (h *Handler) viewFromRequest(r *http.Request) *View {
	v := NewView(h.catalog)
	q := r.URL.Query()
	if q.Has("category") {
		v.SelectCategory(q.Get("category"))
	}
	if id := q.Get("play"); id != "" {
		v.PlayID(id)
	}
	return v
}

func (h *Handler) pageHref(category, play string) string {
	q := url.Values{}
	if category != filter.All {
		q.Set("category", category)
	}
	if play != "" {
		q.Set("play", play)
	}
	if len(q) == 0 {
		return h.pagePath
	}
	return h.pagePath + "?" + q.Encode()
}
