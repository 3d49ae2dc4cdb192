package resources

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sendrec/resources/internal/httputil"
	"github.com/sendrec/resources/internal/playback"
)

type listResponse struct {
	Categories []string `json:"categories"`
	Selected   string   `json:"selected"`
	Videos     []Card   `json:"videos"`
}

type playbackURLResponse struct {
	PlaybackURL string `json:"playbackUrl"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	v := h.viewFromRequest(r)
	httputil.WriteJSON(w, http.StatusOK, listResponse{
		Categories: v.Categories(),
		Selected:   v.Category(),
		Videos:     v.Cards(),
	})
}

func (h *Handler) Playback(w http.ResponseWriter, r *http.Request) {
	v := NewView(h.catalog)
	if !v.PlayID(chi.URLParam(r, "id")) {
		httputil.WriteError(w, http.StatusNotFound, "video not found")
		return
	}
	overlay, _ := v.Overlay()
	httputil.WriteJSON(w, http.StatusOK, overlay)
}

func (h *Handler) PlaybackURL(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, playbackURLResponse{
		PlaybackURL: playback.BuildURL(r.URL.Query().Get("embedUrl")),
	})
}
