package resources

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/sendrec/resources/internal/httputil"
)

const (
	pageTitle    = "Resources"
	pageSubtitle = "Helpful videos about health cautions, tips, and how-to guides."
	frameAllow   = "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"
)

type pageData struct {
	Title      string
	Subtitle   string
	Nonce      string
	Categories []categoryLink
	Cards      []cardLink
	Overlay    *overlayData
}

type categoryLink struct {
	Name   string
	Href   string
	Active bool
}

type cardLink struct {
	Card
	PlayHref string
}

type overlayData struct {
	Title       string
	Description string
	PlaybackURL string
	CloseHref   string
	Allow       string
}

var pageTemplate = template.Must(template.New("resources").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.Title}}</title>
    <style nonce="{{.Nonce}}">
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            background: #0f172a;
            color: #e2e8f0;
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            min-height: 100vh;
        }
        .container { max-width: 72rem; margin: 0 auto; padding: 1rem; }
        header { margin-bottom: 1.5rem; }
        header h1 { font-size: 1.5rem; font-weight: 600; color: #f1f5f9; }
        header p { margin-top: 0.25rem; font-size: 0.875rem; color: #94a3b8; }
        .filters { display: flex; flex-wrap: wrap; align-items: center; gap: 0.75rem; margin-bottom: 1rem; }
        .filter {
            padding: 0.25rem 0.75rem;
            border-radius: 4px;
            font-size: 0.875rem;
            text-decoration: none;
            background: #1e293b;
            color: #e2e8f0;
        }
        .filter.active { background: #00b67a; color: #fff; }
        .grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 1rem; }
        .card { background: #1e293b; border-radius: 8px; overflow: hidden; display: flex; flex-direction: column; }
        .card img { width: 100%; aspect-ratio: 16 / 9; object-fit: cover; background: #334155; }
        .card-body { padding: 0.75rem 1rem 1rem; display: flex; flex-direction: column; gap: 0.375rem; flex: 1; }
        .card-category { font-size: 0.75rem; color: #64748b; text-transform: uppercase; letter-spacing: 0.04em; }
        .card-title { font-size: 1rem; font-weight: 600; color: #f1f5f9; }
        .card-description { font-size: 0.875rem; color: #94a3b8; flex: 1; }
        .card-play {
            align-self: flex-start;
            margin-top: 0.5rem;
            padding: 0.375rem 0.875rem;
            border-radius: 6px;
            background: #00b67a;
            color: #fff;
            font-size: 0.875rem;
            font-weight: 600;
            text-decoration: none;
        }
        .empty { color: #64748b; font-size: 0.875rem; padding: 2rem 0; }
        .overlay {
            position: fixed;
            inset: 0;
            z-index: 50;
            display: flex;
            align-items: center;
            justify-content: center;
            background: rgba(0, 0, 0, 0.6);
            padding: 1rem;
        }
        .overlay-panel { width: 100%; max-width: 56rem; background: #1e293b; border-radius: 8px; overflow: hidden; }
        .overlay-header {
            display: flex;
            align-items: center;
            justify-content: space-between;
            padding: 0.75rem;
            border-bottom: 1px solid #334155;
        }
        .overlay-header h2 { font-size: 1.125rem; font-weight: 500; }
        .overlay-close {
            font-size: 0.875rem;
            padding: 0.25rem 0.75rem;
            background: #334155;
            color: #e2e8f0;
            border-radius: 4px;
            text-decoration: none;
        }
        .overlay iframe { display: block; width: 100%; height: 500px; border: 0; }
        .overlay-description { padding: 1rem; font-size: 0.875rem; color: #cbd5e1; }
    </style>
</head>
<body>
<div class="container">
    <header>
        <h1>{{.Title}}</h1>
        <p>{{.Subtitle}}</p>
    </header>

    <nav class="filters">
        {{range .Categories}}<a class="filter{{if .Active}} active{{end}}" href="{{.Href}}">{{.Name}}</a>
        {{end}}
    </nav>

    <section class="grid">
        {{range .Cards}}
        <article class="card" id="video-{{.ID}}">
            <img src="{{.ThumbnailURL}}" alt="{{.Title}}" loading="lazy">
            <div class="card-body">
                <span class="card-category">{{.Category}}</span>
                <h3 class="card-title">{{.Title}}</h3>
                <p class="card-description">{{.Description}}</p>
                <a class="card-play" href="{{.PlayHref}}">Play</a>
            </div>
        </article>
        {{else}}
        <p class="empty">No videos in this category.</p>
        {{end}}
    </section>

    {{with .Overlay}}
    <div class="overlay" role="dialog" aria-modal="true">
        <div class="overlay-panel">
            <div class="overlay-header">
                <h2>{{.Title}}</h2>
                <a class="overlay-close" href="{{.CloseHref}}">Close</a>
            </div>
            <iframe src="{{.PlaybackURL}}" title="{{.Title}}" width="960" height="540" allow="{{.Allow}}" allowfullscreen></iframe>
            <div class="overlay-description">{{.Description}}</div>
        </div>
    </div>
    {{end}}
</div>
</body>
</html>`))

func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	v := h.viewFromRequest(r)
	category := v.Category()

	data := pageData{
		Title:    pageTitle,
		Subtitle: pageSubtitle,
		Nonce:    httputil.NonceFromContext(r.Context()),
	}

	for _, c := range v.Categories() {
		data.Categories = append(data.Categories, categoryLink{
			Name:   c,
			Href:   h.pageHref(c, ""),
			Active: c == category,
		})
	}

	for _, card := range v.Cards() {
		data.Cards = append(data.Cards, cardLink{
			Card:     card,
			PlayHref: h.pageHref(category, card.ID),
		})
	}

	if overlay, ok := v.Overlay(); ok {
		data.Overlay = &overlayData{
			Title:       overlay.Title,
			Description: overlay.Description,
			PlaybackURL: overlay.PlaybackURL,
			CloseHref:   h.pageHref(category, ""),
			Allow:       frameAllow,
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		slog.Error("resources: failed to render page", "error", err)
	}
}
