package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider reads the catalog from a resource_videos table in a local SQLite file.
// The file is opened read-only and must already exist.
type SQLiteProvider struct {
	Path string
}

func (p *SQLiteProvider) Load(ctx context.Context) ([]Entry, error) {
	db, err := sql.Open("sqlite", "file:"+p.Path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite catalog: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, selectEntriesSQL)
	if err != nil {
		return nil, fmt.Errorf("query resource videos: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		var title, category, description, thumbnailURL, embedURL sql.NullString
		if err := rows.Scan(&e.ID, &title, &category, &description, &thumbnailURL, &embedURL); err != nil {
			return nil, fmt.Errorf("scan resource video: %w", err)
		}
		e.Title = title.String
		e.Category = category.String
		e.Description = description.String
		e.ThumbnailURL = thumbnailURL.String
		e.EmbedURL = embedURL.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resource videos: %w", err)
	}
	return entries, nil
}
