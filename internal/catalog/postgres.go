package catalog

import (
	"context"
	"fmt"

	"github.com/sendrec/resources/internal/database"
)

const selectEntriesSQL = `SELECT id, title, category, description, thumbnail_url, embed_url
	 FROM resource_videos
	 ORDER BY position, id`

type PostgresProvider struct {
	DB database.DBTX
}

func (p *PostgresProvider) Load(ctx context.Context) ([]Entry, error) {
	rows, err := p.DB.Query(ctx, selectEntriesSQL)
	if err != nil {
		return nil, fmt.Errorf("query resource videos: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		var description, thumbnailURL, embedURL *string
		if err := rows.Scan(&e.ID, &e.Title, &e.Category, &description, &thumbnailURL, &embedURL); err != nil {
			return nil, fmt.Errorf("scan resource video: %w", err)
		}
		e.Description = derefString(description)
		e.ThumbnailURL = derefString(thumbnailURL)
		e.EmbedURL = derefString(embedURL)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resource videos: %w", err)
	}
	return entries, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
