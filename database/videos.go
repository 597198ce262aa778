package database

import (
	"context"
	"fmt"
)

// VideoWriter persists discovered search results, deduplicated by the
// external video id.
type VideoWriter interface {
	UpsertVideo(ctx context.Context, video VideoRecord) error
}

// UpsertVideo stores one discovered video, last write wins on re-discovery.
func (p *Postgres) UpsertVideo(ctx context.Context, video VideoRecord) error {
	query := `INSERT INTO videos (video_id, title, description, channel, url, search_query, published_at, created_at)
		VALUES (:video_id, :title, :description, :channel, :url, :search_query, :published_at, :created_at)
		ON CONFLICT (video_id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			channel = EXCLUDED.channel,
			url = EXCLUDED.url,
			search_query = EXCLUDED.search_query,
			published_at = EXCLUDED.published_at,
			created_at = EXCLUDED.created_at`

	p.logger.Debug("upserting video into database", "videoID", video.VideoID)
	_, err := p.connections.NamedExecContext(ctx, query, video)
	if err != nil {
		p.logger.Error("error upserting video", "error", err.Error(), "videoID", video.VideoID)
		return fmt.Errorf("error upserting video: %w", err)
	}
	return nil
}
