package database

import (
	"database/sql"
	"time"
)

// Conversation is one scored turn persisted on user feedback. QualityScore
// is null for rows recorded without a score.
type Conversation struct {
	PatternType  string          `db:"pattern_type"`
	Emotion      string          `db:"emotion"`
	Topic        string          `db:"topic"`
	Mode         string          `db:"personality_mode"`
	QualityScore sql.NullFloat64 `db:"quality_score"`
	Time         time.Time       `db:"created_at"`
}

// VideoRecord is one Creative Commons search result persisted for audit.
// Rows are keyed by the external video id; re-discovery upserts.
type VideoRecord struct {
	VideoID     string    `db:"video_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Channel     string    `db:"channel"`
	URL         string    `db:"url"`
	Query       string    `db:"search_query"`
	PublishedAt time.Time `db:"published_at"`
	Time        time.Time `db:"created_at"`
}
