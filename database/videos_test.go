package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUpsertVideo(t *testing.T) {
	postgres, mock := newMockPostgres(t)

	video := VideoRecord{
		VideoID:     "dQw4w9WgXcQ",
		Title:       "プリキュア CC動画",
		Description: "a creative commons clip",
		Channel:     "cc-channel",
		URL:         "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Query:       "プリキュア",
		PublishedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Time:        time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO videos").
		WithArgs(video.VideoID, video.Title, video.Description, video.Channel,
			video.URL, video.Query, video.PublishedAt, video.Time).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := postgres.UpsertVideo(context.Background(), video)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertVideoConflictUpdates(t *testing.T) {
	postgres, mock := newMockPostgres(t)

	video := VideoRecord{VideoID: "abc123", Title: "updated title", Query: "新しいクエリ"}

	// the driver reports 1 row affected for the DO UPDATE path too
	mock.ExpectExec("ON CONFLICT \\(video_id\\) DO UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := postgres.UpsertVideo(context.Background(), video)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertVideoError(t *testing.T) {
	postgres, mock := newMockPostgres(t)

	mock.ExpectExec("INSERT INTO videos").
		WillReturnError(sql.ErrConnDone)

	err := postgres.UpsertVideo(context.Background(), VideoRecord{VideoID: "abc123"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error upserting video")
	assert.NoError(t, mock.ExpectationsWereMet())
}
