// Package secrets loads runtime credentials at startup. Values come from
// the process environment, optionally seeded from a .env file. Every
// credential is optional: a missing one disables its feature instead of
// failing startup.
package secrets

import (
	"os"

	"github.com/joho/godotenv"
)

var (
	// YouTubeAPIKey enables the video-search branch when present.
	YouTubeAPIKey string
	// OpenAIAPIKey routes generation through the hosted model when present.
	OpenAIAPIKey string
	// PostgresURL enables the audit store when present.
	PostgresURL string
	// RedisURL enables the search result cache when present.
	RedisURL string
	// DiscordToken enables the Discord surface when present.
	DiscordToken string
)

// Init reads the .env file (if any) and snapshots the credentials into
// package vars.
func Init() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	YouTubeAPIKey = os.Getenv("YOUTUBE_API_KEY")
	OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	PostgresURL = os.Getenv("POSTGRES_URL")
	RedisURL = os.Getenv("REDIS_URL")
	DiscordToken = os.Getenv("DISCORD_TOKEN")
}
