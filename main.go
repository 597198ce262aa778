package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kirakira-dev/precure-chat-bot/ai"
	"github.com/kirakira-dev/precure-chat-bot/ai/hostedchat"
	"github.com/kirakira-dev/precure-chat-bot/ai/localchat"
	"github.com/kirakira-dev/precure-chat-bot/cache"
	"github.com/kirakira-dev/precure-chat-bot/chat"
	database "github.com/kirakira-dev/precure-chat-bot/database"
	"github.com/kirakira-dev/precure-chat-bot/discord"
	"github.com/kirakira-dev/precure-chat-bot/history"
	"github.com/kirakira-dev/precure-chat-bot/logging"
	"github.com/kirakira-dev/precure-chat-bot/metrics"
	"github.com/kirakira-dev/precure-chat-bot/secrets"
	"github.com/kirakira-dev/precure-chat-bot/youtube"
)

func main() {
	var model string
	var logLevel string
	var tablesPath string
	var historyCapacity int
	var startDiscord bool

	flag.StringVar(&model, "model", os.Getenv("MODEL"), "The model to use for the hosted LLM")
	flag.StringVar(&logLevel, "errorLevel", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&tablesPath, "personaConfig", "", "Path to a persona tables file (e.g., 'configs/persona.yaml')")
	flag.IntVar(&historyCapacity, "historyCapacity", history.DefaultCapacity, "Bounded interaction log capacity")
	flag.BoolVar(&startDiscord, "discordMode", false, "Answer Discord messages instead of running the CLI loop")
	flag.Parse()

	// Initialize logger
	logger := logging.NewLogger(logging.LogLevel(logLevel), os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	secrets.Init()

	// listen and serve for metrics server.
	server := metrics.SetupServer()
	go server.Run()

	// persona tables are loaded once and shared read-only
	tables := ai.DefaultTables()
	if tablesPath != "" {
		var err error
		tables, err = ai.LoadTables(tablesPath)
		if err != nil {
			logger.Error("failed to load persona tables", "error", err.Error())
			os.Exit(1)
		}
		logger.Info("loaded persona tables", "path", tablesPath)
	}

	// audit store is optional; without it the session keeps only the
	// in-memory history
	var db *database.Postgres
	if secrets.PostgresURL != "" {
		var err error
		db, err = database.NewPostgres(logger)
		if err != nil {
			logger.Error("failed to connect to postgres", "error", err.Error())
			os.Exit(1)
		}
		defer db.Close()
	} else {
		logger.Info("POSTGRES_URL not set, audit store disabled")
	}

	// video search is optional; without a key the content-search branch
	// simply never fires
	var searcher youtube.Searcher
	if secrets.YouTubeAPIKey != "" {
		searcher = youtube.NewClient(secrets.YouTubeAPIKey, logger)
		if secrets.RedisURL != "" {
			opts, err := redis.ParseURL(secrets.RedisURL)
			if err != nil {
				logger.Error("invalid REDIS_URL", "error", err.Error())
				os.Exit(1)
			}
			searcher = cache.NewSearchCache(redis.NewClient(opts), searcher, cache.DefaultTTL, logger)
			logger.Info("search result cache enabled")
		}
	} else {
		logger.Info("YOUTUBE_API_KEY not set, video search disabled")
	}

	var videoWriter database.VideoWriter
	var convWriter database.ConversationWriter
	if db != nil {
		videoWriter = db
		convWriter = db
	}

	responder := localchat.Setup(tables, searcher, videoWriter, logger)

	// the hosted model only replaces topical generation; everything else
	// stays on the templates
	var chatter ai.Chatter = responder
	if secrets.OpenAIAPIKey != "" {
		hosted, err := hostedchat.Setup(responder, model, os.Getenv("OPENAI_BASE_URL"), logger)
		if err != nil {
			logger.Error("failed to setup hosted chat, using templates", "error", err.Error())
		} else {
			chatter = hosted
			logger.Info("hosted generation enabled", "model", model)
		}
	} else {
		logger.Info("OPENAI_API_KEY not set, using template responder")
	}

	if startDiscord {
		runDiscord(ctx, chatter, logger)
		return
	}

	session := chat.NewSession(chatter, responder, history.NewLog(historyCapacity), convWriter, logger, os.Stdin, os.Stdout)
	// Run never fails; per-turn errors are reported in character.
	_ = session.Run(ctx)
}

func runDiscord(ctx context.Context, chatter ai.Chatter, logger *logging.Logger) {
	client, err := discord.Setup(chatter, logger)
	if err != nil {
		logger.Error("failed to setup discord", "error", err.Error())
		os.Exit(1)
	}

	logger.Info("Press Ctrl+C to exit")
	<-ctx.Done()

	if err := client.Session.Close(); err != nil {
		logger.Error("error closing discord session", "error", err.Error())
	}
	logger.Info("Shutting down")
	// give the close handshake a moment before the process exits
	time.Sleep(100 * time.Millisecond)
	os.Exit(0)
}
