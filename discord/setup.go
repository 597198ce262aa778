// Package discord is the optional second interactive surface. It routes
// plain channel messages through the same Chatter as the CLI loop; control
// commands and feedback scores are CLI-only.
package discord

import (
	"os"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"

	"github.com/kirakira-dev/precure-chat-bot/ai"
	"github.com/kirakira-dev/precure-chat-bot/logging"
)

type Client struct {
	Session *discordgo.Session
	chatter ai.Chatter
	logger  *logging.Logger

	// discordgo dispatches each event on its own goroutine, while the
	// chatter keeps per-session state that is not safe for concurrent use.
	mu sync.Mutex
}

// Setup connects the bot to Discord using the DISCORD_TOKEN credential and
// registers the message handler.
func Setup(chatter ai.Chatter, logger *logging.Logger) (*Client, error) {
	if logger == nil {
		logger = logging.Default()
	}

	authToken := os.Getenv("DISCORD_TOKEN")
	if authToken == "" {
		return nil, errors.New("DISCORD_TOKEN is not set")
	}

	session, err := discordgo.New("Bot " + authToken)
	if err != nil {
		return nil, errors.Wrap(err, "error creating discord session")
	}

	c := &Client{
		Session: session,
		chatter: chatter,
		logger:  logger,
	}
	session.AddHandler(c.handleMessage)
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages

	if err := session.Open(); err != nil {
		return nil, errors.Wrap(err, "error opening connection to discord")
	}

	logger.Info("discord session established")
	return c, nil
}
