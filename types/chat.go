package types

import (
	"time"

	"github.com/google/uuid"
)

// ChatTurn is a single user utterance handed to a Chatter.
type ChatTurn struct {
	Username string
	Text     string
	Time     time.Time
	UUID     uuid.UUID
}

// NewChatTurn stamps an utterance with an id and the current time.
func NewChatTurn(username, text string) ChatTurn {
	return ChatTurn{
		Username: username,
		Text:     text,
		Time:     time.Now(),
		UUID:     uuid.New(),
	}
}
