package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/kirakira-dev/precure-chat-bot/metrics"
	"github.com/kirakira-dev/precure-chat-bot/types"
)

// mentionWords decide which channel messages the bot answers.
var mentionWords = []string{"キュアai", "cureai", "プリキュア", "precure"}

func needsResponse(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range mentionWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func (c *Client) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}
	metrics.DiscordMessageRecieved.Add(1)

	text, ok := c.respond(m.Author.Username, m.Content)
	if !ok {
		return
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, text); err != nil {
		c.logger.Error("failed to send discord message", "error", err.Error())
		return
	}
	metrics.DiscordMessageSent.Add(1)
}

// respond generates the reply for one channel message. Turns are
// serialized: overlapping events must not reach the chatter concurrently.
func (c *Client) respond(username, content string) (string, bool) {
	if !needsResponse(content) {
		return "", false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	turn := types.NewChatTurn(username, content)
	reply, err := c.chatter.Respond(context.Background(), turn)
	if err != nil {
		c.logger.Error("failed to respond to discord message", "error", err.Error(), "turnID", turn.UUID)
		return "", false
	}
	return reply.Text, true
}
