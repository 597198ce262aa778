package database

import (
	"context"
	"fmt"
)

// ConversationWriter persists scored turns. A nil writer disables the
// audit trail without touching the chat loop.
type ConversationWriter interface {
	InsertConversation(ctx context.Context, conv Conversation) error
}

// InsertConversation appends one scored turn to the audit trail.
func (p *Postgres) InsertConversation(ctx context.Context, conv Conversation) error {
	query := `INSERT INTO conversations (pattern_type, emotion, topic, personality_mode, quality_score, created_at)
		VALUES (:pattern_type, :emotion, :topic, :personality_mode, :quality_score, :created_at)`

	p.logger.Debug("inserting conversation into database", "emotion", conv.Emotion, "topic", conv.Topic)
	_, err := p.connections.NamedExecContext(ctx, query, conv)
	if err != nil {
		p.logger.Error("error inserting conversation", "error", err.Error())
		return fmt.Errorf("error inserting conversation: %w", err)
	}
	return nil
}
