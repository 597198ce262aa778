package hostedchat

import (
	"context"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/kirakira-dev/precure-chat-bot/ai"
	"github.com/kirakira-dev/precure-chat-bot/metrics"
	"github.com/kirakira-dev/precure-chat-bot/types"
)

// historyWindow bounds how many prior messages ride along with a prompt.
const historyWindow = 10

func (c *Client) manageChatHistory(injection string, chatType llms.ChatMessageType) {
	if len(c.chatHistory) >= historyWindow {
		c.chatHistory = c.chatHistory[1:]
	}
	c.chatHistory = append(c.chatHistory, llms.TextParts(chatType, injection))
}

func (c *Client) callLLM(ctx context.Context, input string) (string, error) {
	c.manageChatHistory(input, llms.ChatMessageTypeHuman)
	messageHistory := []llms.MessageContent{llms.TextParts(llms.ChatMessageTypeSystem, ai.CurePrompt)}
	messageHistory = append(messageHistory, c.chatHistory...)

	resp, err := c.llm.GenerateContent(ctx, messageHistory,
		llms.WithCandidateCount(1),
		llms.WithMaxLength(500),
		llms.WithTemperature(0.7),
		llms.WithPresencePenalty(1.0),
	)
	if err != nil {
		return "", err
	}

	text := ai.CleanResponse(resp.Choices[0].Content)
	c.manageChatHistory(text, llms.ChatMessageTypeAI)
	return text, nil
}

// Respond generates one reply. Greetings and content-search requests stay
// on the template responder so they keep the documented deterministic
// behavior; only plain topical turns reach the hosted model.
func (c *Client) Respond(ctx context.Context, turn types.ChatTurn) (ai.Reply, error) {
	bundle := c.classifier.Classify(turn.Text)

	if c.classifier.IsGreeting(turn.Text) || bundle.ContentRequest {
		return c.fallback.Respond(ctx, turn)
	}

	text, err := c.callLLM(ctx, turn.Text)
	if err != nil {
		metrics.FailedLLMGenCount.Add(1)
		c.logger.Warn("hosted generation failed, using template responder", "error", err.Error())
		return c.fallback.Respond(ctx, turn)
	}
	if strings.TrimSpace(text) == "" {
		metrics.EmptyLLMResponseCount.Add(1)
		return c.fallback.Respond(ctx, turn)
	}

	metrics.SuccessfulLLMGenCount.Add(1)
	return ai.Reply{Text: text, Bundle: bundle}, nil
}
