// Package hostedchat routes topical response generation through a hosted
// model while keeping the deterministic branches (greetings, video search,
// commands) on the local template responder. Every generation failure falls
// back to the templates, so the session never loses a turn.
package hostedchat

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/kirakira-dev/precure-chat-bot/ai"
	"github.com/kirakira-dev/precure-chat-bot/ai/localchat"
	"github.com/kirakira-dev/precure-chat-bot/logging"
)

// Client is a Chatter backed by an OpenAI-compatible endpoint.
type Client struct {
	llm         llms.Model
	fallback    *localchat.Responder
	classifier  *ai.Classifier
	modelName   string
	chatHistory []llms.MessageContent
	logger      *logging.Logger
}

// Setup creates the hosted-model chatter. baseURL may be empty to use the
// default OpenAI endpoint; fallback must not be nil.
func Setup(fallback *localchat.Responder, modelName, baseURL string, logger *logging.Logger) (*Client, error) {
	if fallback == nil {
		return nil, fmt.Errorf("hostedchat requires a local fallback responder")
	}
	if logger == nil {
		logger = logging.Default()
	}

	logger.Info("setting up hosted chat LLM client", "model", modelName, "baseURL", baseURL)

	var opts []openai.Option
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	if modelName != "" {
		opts = append(opts, openai.WithModel(modelName))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		logger.Error("failed to create OpenAI LLM", "error", err.Error())
		return nil, fmt.Errorf("failed to create OpenAI LLM: %w", err)
	}

	return &Client{
		llm:        llm,
		fallback:   fallback,
		classifier: fallback.Classifier(),
		modelName:  modelName,
		logger:     logger,
	}, nil
}
