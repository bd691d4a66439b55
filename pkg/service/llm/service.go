package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/medassist-lab/medassist/pkg/domain/interfaces"
	"github.com/medassist-lab/medassist/pkg/domain/model"
	"github.com/medassist-lab/medassist/pkg/domain/types"
)

// service implements interfaces.LLMService on top of a gollem.LLMClient
type service struct {
	client    gollem.LLMClient
	dimension int
}

// Option is a functional option for service configuration
type Option func(*service)

// WithDimension overrides the embedding vector dimension
func WithDimension(dim int) Option {
	return func(s *service) {
		s.dimension = dim
	}
}

// New creates a new LLM service with the provided client
func New(client gollem.LLMClient, opts ...Option) (interfaces.LLMService, error) {
	if client == nil {
		return nil, goerr.New("LLM client is required")
	}

	s := &service{
		client:    client,
		dimension: model.EmbeddingDimension,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Complete sends the ordered messages to the model and returns its reply
func (s *service) Complete(ctx context.Context, messages []model.ChatMessage) (string, error) {
	return s.generate(ctx, messages)
}

// CompleteJSON is Complete with the session forced into JSON output mode
func (s *service) CompleteJSON(ctx context.Context, messages []model.ChatMessage) (string, error) {
	return s.generate(ctx, messages, gollem.WithSessionContentType(gollem.ContentTypeJSON))
}

func (s *service) generate(ctx context.Context, messages []model.ChatMessage, opts ...gollem.SessionOption) (string, error) {
	system, rest := splitSystem(messages)
	if system != "" {
		opts = append(opts, gollem.WithSessionSystemPrompt(system))
	}

	session, err := s.client.NewSession(ctx, opts...)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(renderTranscript(rest)))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate content from LLM")
	}
	if len(resp.Texts) == 0 {
		return "", goerr.New("LLM returned empty response")
	}

	return strings.Join(resp.Texts, "\n"), nil
}

// Embed returns the embedding vector for the given text
func (s *service) Embed(ctx context.Context, text string) ([]float64, error) {
	// Newlines degrade embedding quality with some providers
	text = strings.ReplaceAll(text, "\n", " ")

	embeddings, err := s.client.GenerateEmbedding(ctx, s.dimension, []string{text})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate embedding")
	}
	if len(embeddings) == 0 {
		return nil, goerr.New("no embedding returned")
	}

	return embeddings[0], nil
}

// splitSystem peels a leading system message off the conversation
func splitSystem(messages []model.ChatMessage) (string, []model.ChatMessage) {
	if len(messages) > 0 && messages[0].Role == types.RoleSystem {
		return messages[0].Content, messages[1:]
	}
	return "", messages
}

// renderTranscript flattens the remaining conversation into a single
// prompt, preserving message order and role attribution
func renderTranscript(messages []model.ChatMessage) string {
	if len(messages) == 1 && messages[0].Role == types.RoleUser {
		return messages[0].Content
	}

	var sb strings.Builder
	for _, msg := range messages {
		switch msg.Role {
		case types.RoleAssistant:
			fmt.Fprintf(&sb, "Assistant: %s\n\n", msg.Content)
		default:
			fmt.Fprintf(&sb, "User: %s\n\n", msg.Content)
		}
	}
	return strings.TrimSuffix(sb.String(), "\n\n")
}
