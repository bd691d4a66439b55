package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/urfave/cli/v3"
)

// LLM selects and configures the text completion / embedding provider.
// Exactly one provider must be configured; the same client is used for
// chat completion, structured extraction, and embeddings so that corpus
// and query vectors stay comparable.
type LLM struct {
	gemini Gemini
	openai OpenAI
}

// Flags returns CLI flags for all supported providers
func (l *LLM) Flags() []cli.Flag {
	flags := l.gemini.Flags()
	flags = append(flags, l.openai.Flags()...)
	return flags
}

// Configure creates the LLM client for whichever provider is configured
func (l *LLM) Configure(ctx context.Context) (gollem.LLMClient, error) {
	geminiClient, err := l.gemini.Configure(ctx)
	if err != nil {
		return nil, err
	}
	openaiClient, err := l.openai.Configure(ctx)
	if err != nil {
		return nil, err
	}

	switch {
	case geminiClient != nil && openaiClient != nil:
		return nil, goerr.New("multiple LLM providers configured, choose one")
	case geminiClient != nil:
		return geminiClient, nil
	case openaiClient != nil:
		return openaiClient, nil
	default:
		return nil, goerr.New("no LLM provider configured (set --gemini-project or --openai-api-key)")
	}
}
