package usecase

import (
	"github.com/medassist-lab/medassist/pkg/domain/interfaces"
)

// UseCases is the stateless dialogue orchestration engine. All
// conversational state is reconstructed from the request payload; the
// only shared dependency is the read-only knowledge retriever.
type UseCases struct {
	llm       interfaces.LLMService
	retriever interfaces.ContextRetriever
	funds     map[string]string
	tiers     map[string]string
}

// Option is a functional option for UseCases configuration
type Option func(*UseCases)

// WithFundAliases installs a normalization table mapping alternative
// health fund spellings to their canonical names
func WithFundAliases(aliases map[string]string) Option {
	return func(uc *UseCases) {
		uc.funds = aliases
	}
}

// WithTierAliases installs a normalization table mapping alternative
// insurance tier spellings to their canonical names
func WithTierAliases(aliases map[string]string) Option {
	return func(uc *UseCases) {
		uc.tiers = aliases
	}
}

// New creates the use case layer with its injected collaborators
func New(llm interfaces.LLMService, retriever interfaces.ContextRetriever, opts ...Option) *UseCases {
	uc := &UseCases{
		llm:       llm,
		retriever: retriever,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
