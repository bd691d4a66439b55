package interfaces

import (
	"context"

	"github.com/medassist-lab/medassist/pkg/domain/model"
)

// LLMService is the completion and embedding contract. Message order is
// preserved; a system message, if present, must come first. The same
// service instance embeds both corpus chunks and queries so that the
// resulting vectors are comparable.
type LLMService interface {
	// Complete generates a conversational reply for the ordered messages
	Complete(ctx context.Context, messages []model.ChatMessage) (string, error)

	// CompleteJSON generates a machine-readable reply. The returned text
	// is expected to be a single JSON document.
	CompleteJSON(ctx context.Context, messages []model.ChatMessage) (string, error)

	// Embed returns a fixed-length vector representation of text
	Embed(ctx context.Context, text string) ([]float64, error)
}
