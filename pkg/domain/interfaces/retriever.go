package interfaces

import "context"

// ContextRetriever selects grounding context for a question. The result
// is ready-to-embed prompt text, never an empty string: when nothing is
// known, an explicit "no information" sentinel is returned so that the
// prompt can state the absence of context.
type ContextRetriever interface {
	Search(ctx context.Context, query string) (string, error)
}
