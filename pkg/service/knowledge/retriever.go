package knowledge

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/medassist-lab/medassist/pkg/domain/interfaces"
	"github.com/medassist-lab/medassist/pkg/utils/logging"
)

const (
	// DefaultTopK is the number of chunks concatenated into the context
	DefaultTopK = 3

	// NoContextSentinel is returned instead of an empty string when the
	// store holds nothing for a query, so that prompt assembly can state
	// the absence of context explicitly.
	NoContextSentinel = "No specific information found in the knowledge base."

	// chunkSeparator joins the selected chunk texts in the context block
	chunkSeparator = "\n\n---\n\n"
)

// Retriever selects grounding context from an immutable store by vector
// similarity. The store is a read-only dependency shared by all
// concurrent requests.
type Retriever struct {
	store *Store
	llm   interfaces.LLMService
	topK  int
}

// RetrieverOption is a functional option for Retriever configuration
type RetrieverOption func(*Retriever)

// WithTopK overrides the number of chunks returned per query
func WithTopK(k int) RetrieverOption {
	return func(r *Retriever) {
		r.topK = k
	}
}

// NewRetriever creates a retriever over the given store
func NewRetriever(store *Store, llm interfaces.LLMService, opts ...RetrieverOption) (*Retriever, error) {
	if store == nil {
		return nil, goerr.New("knowledge store is required")
	}
	if llm == nil {
		return nil, goerr.New("LLM service is required")
	}

	r := &Retriever{
		store: store,
		llm:   llm,
		topK:  DefaultTopK,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.topK < 1 {
		return nil, goerr.New("topK must be at least 1", goerr.V("topK", r.topK))
	}

	return r, nil
}

// Search embeds the query, ranks all stored chunks by cosine similarity
// and returns the top-k chunk texts joined into one context block. An
// empty store yields the no-information sentinel without an embedding
// call.
func (r *Retriever) Search(ctx context.Context, query string) (string, error) {
	if r.store.Len() == 0 {
		return NoContextSentinel, nil
	}

	queryVec, err := r.llm.Embed(ctx, query)
	if err != nil {
		return "", goerr.Wrap(err, "failed to embed query")
	}

	scored := r.store.Search(queryVec, r.topK)

	texts := make([]string, 0, len(scored))
	for _, sc := range scored {
		texts = append(texts, sc.Chunk.Text)
	}

	logging.From(ctx).Info("knowledge search",
		"query", query,
		"chunks", len(texts),
	)

	return strings.Join(texts, chunkSeparator), nil
}
