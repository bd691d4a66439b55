package model

// EmbeddingDimension is the default dimension of embedding vectors.
// The same embedding model is used for corpus chunks and queries, so
// all vectors in a store share this dimensionality.
const EmbeddingDimension = 768

// KnowledgeChunk is a bounded span of source text stored together with
// its embedding vector for retrieval. Source is the identifier of the
// originating document.
type KnowledgeChunk struct {
	Text      string
	Embedding []float64
	Source    string
}
