package knowledge

import (
	"math"
	"sort"

	"github.com/medassist-lab/medassist/pkg/domain/model"
)

// Store is an immutable ordered collection of knowledge chunks with
// precomputed embeddings. It is built once before request serving
// begins and is never mutated afterwards, so concurrent readers need
// no locking.
type Store struct {
	chunks []model.KnowledgeChunk
}

// NewStore creates a store over the given chunks. The slice is owned by
// the store after this call.
func NewStore(chunks []model.KnowledgeChunk) *Store {
	return &Store{chunks: chunks}
}

// Len returns the number of stored chunks
func (s *Store) Len() int {
	return len(s.chunks)
}

// ScoredChunk pairs a chunk with its similarity score for one query
type ScoredChunk struct {
	Chunk model.KnowledgeChunk
	Score float64
}

// Search ranks every stored chunk against the query vector by cosine
// similarity and returns the top limit results, best first. The sort is
// stable: chunks with equal scores keep their store insertion order, so
// a fixed store and query always yield the same ranking.
func (s *Store) Search(query []float64, limit int) []ScoredChunk {
	scored := make([]ScoredChunk, 0, len(s.chunks))
	for _, chunk := range s.chunks {
		scored = append(scored, ScoredChunk{
			Chunk: chunk,
			Score: CosineSimilarity(query, chunk.Embedding),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit < 0 {
		limit = 0
	}
	if limit > len(scored) {
		limit = len(scored)
	}
	return scored[:limit]
}

// CosineSimilarity returns the normalized dot product of a and b in
// [-1, 1]. A zero-magnitude vector (or mismatched lengths) scores 0.0
// rather than dividing by zero.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}

	return dot / denom
}
