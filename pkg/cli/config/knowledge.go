package config

import (
	"log/slog"

	"github.com/medassist-lab/medassist/pkg/domain/model"
	"github.com/medassist-lab/medassist/pkg/service/knowledge"
	"github.com/urfave/cli/v3"
)

// Knowledge holds configuration for the knowledge base build and the
// similarity retriever
type Knowledge struct {
	dir       string
	chunkSize int
	topK      int
	dimension int
}

// Flags returns CLI flags for knowledge base configuration
func (k *Knowledge) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "knowledge-dir",
			Usage:       "Directory of knowledge base documents (.txt, .md, .html)",
			Sources:     cli.EnvVars("MEDASSIST_KNOWLEDGE_DIR"),
			Destination: &k.dir,
		},
		&cli.IntFlag{
			Name:        "chunk-size",
			Usage:       "Character threshold for knowledge chunks",
			Value:       knowledge.DefaultChunkSize,
			Sources:     cli.EnvVars("MEDASSIST_CHUNK_SIZE"),
			Destination: &k.chunkSize,
		},
		&cli.IntFlag{
			Name:        "top-k",
			Usage:       "Number of chunks retrieved per question",
			Value:       knowledge.DefaultTopK,
			Sources:     cli.EnvVars("MEDASSIST_TOP_K"),
			Destination: &k.topK,
		},
		&cli.IntFlag{
			Name:        "embedding-dimension",
			Usage:       "Dimension of embedding vectors",
			Value:       model.EmbeddingDimension,
			Sources:     cli.EnvVars("MEDASSIST_EMBEDDING_DIMENSION"),
			Destination: &k.dimension,
		},
	}
}

// LogAttrs returns log attributes for the knowledge configuration
func (k *Knowledge) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("dir", k.dir),
		slog.Int("chunk_size", k.chunkSize),
		slog.Int("top_k", k.topK),
		slog.Int("dimension", k.dimension),
	}
}

// Dir returns the corpus directory
func (k *Knowledge) Dir() string { return k.dir }

// ChunkSize returns the chunk size threshold
func (k *Knowledge) ChunkSize() int { return k.chunkSize }

// TopK returns the retrieval depth
func (k *Knowledge) TopK() int { return k.topK }

// Dimension returns the embedding vector dimension
func (k *Knowledge) Dimension() int { return k.dimension }
