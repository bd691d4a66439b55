package knowledge

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/medassist-lab/medassist/pkg/domain/interfaces"
	"github.com/medassist-lab/medassist/pkg/domain/model"
	"github.com/medassist-lab/medassist/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

const defaultEmbedConcurrency = 4

// Loader builds a Store from a directory of source documents
type Loader struct {
	llm         interfaces.LLMService
	chunkSize   int
	concurrency int
}

// LoaderOption is a functional option for Loader configuration
type LoaderOption func(*Loader)

// WithChunkSize overrides the chunk size threshold
func WithChunkSize(size int) LoaderOption {
	return func(l *Loader) {
		l.chunkSize = size
	}
}

// WithEmbedConcurrency bounds the number of concurrent embedding calls
// during the load step
func WithEmbedConcurrency(n int) LoaderOption {
	return func(l *Loader) {
		l.concurrency = n
	}
}

// NewLoader creates a new corpus loader with the provided LLM service
func NewLoader(llm interfaces.LLMService, opts ...LoaderOption) (*Loader, error) {
	if llm == nil {
		return nil, goerr.New("LLM service is required")
	}

	l := &Loader{
		llm:         llm,
		chunkSize:   DefaultChunkSize,
		concurrency: defaultEmbedConcurrency,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// Load reads every document under dir, chunks it, embeds each chunk,
// and returns the resulting immutable store. Documents are visited in
// filename order and chunks keep document order, so repeated loads of
// the same corpus produce identically ordered stores.
func (l *Loader) Load(ctx context.Context, dir string) (*Store, error) {
	docs, err := readDocuments(dir)
	if err != nil {
		return nil, err
	}

	var chunks []model.KnowledgeChunk
	for _, doc := range docs {
		for _, text := range SplitChunks(doc.text, l.chunkSize) {
			chunks = append(chunks, model.KnowledgeChunk{
				Text:   text,
				Source: doc.id,
			})
		}
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(l.concurrency)
	for i := range chunks {
		eg.Go(func() error {
			embedding, err := l.llm.Embed(egCtx, chunks[i].Text)
			if err != nil {
				return goerr.Wrap(err, "failed to embed chunk",
					goerr.V("source", chunks[i].Source))
			}
			chunks[i].Embedding = embedding
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("knowledge base loaded",
		"documents", len(docs),
		"chunks", len(chunks),
	)

	return NewStore(chunks), nil
}

type document struct {
	id   string
	text string
}

// readDocuments scans dir for supported documents and reduces each to
// plain text. The document ID is the filename without its extension.
func readDocuments(dir string) ([]document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read corpus directory", goerr.V("dir", dir))
	}

	var docs []document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))

		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read document", goerr.V("file", name))
		}

		var text string
		switch ext {
		case ".html", ".htm":
			text, err = stripHTML(string(raw))
			if err != nil {
				return nil, goerr.Wrap(err, "failed to parse HTML document", goerr.V("file", name))
			}
		case ".txt", ".md":
			text = string(raw)
		default:
			continue
		}

		docs = append(docs, document{
			id:   strings.TrimSuffix(name, filepath.Ext(name)),
			text: text,
		})
	}

	return docs, nil
}
