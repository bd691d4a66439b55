package knowledge

import "strings"

// DefaultChunkSize is the character threshold at which a chunk buffer
// is flushed during corpus loading
const DefaultChunkSize = 500

// SplitChunks splits document text into retrieval chunks. Paragraphs
// (blank-line separated) are greedily accumulated until adding the next
// paragraph would reach the size threshold, at which point the buffer is
// flushed and the triggering paragraph starts a new chunk. A single
// paragraph longer than the threshold becomes a chunk on its own.
// Whitespace-only chunks are dropped.
func SplitChunks(text string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}

	var chunks []string
	var buf strings.Builder

	flush := func() {
		chunk := strings.TrimSpace(buf.String())
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		buf.Reset()
	}

	for _, para := range strings.Split(text, "\n\n") {
		if buf.Len()+len(para) >= size {
			flush()
		}
		buf.WriteString(para)
		buf.WriteString("\n\n")
	}
	flush()

	return chunks
}
