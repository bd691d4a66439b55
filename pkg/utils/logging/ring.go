package logging

import (
	"bytes"
	"sync"
)

// RingBuffer keeps the most recent log lines in memory so they can be
// served back over the read-only /logs endpoint. It implements io.Writer
// and is safe for concurrent use.
type RingBuffer struct {
	mu    sync.RWMutex
	lines []string
	max   int
	part  bytes.Buffer
}

// NewRingBuffer creates a buffer holding up to max lines
func NewRingBuffer(max int) *RingBuffer {
	return &RingBuffer{max: max}
}

func (b *RingBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.part.Write(p)
	for {
		idx := bytes.IndexByte(b.part.Bytes(), '\n')
		if idx < 0 {
			break
		}
		line := string(b.part.Next(idx + 1))
		b.lines = append(b.lines, line[:len(line)-1])
		if len(b.lines) > b.max {
			b.lines = b.lines[len(b.lines)-b.max:]
		}
	}

	return len(p), nil
}

// Tail returns up to n of the most recent complete lines
func (b *RingBuffer) Tail(n int) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if n > len(b.lines) {
		n = len(b.lines)
	}
	out := make([]string, n)
	copy(out, b.lines[len(b.lines)-n:])
	return out
}
