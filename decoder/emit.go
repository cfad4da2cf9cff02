package decoder

import (
	"bufio"
	"io"
	"strconv"
	"sync"
)

// Emitter receives the node ids of each completed feasible route, in
// construction order. Implementations used with DecodeBatch must be safe
// for concurrent use. The ids slice is owned by the callee.
type Emitter interface {
	Emit(ids []int) error
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(ids []int) error

// Emit calls f(ids).
func (f EmitterFunc) Emit(ids []int) error { return f(ids) }

// WriterEmitter writes one line of space-separated ids per route to an
// io.Writer (console, file). Lines from concurrent decodes never interleave.
type WriterEmitter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterEmitter returns an Emitter writing to w.
func NewWriterEmitter(w io.Writer) *WriterEmitter {
	return &WriterEmitter{w: w}
}

// Emit writes ids as a single line.
func (e *WriterEmitter) Emit(ids []int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	// bufio.Writer errors are sticky; Flush reports the first one.
	bw := bufio.NewWriter(e.w)
	for i, id := range ids {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(id))
	}
	bw.WriteByte('\n')

	return bw.Flush()
}
