// Package reader implements the stacked, multi-stream façade described by
// spec.md §4.2: an ordered stack of stream.Stream values with get/peek/
// unget/try/test primitives that always operate on the topmost stream.
// Pushing a stream models entering an #include-like nested input; popping
// models returning to the includer. All position queries require a
// non-empty stack: querying an empty Reader is a programmer error and
// panics, exactly as spec.md §3 mandates.
package reader

import (
	"github.com/ccfront/lexer/diag"
	"github.com/ccfront/lexer/stream"
	"github.com/ccfront/lexer/strpool"
	"github.com/ccfront/lexer/token"
)

// Reader is a stack of stream.Stream. The zero value is not usable; use New.
type Reader struct {
	pool   strpool.Pool
	sink   diag.Sink
	opts   []stream.Option
	stack  []*stream.Stream
}

// Option configures a Reader at construction time.
type Option func(*Reader)

// WithPool sets the string pool used to intern filenames opened through
// Push/PushString. Defaults to a fresh strpool.Map if not given.
func WithPool(pool strpool.Pool) Option {
	return func(r *Reader) { r.pool = pool }
}

// WithSink routes diagnostics from every Stream pushed onto this Reader
// (backslash-newline warnings, see spec.md §6) to sink.
func WithSink(sink diag.Sink) Option {
	return func(r *Reader) { r.sink = sink }
}

// WithStreamOptions adds stream.Options applied to every Stream this
// Reader pushes (e.g. stream.WarnBackslashNewlineSpace()).
func WithStreamOptions(opts ...stream.Option) Option {
	return func(r *Reader) { r.opts = append(r.opts, opts...) }
}

// New returns an empty Reader.
func New(opts ...Option) *Reader {
	r := &Reader{}
	for _, o := range opts {
		o(r)
	}
	if r.pool == nil {
		r.pool = strpool.NewMap()
	}
	return r
}

func (r *Reader) streamOpts() []stream.Option {
	opts := make([]stream.Option, 0, len(r.opts)+1)
	if r.sink != nil {
		opts = append(opts, stream.WithSink(r.sink))
	}
	opts = append(opts, r.opts...)
	return opts
}

// Push opens path and pushes it as the new active stream.
func (r *Reader) Push(path string) error {
	s, err := stream.Open(r.pool, path, r.streamOpts()...)
	if err != nil {
		return err
	}
	r.stack = append(r.stack, s)
	return nil
}

// PushString pushes an in-memory source as the new active stream.
func (r *Reader) PushString(name string, src []byte) {
	s := stream.OpenString(r.pool, name, src, r.streamOpts()...)
	r.stack = append(r.stack, s)
}

// Pop destroys the topmost stream and resumes the one beneath it, if any.
// Popping an empty Reader is a no-op.
func (r *Reader) Pop() {
	if n := len(r.stack); n > 0 {
		r.stack = r.stack[:n-1]
	}
}

// IsEmpty reports whether the stream stack is empty.
func (r *Reader) IsEmpty() bool {
	return len(r.stack) == 0
}

func (r *Reader) top() *stream.Stream {
	if len(r.stack) == 0 {
		panic("reader: operation on empty Reader")
	}
	return r.stack[len(r.stack)-1]
}

// Get consumes and returns the next character from the active stream. ok
// is false only when the active stream is exhausted; callers that want
// transparent include-like chaining should Pop and retry on their own
// (the Reader intentionally does not auto-pop, so callers can tell EOF of
// one stream apart from EOF of the whole stack).
func (r *Reader) Get() (byte, bool) {
	return r.top().Next()
}

// Peek returns the next character without consuming it.
func (r *Reader) Peek() (byte, bool) {
	return r.top().Peek()
}

// Unget pushes b back for re-consumption by the next Get/Peek.
func (r *Reader) Unget(b byte) {
	r.top().Unget(b)
}

// Try consumes the next character iff it equals b, reporting success.
func (r *Reader) Try(b byte) bool {
	c, ok := r.Get()
	if ok && c == b {
		return true
	}
	if ok {
		r.Unget(c)
	}
	return false
}

// Test reports whether the next character equals b, without consuming it.
func (r *Reader) Test(b byte) bool {
	c, ok := r.Peek()
	return ok && c == b
}

// Line returns the active stream's current line.
func (r *Reader) Line() int { return r.top().Line() }

// Column returns the active stream's current column.
func (r *Reader) Column() int { return r.top().Column() }

// Filename returns the active stream's name.
func (r *Reader) Filename() string { return r.top().Filename() }

// LineNote returns the active stream's current physical-line anchor.
func (r *Reader) LineNote() int { return r.top().LineNote() }

// Position returns the active stream's current source location.
func (r *Reader) Position() token.Position { return r.top().Position() }

// LineBytes returns the raw bytes of the physical line starting at the
// active stream's given offset (typically a LineNote value).
func (r *Reader) LineBytes(off int) []byte { return r.top().LineBytes(off) }

// TopStream exposes the active stream directly, for callers that need
// lower-level access such as stat times.
func (r *Reader) TopStream() *stream.Stream {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}
