// Package strpool defines the string/text interning interface that
// stream.Stream and reader.Reader consume to intern filenames, plus a
// small default implementation. File contents are not interned: a Stream
// keeps its source bytes as its own slice. The interning
// allocator itself (an arena, a generational GC-friendly pool, whatever a
// real compiler wants) is an external collaborator per spec; core packages
// only ever see the Pool interface below.
package strpool

import "sync"

// Handle is an opaque interned-string handle. Handles from the same Pool
// compare by identity (pointer equality of the *string),
// never by content.
type Handle = *string

// Pool interns byte sequences and strings.Builder-style text.
type Pool interface {
	// Intern returns a handle to an interned copy of b. Two calls with
	// equal content are not required to return the same handle unless
	// the Pool documents deduplication.
	Intern(b []byte) Handle
	// InternCString interns s, as-is (s is assumed already owned/immutable
	// by the caller, e.g. a strings.Builder's finished String()).
	InternCString(s string) Handle
}

// Map is a trivial content-addressed Pool backed by a map, suitable for
// tests and simple callers. It deduplicates by content and is safe for
// concurrent use, even though the lexer itself never calls it from more
// than one goroutine (see spec.md §5: the pool is treated as
// single-threaded unless the caller wires in its own synchronization).
type Map struct {
	mu   sync.Mutex
	seen map[string]Handle
}

// NewMap returns a ready-to-use Map pool.
func NewMap() *Map {
	return &Map{seen: make(map[string]Handle)}
}

func (p *Map) Intern(b []byte) Handle {
	return p.InternCString(string(b))
}

func (p *Map) InternCString(s string) Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	if h, ok := p.seen[s]; ok {
		return h
	}
	h := new(string)
	*h = s
	p.seen[s] = h
	return h
}

// Str dereferences a Handle. It exists purely for readability at call
// sites; callers may dereference Handles directly since Handle is a
// defined alias for *string.
func Str(h Handle) string {
	if h == nil {
		return ""
	}
	return *h
}
