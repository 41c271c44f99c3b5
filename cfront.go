package cfront

import (
	"github.com/ccfront/lexer/diag"
	"github.com/ccfront/lexer/lexer"
	"github.com/ccfront/lexer/reader"
	"github.com/ccfront/lexer/strpool"
	"github.com/ccfront/lexer/stream"
)

// Option configures the Reader and Lexer a New*Lexer constructor builds.
type Option func(*config)

type config struct {
	pool       strpool.Pool
	sink       diag.Sink
	streamOpts []stream.Option
	lexerOpts  []lexer.Option
}

// WithPool sets the string pool used to intern filenames. Defaults to a
// fresh strpool.Map.
func WithPool(pool strpool.Pool) Option {
	return func(c *config) { c.pool = pool }
}

// WithSink routes every diagnostic (backslash-newline warnings from the
// Stream layer, lexical errors and warnings from the Lexer) to sink.
func WithSink(sink diag.Sink) Option {
	return func(c *config) { c.sink = sink }
}

// WithWarnings enables the two opt-in Stream-level warnings described by
// spec.md §6: a backslash-newline splice with trailing whitespace before
// the newline, and a backslash-newline splice with no newline to find
// before end of file.
func WithWarnings() Option {
	return func(c *config) {
		c.streamOpts = append(c.streamOpts,
			stream.WarnBackslashNewlineSpace(),
			stream.WarnNoNewlineAtEOF())
	}
}

// WithLexerOptions passes opts through to lexer.New.
func WithLexerOptions(opts ...lexer.Option) Option {
	return func(c *config) { c.lexerOpts = append(c.lexerOpts, opts...) }
}

func build(opts []Option) *config {
	c := &config{}
	for _, o := range opts {
		o(c)
	}
	if c.pool == nil {
		c.pool = strpool.NewMap()
	}
	return c
}

func (c *config) readerOpts() []reader.Option {
	opts := []reader.Option{reader.WithPool(c.pool)}
	if c.sink != nil {
		opts = append(opts, reader.WithSink(c.sink))
	}
	if len(c.streamOpts) > 0 {
		opts = append(opts, reader.WithStreamOptions(c.streamOpts...))
	}
	return opts
}

// NewFileLexer opens path and returns a Lexer scanning its contents.
func NewFileLexer(path string, opts ...Option) (*lexer.Lexer, error) {
	c := build(opts)
	r := reader.New(c.readerOpts()...)
	if err := r.Push(path); err != nil {
		return nil, err
	}
	return lexer.New(r, c.sink, c.lexerOpts...), nil
}

// NewStringLexer returns a Lexer scanning src, reported under name in
// diagnostics and positions (name may be empty, yielding the canonical
// "<string>").
func NewStringLexer(name string, src []byte, opts ...Option) *lexer.Lexer {
	c := build(opts)
	r := reader.New(c.readerOpts()...)
	r.PushString(name, src)
	return lexer.New(r, c.sink, c.lexerOpts...)
}
