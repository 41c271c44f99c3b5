package stream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccfront/lexer/diag"
	"github.com/ccfront/lexer/stream"
	"github.com/ccfront/lexer/strpool"
	"github.com/ccfront/lexer/token"
)

func readAll(t *testing.T, s *stream.Stream) string {
	t.Helper()
	var got []byte
	for {
		b, ok := s.Next()
		if !ok {
			break
		}
		got = append(got, b)
		if len(got) > 1<<16 {
			t.Fatal("Next did not reach EOF")
		}
	}
	return string(got)
}

func TestNextLineEndingCanonicalisation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lf", "a\nb", "a\nb\n"},
		{"crlf", "a\r\nb", "a\nb\n"},
		{"cr", "a\rb", "a\nb\n"},
		{"mixed", "a\r\nb\rc\nd", "a\nb\nc\nd\n"},
		{"already terminated", "a\n", "a\n"},
		{"empty", "", "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stream.OpenString(strpool.NewMap(), "", []byte(tt.input))
			assert.Equal(t, tt.want, readAll(t, s))
		})
	}
}

func TestNextBackslashNewlineSplice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lf splice", "a\\\nb", "ab\n"},
		{"crlf splice", "a\\\r\nb", "ab\n"},
		{"splice with trailing space", "a\\  \nb", "ab\n"},
		{"chained splice", "a\\\n\\\nb", "ab\n"},
		{"splice at eof, no newline found", "a\\", "a\n"},
		{"backslash not followed by newline", "a\\b", "a\\b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stream.OpenString(strpool.NewMap(), "", []byte(tt.input))
			assert.Equal(t, tt.want, readAll(t, s))
		})
	}
}

type fakeSink struct {
	calls []string
}

func (f *fakeSink) Diagnose(sev diag.Severity, pos token.Position, note diag.LineNote, format string, args ...interface{}) {
	f.calls = append(f.calls, sev.String())
}

func TestWarnBackslashNewlineSpace(t *testing.T) {
	sink := &fakeSink{}
	s := stream.OpenString(strpool.NewMap(), "in.c", []byte("a\\  \nb"),
		stream.WithSink(sink), stream.WarnBackslashNewlineSpace())
	readAll(t, s)
	require.Len(t, sink.calls, 1)
	assert.Equal(t, "warning", sink.calls[0])
}

func TestWarnNoNewlineAtEOF(t *testing.T) {
	sink := &fakeSink{}
	s := stream.OpenString(strpool.NewMap(), "in.c", []byte("a\\"),
		stream.WithSink(sink), stream.WarnNoNewlineAtEOF())
	readAll(t, s)
	require.Len(t, sink.calls, 1)
	assert.Equal(t, "warning", sink.calls[0])
}

func TestUnget(t *testing.T) {
	s := stream.OpenString(strpool.NewMap(), "", []byte("xy"))
	b, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, byte('x'), b)
	s.Unget(b)
	b, ok = s.Next()
	require.True(t, ok)
	assert.Equal(t, byte('x'), b)
}

func TestPeekDoesNotConsume(t *testing.T) {
	s := stream.OpenString(strpool.NewMap(), "", []byte("xy"))
	p, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, byte('x'), p)
	b, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, p, b)
}

func TestLineColumnTracking(t *testing.T) {
	s := stream.OpenString(strpool.NewMap(), "", []byte("ab\ncd"))
	for i := 0; i < 2; i++ {
		s.Next()
	}
	assert.Equal(t, 1, s.Line())
	assert.Equal(t, 3, s.Column())
	s.Next() // the \n
	assert.Equal(t, 2, s.Line())
	assert.Equal(t, 1, s.Column())
}

func TestLineBytes(t *testing.T) {
	s := stream.OpenString(strpool.NewMap(), "", []byte("line one\nline two"))
	assert.Equal(t, "line one", string(s.LineBytes(0)))
	assert.Equal(t, "line two", string(s.LineBytes(9)))
}

// TestPeekColumnRollback pins the peek invariant from spec.md §4.1
// (peek()==c ⇒ next()==c): a Peek (or an Unget of a byte that is never
// re-consumed) must not leave Column permanently advanced past where it
// was before that byte was read.
func TestPeekColumnRollback(t *testing.T) {
	s := stream.OpenString(strpool.NewMap(), "", []byte("ab"))
	b, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, byte('a'), b)
	assert.Equal(t, 2, s.Column())

	p, ok := s.Peek() // reads 'b' then ungets it
	require.True(t, ok)
	assert.Equal(t, byte('b'), p)
	assert.Equal(t, 2, s.Column(), "Peek must not leave Column advanced past the byte it looked at")

	b, ok = s.Next()
	require.True(t, ok)
	assert.Equal(t, byte('b'), b)
	assert.Equal(t, 3, s.Column())
}

// TestMultiByteLookaheadRollback exercises a chain of Next calls followed
// by Ungets in reverse order (as lexer.tryBytes does), confirming each
// Unget rolls Column back to its own pre-read value rather than just the
// single most recent one.
func TestMultiByteLookaheadRollback(t *testing.T) {
	s := stream.OpenString(strpool.NewMap(), "", []byte("abc"))
	b1, _ := s.Next()
	b2, _ := s.Next()
	b3, _ := s.Next()
	assert.Equal(t, 4, s.Column())

	s.Unget(b3)
	s.Unget(b2)
	s.Unget(b1)
	assert.Equal(t, 1, s.Column(), "ungetting every read byte must restore the original column")

	b, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, byte('a'), b)
	assert.Equal(t, 2, s.Column())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := stream.Open(strpool.NewMap(), "/no/such/file/here")
	require.Error(t, err)
}

func TestOpenStringDefaultName(t *testing.T) {
	s := stream.OpenString(strpool.NewMap(), "", []byte("x"))
	assert.Equal(t, "<string>", s.Filename())
}
