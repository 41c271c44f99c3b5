package reader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccfront/lexer/reader"
)

func TestGetAcrossPushedStreams(t *testing.T) {
	r := reader.New()
	r.PushString("outer.c", []byte("ab"))

	b, ok := r.Get()
	require.True(t, ok)
	assert.Equal(t, byte('a'), b)

	// simulate an #include: push a nested stream, drain it, pop back.
	r.PushString("inner.h", []byte("X"))
	assert.Equal(t, "inner.h", r.Filename())
	b, ok = r.Get()
	require.True(t, ok)
	assert.Equal(t, byte('X'), b)
	_, ok = r.Get() // the synthesised terminal newline
	require.True(t, ok)
	_, ok = r.Get()
	assert.False(t, ok)

	r.Pop()
	assert.Equal(t, "outer.c", r.Filename())
	b, ok = r.Get()
	require.True(t, ok)
	assert.Equal(t, byte('b'), b)
}

func TestPopEmptyIsNoop(t *testing.T) {
	r := reader.New()
	assert.True(t, r.IsEmpty())
	r.Pop()
	assert.True(t, r.IsEmpty())
}

func TestPositionPanicsOnEmptyReader(t *testing.T) {
	r := reader.New()
	assert.Panics(t, func() { r.Position() })
}

func TestTryAndTest(t *testing.T) {
	r := reader.New()
	r.PushString("", []byte("ab"))

	assert.True(t, r.Test('a'))
	assert.False(t, r.Try('z'))
	assert.True(t, r.Try('a'))
	assert.Equal(t, byte('b'), mustPeek(t, r))
}

func mustPeek(t *testing.T, r *reader.Reader) byte {
	t.Helper()
	b, ok := r.Peek()
	require.True(t, ok)
	return b
}

func TestUngetThroughReader(t *testing.T) {
	r := reader.New()
	r.PushString("", []byte("x"))
	b, ok := r.Get()
	require.True(t, ok)
	r.Unget(b)
	got, ok := r.Get()
	require.True(t, ok)
	assert.Equal(t, b, got)
}
