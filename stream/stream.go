// Package stream implements the character source described by spec.md §3
// and §4.1: a single in-memory buffer plus a cursor that performs C11
// §5.1.1 translation phases 1-2 — line-ending canonicalisation,
// backslash-newline splicing, and terminal-newline synthesis — with an
// unbounded push-back stash.
package stream

import (
	"fmt"
	"os"
	"time"

	"github.com/ccfront/lexer/diag"
	"github.com/ccfront/lexer/strpool"
	"github.com/ccfront/lexer/token"
)

// Kind distinguishes a file-backed Stream from a string-backed one.
type Kind int

const (
	// File is a Stream backed by the full contents of a file read once at
	// construction time.
	File Kind = iota
	// Text is a Stream backed by caller-provided bytes.
	Text
)

// stringStreamName is the filename used for string-backed streams, per
// spec.md §4.1 ("filename is <string>").
const stringStreamName = "<string>"

// options holds the per-Stream configuration flags from spec.md §6.
type options struct {
	warnBackslashNewlineSpace bool
	warnNoNewlineAtEOF        bool
	sink                      diag.Sink
}

// Option configures a Stream at construction time.
type Option func(*options)

// WarnBackslashNewlineSpace enables the w_backslash_newline_space warning:
// a backslash-newline splice with whitespace between the backslash and the
// newline is diagnosed.
func WarnBackslashNewlineSpace() Option {
	return func(o *options) { o.warnBackslashNewlineSpace = true }
}

// WarnNoNewlineAtEOF enables the warn_no_newline_eof warning: a
// backslash-newline splice that runs all the way to end of file (so no
// newline was actually present to splice) is diagnosed.
func WarnNoNewlineAtEOF() Option {
	return func(o *options) { o.warnNoNewlineAtEOF = true }
}

// WithSink routes Stream-level warnings to sink. Without this option,
// warnings are silently dropped (the Stream still behaves correctly; it
// just has nowhere to report to).
func WithSink(sink diag.Sink) Option {
	return func(o *options) { o.sink = sink }
}

// Stream holds one in-memory input buffer and its logical cursor. Streams
// are created by Open/OpenString, pushed onto a reader.Reader, and mutated
// only by character consumption (Next/Unget). A Stream carries no file
// handle past construction: Open reads the whole file then closes it.
type Stream struct {
	name strpool.Handle
	buf  []byte

	cur      int // index of next unread byte in buf
	line     int // 1-based
	column   int // 1-based
	lineNote int // byte offset of first byte of the current physical line

	hasLast      bool
	lastReturned byte

	stash    []pushback // LIFO push-back stash, one entry per ungotten byte
	posStack []position // pre-mutation position of each live (not yet ungotten) byte

	streamKind Kind
	modTime    time.Time
	accessTime time.Time
	changeTime time.Time

	opts options
}

// position is a snapshot of the three cursor fields Next mutates, used to
// roll a Stream's position back across Unget/Next round-trips.
type position struct {
	line     int
	column   int
	lineNote int
}

// pushback is one entry of the byte-level stash: the ungotten byte plus
// the position to restore on Unget (pre) and the position to restore
// when Next replays it (post, what the cursor was when this byte was
// originally produced).
type pushback struct {
	b    byte
	pre  position
	post position
}

func (s *Stream) curPos() position {
	return position{line: s.line, column: s.column, lineNote: s.lineNote}
}

func (s *Stream) setPos(p position) {
	s.line, s.column, s.lineNote = p.line, p.column, p.lineNote
}

// Open reads path fully into memory and returns a Stream for it. The file
// is closed before Open returns; no further I/O occurs on this Stream.
func Open(pool strpool.Pool, path string, opts ...Option) (*Stream, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stream: stat %s: %w", path, err)
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stream: read %s: %w", path, err)
	}
	s := newStream(pool, path, buf, File, opts...)
	s.modTime = fi.ModTime()
	s.accessTime = accessTime(fi)
	s.changeTime = changeTime(fi)
	return s, nil
}

// OpenString returns a Stream backed by src. name is used only for
// diagnostics; if empty, the canonical "<string>" name is used.
func OpenString(pool strpool.Pool, name string, src []byte, opts ...Option) *Stream {
	if name == "" {
		name = stringStreamName
	}
	return newStream(pool, name, src, Text, opts...)
}

func newStream(pool strpool.Pool, name string, buf []byte, kind Kind, opts ...Option) *Stream {
	var o options
	for _, f := range opts {
		f(&o)
	}
	s := &Stream{
		name:       pool.InternCString(name),
		buf:        buf,
		line:       1,
		column:     1,
		lineNote:   0,
		streamKind: kind,
		opts:       o,
	}
	return s
}

// EOF is the value Next reports via its ok=false second return.
const EOF = -1

// Next returns the next logical character, applying line-ending
// canonicalisation, backslash-newline splicing, and terminal-newline
// synthesis. ok is false only at true end of input.
func (s *Stream) Next() (b byte, ok bool) {
	if n := len(s.stash); n > 0 {
		pb := s.stash[n-1]
		s.stash = s.stash[:n-1]
		s.setPos(pb.post)
		s.posStack = append(s.posStack, pb.pre)
		s.hasLast = true
		s.lastReturned = pb.b
		return pb.b, true
	}

again:
	if s.cur >= len(s.buf) {
		if s.hasLast && s.lastReturned == '\n' {
			return 0, false
		}
		// C11 terminal-newline rule: synthesise exactly one '\n', then EOF.
		s.posStack = append(s.posStack, s.curPos())
		s.hasLast = true
		s.lastReturned = '\n'
		return '\n', true
	}

	c := s.buf[s.cur]
	switch c {
	case '\r':
		pre := s.curPos()
		s.cur++
		if s.cur < len(s.buf) && s.buf[s.cur] == '\n' {
			s.cur++
		}
		s.newLine()
		s.posStack = append(s.posStack, pre)
		s.hasLast, s.lastReturned = true, '\n'
		return '\n', true
	case '\n':
		pre := s.curPos()
		s.cur++
		s.newLine()
		s.posStack = append(s.posStack, pre)
		s.hasLast, s.lastReturned = true, '\n'
		return '\n', true
	case '\\':
		if consumed, sawSpace, spliced := s.trySplice(); spliced {
			if sawSpace && s.opts.warnBackslashNewlineSpace {
				s.warnf("backslash and newline separated by space")
			}
			s.cur = consumed
			s.newLine()
			goto again
		} else if consumed >= 0 {
			// backslash (+ optional spaces/tabs) ran off the end of the
			// buffer without ever finding a newline: splice to EOF.
			if s.opts.warnNoNewlineAtEOF {
				s.warnf("backslash-newline at end of file")
			}
			s.cur = consumed
			s.posStack = append(s.posStack, s.curPos())
			s.hasLast, s.lastReturned = true, '\n'
			return '\n', true
		}
	}

	pre := s.curPos()
	s.cur++
	s.column++
	s.posStack = append(s.posStack, pre)
	s.hasLast, s.lastReturned = true, c
	return c, true
}

// trySplice looks ahead from a '\\' at s.cur for an optional run of spaces
///tabs followed by \r, \n, or \r\n. It returns the buffer index to resume
// from and whether a real splice (ending in a newline) was found. If no
// newline is ever found before the buffer ends, spliced is false but
// consumed >= 0 signals a mid-splice EOF; if c is not part of a splice at
// all, consumed is -1.
func (s *Stream) trySplice() (consumed int, sawSpace bool, spliced bool) {
	i := s.cur + 1
	for i < len(s.buf) && (s.buf[i] == ' ' || s.buf[i] == '\t') {
		sawSpace = true
		i++
	}
	if i >= len(s.buf) {
		return i, sawSpace, false
	}
	switch s.buf[i] {
	case '\r':
		i++
		if i < len(s.buf) && s.buf[i] == '\n' {
			i++
		}
		return i, sawSpace, true
	case '\n':
		i++
		return i, sawSpace, true
	default:
		return -1, false, false
	}
}

func (s *Stream) newLine() {
	s.line++
	s.column = 1
	s.lineNote = s.cur
}

// Unget pushes b back onto the push-back stash so the next call to Next
// returns it again, rolling line/column/lineNote back to what they were
// immediately before the Next call that produced b. EOF and NUL are
// invalid pushbacks.
func (s *Stream) Unget(b byte) {
	if b == 0 {
		panic("stream: invalid unget of NUL")
	}
	post := s.curPos()
	pre := post
	if n := len(s.posStack); n > 0 {
		pre = s.posStack[n-1]
		s.posStack = s.posStack[:n-1]
	}
	s.setPos(pre)
	s.stash = append(s.stash, pushback{b: b, pre: pre, post: post})
}

// Peek returns the next logical character without consuming it.
func (s *Stream) Peek() (byte, bool) {
	b, ok := s.Next()
	if ok {
		s.Unget(b)
	}
	return b, ok
}

// Line returns the current 1-based logical line number.
func (s *Stream) Line() int { return s.line }

// Column returns the current 1-based column number.
func (s *Stream) Column() int { return s.column }

// Filename returns the stream's interned name.
func (s *Stream) Filename() string { return strpool.Str(s.name) }

// LineNote returns the byte offset of the first byte of the current
// physical line, for caret rendering.
func (s *Stream) LineNote() int { return s.lineNote }

// Kind reports whether this is a file- or string-backed Stream.
func (s *Stream) Kind() Kind { return s.streamKind }

// ModTime, AccessTime and ChangeTime return the stat times captured when
// a file Stream was opened. They are the zero time for string streams.
func (s *Stream) ModTime() time.Time    { return s.modTime }
func (s *Stream) AccessTime() time.Time { return s.accessTime }
func (s *Stream) ChangeTime() time.Time { return s.changeTime }

// LineBytes returns the raw bytes of the physical source line starting at
// offset off (normally a LineNote value), up to but not including the
// next line terminator or end of buffer.
func (s *Stream) LineBytes(off int) []byte {
	if off < 0 || off > len(s.buf) {
		return nil
	}
	end := off
	for end < len(s.buf) && s.buf[end] != '\n' && s.buf[end] != '\r' {
		end++
	}
	return s.buf[off:end]
}

// Position returns the current source location as an immutable
// token.Position snapshot.
func (s *Stream) Position() token.Position {
	return token.Position{
		Filename: s.Filename(),
		Line:     s.line,
		Column:   s.column,
		LineNote: s.lineNote,
	}
}

func (s *Stream) warnf(format string, args ...interface{}) {
	if s.opts.sink == nil {
		return
	}
	note := diag.LineNote{
		Bytes:       s.LineBytes(s.lineNote),
		CaretColumn: s.column,
		CaretLength: 1,
	}
	s.opts.sink.Diagnose(diag.Warning, s.Position(), note, format, args...)
}
