// Package lexer implements the C token scanner described by spec.md §4.4:
// it consumes a reader.Reader and produces token.Token values with
// lookahead (Peek) and unbounded backtracking (Untread) over already
// produced tokens, managed as a stack of snapshots so that nested
// speculative parses can each get their own independent undo buffer.
package lexer

import (
	"fmt"
	"time"

	"github.com/ccfront/lexer/diag"
	"github.com/ccfront/lexer/reader"
	"github.com/ccfront/lexer/token"
)

// options holds Lexer-wide configuration, per spec.md §6.
type options struct {
	now func() time.Time
}

// Option configures a Lexer at construction time.
type Option func(*options)

// WithClock overrides the wall-clock source used to capture the time
// Date()/Time() (and ultimately __DATE__/__TIME__) report. Defaults to
// time.Now; tests that need deterministic output should supply a fixed
// clock.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Lexer scans one reader.Reader into token.Token values. Ownership: the
// Reader owns its Streams; the Lexer only borrows the Reader. Each
// produced Token is a plain value, owned by the caller.
type Lexer struct {
	r    *reader.Reader
	sink diag.Sink

	scratch token.Token // accumulates literal text before publication

	tm time.Time // captured at construction, for Date()/Time()

	snapshots [][]token.Token // stack of LIFO untread buffers; never empty

	atBOL bool // true until a semantic token has been produced on this line

	buf []byte // reusable literal-accumulation buffer for the in-flight token
}

// New returns a Lexer reading from r and reporting diagnostics to sink
// (sink may be nil: diagnostics are then silently dropped, same as a
// stream.Stream with no sink option).
func New(r *reader.Reader, sink diag.Sink, opts ...Option) *Lexer {
	var o options
	for _, f := range opts {
		f(&o)
	}
	if o.now == nil {
		o.now = time.Now
	}
	return &Lexer{
		r:         r,
		sink:      sink,
		tm:        o.now(),
		snapshots: [][]token.Token{nil},
		atBOL:     true,
	}
}

// Date formats the Lexer's captured construction time the way C's
// __DATE__ does: "Mmm dd yyyy", with a space (not a zero) padding a
// single-digit day, so the result is always 11 bytes long. Go's "_2"
// layout directive is exactly that space-padded day field.
func (l *Lexer) Date() string {
	return l.tm.Format("Jan _2 2006")
}

// Time formats the Lexer's captured construction time as "HH:MM:SS", for
// __TIME__.
func (l *Lexer) Time() string {
	return l.tm.Format("15:04:05")
}

// Stash pushes a new, empty snapshot, giving the caller an independent
// untread buffer until the matching Unstash.
func (l *Lexer) Stash() {
	l.snapshots = append(l.snapshots, nil)
}

// Unstash discards the top snapshot along with any tokens still buffered
// in it. Unstash on the last remaining snapshot is a no-op (the Lexer
// invariant is that snapshots is never empty).
func (l *Lexer) Unstash() {
	if n := len(l.snapshots); n > 1 {
		l.snapshots = l.snapshots[:n-1]
	} else {
		l.snapshots[0] = nil
	}
}

// Untread pushes tok back onto the top snapshot so the next Next() call
// returns it. Untreading an END token is rejected.
func (l *Lexer) Untread(tok token.Token) error {
	if tok.Kind == token.END {
		return fmt.Errorf("lexer: cannot untread END")
	}
	top := len(l.snapshots) - 1
	l.snapshots[top] = append(l.snapshots[top], tok)
	return nil
}

func (l *Lexer) popSnapshot() (token.Token, bool) {
	top := len(l.snapshots) - 1
	s := l.snapshots[top]
	if len(s) == 0 {
		return token.Token{}, false
	}
	tok := s[len(s)-1]
	l.snapshots[top] = s[:len(s)-1]
	return tok, true
}

// Next produces the next semantic token: a snapshot hit is returned as
// is; otherwise raw tokens are pulled from Scan, with SPACE, COMMENT and
// NEW_LINE folded into LeadingSpace/BeginOfLine bookkeeping rather than
// surfaced to the caller (callers that need line-structure information,
// such as a preprocessor directive scanner, use Scan directly).
func (l *Lexer) Next() token.Token {
	if tok, ok := l.popSnapshot(); ok {
		return tok
	}
	bol := l.atBOL
	leading := 0
	for {
		tok := l.Scan()
		switch tok.Kind {
		case token.NEW_LINE:
			bol = true
			l.atBOL = true
			leading++
			continue
		case token.SPACE:
			leading += len(tok.Lit)
			continue
		case token.COMMENT:
			leading++
			continue
		}
		tok.BeginOfLine = bol
		tok.LeadingSpace = leading
		if tok.Kind != token.END {
			l.atBOL = false
		}
		return tok
	}
}

// Peek returns the next semantic token without consuming it (Next
// followed by Untread), except for END, which is never untread (and so
// repeated Peek calls at end of input are cheap and idempotent).
func (l *Lexer) Peek() token.Token {
	tok := l.Next()
	if tok.Kind != token.END {
		l.Untread(tok)
	}
	return tok
}

func (l *Lexer) errorf(pos token.Position, format string, args ...interface{}) {
	if l.sink == nil {
		return
	}
	note := diag.LineNote{
		Bytes:       l.r.LineBytes(pos.LineNote),
		CaretColumn: pos.Column,
		CaretLength: 1,
	}
	l.sink.Diagnose(diag.Error, pos, note, format, args...)
}

func (l *Lexer) warnf(pos token.Position, format string, args ...interface{}) {
	if l.sink == nil {
		return
	}
	note := diag.LineNote{
		Bytes:       l.r.LineBytes(pos.LineNote),
		CaretColumn: pos.Column,
		CaretLength: 1,
	}
	l.sink.Diagnose(diag.Warning, pos, note, format, args...)
}

// startToken resets the scratch token and records its start position.
func (l *Lexer) startToken() {
	pos := l.r.Position()
	l.scratch = token.Token{Pos: pos}
}

// makeToken finalises the scratch token with kind and lit, returning an
// owned copy, and resets the scratch for the next call.
func (l *Lexer) makeToken(kind token.Kind, lit string) token.Token {
	l.scratch.Kind = kind
	l.scratch.Lit = lit
	tok := l.scratch
	l.scratch = token.Token{}
	return tok
}

func (l *Lexer) get() (byte, bool)    { return l.r.Get() }
func (l *Lexer) peek() (byte, bool)   { return l.r.Peek() }
func (l *Lexer) unget(b byte)         { l.r.Unget(b) }
func (l *Lexer) tryByte(b byte) bool  { return l.r.Try(b) }
func (l *Lexer) testByte(b byte) bool { return l.r.Test(b) }

// tryBytes attempts to consume bs in order, atomically: on any mismatch
// every byte already consumed by this call is pushed back, in reverse
// order, leaving the Reader exactly as it was found.
func (l *Lexer) tryBytes(bs ...byte) bool {
	consumed := make([]byte, 0, len(bs))
	for _, want := range bs {
		c, ok := l.get()
		if !ok || c != want {
			if ok {
				l.unget(c)
			}
			for i := len(consumed) - 1; i >= 0; i-- {
				l.unget(consumed[i])
			}
			return false
		}
		consumed = append(consumed, c)
	}
	return true
}

// resetBuf clears the literal-accumulation buffer, reusing its storage.
func (l *Lexer) resetBuf() { l.buf = l.buf[:0] }

func (l *Lexer) appendByte(b byte) { l.buf = append(l.buf, b) }

func (l *Lexer) bufString() string { return string(l.buf) }
