package diag

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/ccfront/lexer/token"
)

// TextSink renders diagnostics as human-readable text to an io.Writer, in
// the conventional "file:line:col: severity message" form followed by the
// offending source line and a caret, e.g.:
//
//	in.c:3:8: error: missing terminating ' character
//	|    int 'x;
//	|        ^
//
// Caret alignment accounts for East-Asian wide and ambiguous-width runes
// using golang.org/x/text/width, the same package and technique the
// teacher library's own token.File example uses to align its caret line.
type TextSink struct {
	w io.Writer
}

// NewTextSink returns a TextSink writing to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

func (s *TextSink) Diagnose(sev Severity, pos token.Position, note LineNote, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(s.w, "%s: %s: %s\n", pos, sev, msg)
	if note.Bytes == nil {
		return
	}
	b := note.CaretColumn - 1
	if b > len(note.Bytes) {
		b = len(note.Bytes)
	}
	if b < 0 {
		b = 0
	}
	fmt.Fprintf(s.w, "|%s\n", note.Bytes)
	fmt.Fprintf(s.w, "|%*s", cellWidth(note.Bytes[:b]), "")
	n := note.CaretLength
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		fmt.Fprint(s.w, "^")
	}
	fmt.Fprintln(s.w)
}

// cellWidth computes the monospace display width in text cells of b,
// treating East-Asian fullwidth/wide runes as two cells and ambiguous
// runes as one (the common terminal default), matching the
// reportError/getWidth helper in the teacher's token package tests.
func cellWidth(b []byte) int {
	w := 0
	for i := 0; i < len(b); {
		r, sz := utf8.DecodeRune(b[i:])
		i += sz
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		default:
			w++
		}
	}
	return w
}
