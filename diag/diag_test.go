package diag_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccfront/lexer/diag"
	"github.com/ccfront/lexer/token"
)

func examplePos() token.Position {
	return token.Position{Filename: "in.c", Line: 3, Column: 8}
}

func TestTextSinkRendersCaret(t *testing.T) {
	var buf bytes.Buffer
	s := diag.NewTextSink(&buf)
	note := diag.LineNote{Bytes: []byte("    int 'x;"), CaretColumn: 9, CaretLength: 1}
	s.Diagnose(diag.Error, examplePos(), note, "missing terminating ' character")

	want := "in.c:3:8: error: missing terminating ' character\n" +
		"|    int 'x;\n" +
		"|" + "        " + "^\n" // 8 cells: "    int " before the caret
	assert.Equal(t, want, buf.String())
}

func TestTextSinkNoLineNote(t *testing.T) {
	var buf bytes.Buffer
	s := diag.NewTextSink(&buf)
	s.Diagnose(diag.Warning, examplePos(), diag.LineNote{}, "unknown escape sequence")
	assert.Equal(t, "in.c:3:8: warning: unknown escape sequence\n", buf.String())
}

func TestJSONSinkRendersOneRecordPerLine(t *testing.T) {
	var buf bytes.Buffer
	s := diag.NewJSONSink(&buf)
	note := diag.LineNote{Bytes: []byte("int x"), CaretColumn: 1, CaretLength: 3}
	s.Diagnose(diag.Error, examplePos(), note, "undeclared identifier %s", "x")
	s.Diagnose(diag.Warning, examplePos(), note, "unused variable")

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), `"severity":"error"`)
	assert.Contains(t, string(lines[0]), `"message":"undeclared identifier x"`)
	assert.Contains(t, string(lines[1]), `"severity":"warning"`)
}

func TestCountingSink(t *testing.T) {
	var buf bytes.Buffer
	c := diag.NewCounting(diag.NewTextSink(&buf))
	c.Diagnose(diag.Error, examplePos(), diag.LineNote{}, "e1")
	c.Diagnose(diag.Error, examplePos(), diag.LineNote{}, "e2")
	c.Diagnose(diag.Warning, examplePos(), diag.LineNote{}, "w1")

	assert.Equal(t, 2, c.Errors)
	assert.Equal(t, 1, c.Warnings)
	assert.Equal(t, 3, len(bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))))
}

func TestCountingSinkNilInner(t *testing.T) {
	c := diag.NewCounting(nil)
	assert.NotPanics(t, func() {
		c.Diagnose(diag.Error, examplePos(), diag.LineNote{}, "e1")
	})
	assert.Equal(t, 1, c.Errors)
}
