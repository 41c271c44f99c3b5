package diag

import (
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/ccfront/lexer/token"
)

// JSONSink renders each diagnostic as one line of JSON matching the
// structured record shape from spec.md §6
// ({severity,file,line,column,line_anchor,caret_column,caret_length,message}),
// using github.com/go-json-experiment/json the same way the example
// pack's wanf linter marshals its own lint records.
type JSONSink struct {
	w io.Writer
}

// NewJSONSink returns a JSONSink writing one Record per line to w.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{w: w}
}

func (s *JSONSink) Diagnose(sev Severity, pos token.Position, note LineNote, format string, args ...interface{}) {
	rec := newRecord(sev, pos, note, fmt.Sprintf(format, args...))
	// best effort: a diagnostic sink never aborts lexing (spec.md §4.5), so
	// a marshalling failure is swallowed rather than propagated.
	_ = json.MarshalWrite(s.w, rec, jsontext.Multiline(false))
	io.WriteString(s.w, "\n")
}
