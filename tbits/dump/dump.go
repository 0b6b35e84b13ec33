// Package dump emits labeled checkpoints of intermediate sponge values,
// the debugging aid behind the protocol's Dump command. Values never leave
// the process in full: spans are reported as a length and a short BLAKE2b
// fingerprint, which is enough to diff two traces without writing secret
// material into logs.
package dump

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/crypto/blake2b"
	"gopkg.in/op/go-logging.v1"

	"github.com/calebren/tbits/tbits"
)

// Field is one named value of a checkpoint.
type Field struct {
	Name  string
	Value string
}

// IntField renders an integer field.
func IntField(name string, v int) Field {
	return Field{Name: name, Value: strconv.Itoa(v)}
}

// StringField renders a string field verbatim.
func StringField(name, v string) Field {
	return Field{Name: name, Value: v}
}

// SpanField fingerprints a span: its length, its offset in storage and the
// first 128 bits of a BLAKE2b-256 digest over its rendered symbols.
func SpanField[W, T comparable](name string, s tbits.Span[W, T]) Field {
	var b []byte
	for _, t := range s.ToTbits() {
		b = fmt.Appendf(b, "%v", t)
	}
	d := blake2b.Sum256(b)
	v := fmt.Sprintf("len=%d off=%d digest=%x", s.Len(), s.Offset(), d[:16])
	return Field{Name: name, Value: v}
}

// Sink receives checkpoints.
type Sink interface {
	Dump(checkpoint string, fields ...Field)
}

// Discard is the Sink that drops every checkpoint.
var Discard Sink = discard{}

type discard struct{}

func (discard) Dump(string, ...Field) {}

// NewWriter returns a Sink that writes one line per checkpoint to w.
func NewWriter(w io.Writer) Sink {
	return &writer{w: w}
}

type writer struct {
	w io.Writer
}

func (s *writer) Dump(checkpoint string, fields ...Field) {
	fmt.Fprintf(s.w, "dump %s%s\n", checkpoint, formatFields(fields))
}

// NewLogSink returns a Sink that emits checkpoints at debug level through
// l. Build a logger with NewLogger or bring your own.
func NewLogSink(l *logging.Logger) Sink {
	return &logSink{l: l}
}

type logSink struct {
	l *logging.Logger
}

func (s *logSink) Dump(checkpoint string, fields ...Field) {
	s.l.Debugf("dump %s%s", checkpoint, formatFields(fields))
}

func formatFields(fields []Field) string {
	var b []byte
	for _, f := range fields {
		b = append(b, ' ')
		b = append(b, f.Name...)
		b = append(b, '=')
		b = append(b, f.Value...)
	}
	return string(b)
}
