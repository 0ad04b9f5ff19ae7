package teststate

import (
	"io"
	"log/slog"
	"strings"
)

// Output accumulates entries, one per line, each line starting with the
// output's prefix. The zero Output is empty and has no prefix. An Output
// must not be copied after the first append; use [Output.Clone].
type Output struct {
	prefix Prefix
	buf    strings.Builder
}

// New returns an output without a prefix holding entries.
func New(entries ...Entry) *Output {
	return WithPrefix("", entries...)
}

// WithPrefix returns an output that starts every line with prefix, holding
// entries.
func WithPrefix(prefix Prefix, entries ...Entry) *Output {
	o := &Output{prefix: prefix}
	return o.Append(entries...)
}

// WithGoogleTestPrefix returns an output using the [GoogleTest] prefix,
// holding entries.
func WithGoogleTestPrefix(entries ...Entry) *Output {
	return WithPrefix(GoogleTest, entries...)
}

// Append adds each entry on a line of its own and returns o.
func (o *Output) Append(entries ...Entry) *Output {
	for _, e := range entries {
		o.line(e.Fragment())
	}
	return o
}

// Add adds each value on a line of its own and returns o. Values and
// properties are added as they are; anything else is rendered through [Of].
func (o *Output) Add(values ...any) *Output {
	for _, v := range values {
		if e, ok := v.(Entry); ok {
			o.line(e.Fragment())
			continue
		}
		o.line(Of(v).Fragment())
	}
	return o
}

func (o *Output) line(f Fragment) {
	if o.buf.Len() > 0 {
		o.buf.WriteByte('\n')
	}
	o.buf.WriteString(string(o.prefix))
	o.buf.WriteString(string(f))
}

// Prefix returns the text written at the start of each line.
func (o *Output) Prefix() Prefix { return o.prefix }

// Empty reports whether nothing has been appended yet.
func (o *Output) Empty() bool { return o.buf.Len() == 0 }

// Len returns the number of lines. A fragment containing newlines counts as
// several lines.
func (o *Output) Len() int {
	if o.buf.Len() == 0 {
		return 0
	}
	return strings.Count(o.buf.String(), "\n") + 1
}

// Lines splits the accumulated text on newlines. Prefixes are included.
func (o *Output) Lines() []string {
	if o.buf.Len() == 0 {
		return nil
	}
	return strings.Split(o.buf.String(), "\n")
}

// String returns all lines joined by newlines, without a trailing newline.
func (o *Output) String() string { return o.buf.String() }

// WriteTo writes the accumulated text to w.
func (o *Output) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, o.buf.String())
	return int64(n), err
}

// Clone returns an independent copy of o.
func (o *Output) Clone() *Output {
	c := &Output{prefix: o.prefix}
	c.buf.WriteString(o.buf.String())
	return c
}

// LogValue implements [slog.LogValuer].
func (o *Output) LogValue() slog.Value { return slog.StringValue(o.buf.String()) }
