package teststate

import (
	"errors"
	"log/slog"
)

// Sentinel errors for programmatic error handling.
var (
	ErrPropertyValue = errors.New("property used as value")
	ErrPrefixValue   = errors.New("prefix used as value")
)

// Fragment is text that has already been rendered. A Fragment is never
// quoted or re-rendered when it becomes a [Value].
type Fragment string

// String returns the fragment text.
func (f Fragment) String() string { return string(f) }

// Entry is anything an [Output] accepts as a line: a [Value] or a [Property].
type Entry interface {
	Fragment() Fragment
	entry()
}

// --- Optional Interfaces ---

// Valuer lets a type supply its own structured rendering. [Of] checks it
// before looking at the kind of the value.
type Valuer interface {
	StateValue() Value
}

// --- Value Types ---

// Value is a single rendered scalar, array or object. The zero Value
// renders as null.
type Value struct {
	text string
	set  bool
}

// Fragment returns the rendered text.
func (v Value) Fragment() Fragment {
	if !v.set {
		return null
	}
	return Fragment(v.text)
}

// String returns the rendered text.
func (v Value) String() string { return string(v.Fragment()) }

// LogValue implements [slog.LogValuer].
func (v Value) LogValue() slog.Value { return slog.StringValue(v.String()) }

func (v Value) entry() {}

// Property is a named [Value], rendered as "name": value.
type Property struct {
	name  string
	value Value
}

// Name returns the unquoted property name.
func (p Property) Name() string { return p.name }

// Value returns the property's value.
func (p Property) Value() Value { return p.value }

// Fragment returns the rendered text.
func (p Property) Fragment() Fragment {
	return Fragment(quote(p.name) + ": " + p.value.String())
}

// String returns the rendered text.
func (p Property) String() string { return string(p.Fragment()) }

// LogValue implements [slog.LogValuer].
func (p Property) LogValue() slog.Value { return slog.StringValue(p.String()) }

func (p Property) entry() {}
