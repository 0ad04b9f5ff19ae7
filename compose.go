package teststate

import (
	"reflect"
	"slices"
	"strings"
)

const separator = ", "

// Array renders values as [ v1, v2, ... ]. With no values it renders [].
func Array(values ...Value) Value {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return rendered(surround(strings.Join(parts, separator), "[", "]"))
}

// List renders a homogeneous slice as an array, each element through [Of].
func List[T any](elems []T) Value {
	values := make([]Value, len(elems))
	for i, e := range elems {
		values[i] = Of(e)
	}
	return Array(values...)
}

// Object renders props as { "n1": v1, "n2": v2, ... } in the order given.
// With no properties it renders {}.
func Object(props ...Property) Value {
	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = p.String()
	}
	return rendered(surround(strings.Join(parts, separator), "{", "}"))
}

// Map renders m as an object with keys in sorted order, each value through
// [Of].
func Map[V any](m map[string]V) Value {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	props := make([]Property, len(keys))
	for i, k := range keys {
		props[i] = Prop(k, Of(m[k]))
	}
	return Object(props...)
}

func mapObject(rv reflect.Value) Value {
	keys := rv.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return strings.Compare(a.String(), b.String())
	})
	props := make([]Property, len(keys))
	for i, k := range keys {
		props[i] = Prop(k.String(), Of(rv.MapIndex(k).Interface()))
	}
	return Object(props...)
}

func quote(s string) string {
	return `"` + s + `"`
}

// surround brackets text, padding it with a space on each side unless it is
// empty.
func surround(text, left, right string) string {
	if text == "" {
		return left + right
	}
	return left + " " + text + " " + right
}
