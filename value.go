package teststate

import (
	"fmt"
	"reflect"
	"strconv"
	"unsafe"
)

const null Fragment = "null"

// pointerDigits is the number of hex digits in a rendered address: two per
// byte of a pointer on the target platform.
const pointerDigits = int(2 * unsafe.Sizeof(uintptr(0)))

// Numeric is the set of types [Number] accepts.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

func rendered(s string) Value { return Value{text: s, set: true} }

// Null returns the value rendered as null.
func Null() Value { return rendered(string(null)) }

// Bool renders b as true or false.
func Bool(b bool) Value { return rendered(strconv.FormatBool(b)) }

// String renders s in double quotes. The text between the quotes is s
// verbatim: embedded quotes and control characters are not escaped.
func String(s string) Value { return rendered(quote(s)) }

// Bytes renders b as a string.
func Bytes(b []byte) Value { return String(string(b)) }

// Number renders n in Go's default textual form. Named numeric types with a
// String method render through it.
func Number[N Numeric](n N) Value { return rendered(fmt.Sprint(n)) }

// Address renders a as a zero-padded lowercase hex address. Zero is rendered
// as an address, not as null.
func Address(a uintptr) Value {
	return rendered(fmt.Sprintf("0x%0*x", pointerDigits, a))
}

// Pointer renders p as an address, or null if p is nil.
func Pointer(p unsafe.Pointer) Value {
	if p == nil {
		return Null()
	}
	return Address(uintptr(p))
}

// Ptr renders the address held by p, or null if p is nil.
func Ptr[T any](p *T) Value {
	return Pointer(unsafe.Pointer(p))
}

// Text renders s through its String method, unquoted. A nil s renders as
// null.
func Text(s fmt.Stringer) Value {
	if s == nil || isNil(reflect.ValueOf(s)) {
		return Null()
	}
	return rendered(s.String())
}

// FromFragment wraps text that is already rendered. The text is used as is.
func FromFragment(f Fragment) Value { return rendered(string(f)) }

// Of renders v by its dynamic type. Rules are tried in order:
//
//   - a [Value] is returned unchanged and a [Fragment] is wrapped as is
//   - nil, and nil pointers, channels and funcs render as null
//   - a [Valuer] renders through StateValue
//   - other pointers, channels and funcs render as addresses, even when
//     they implement error or [fmt.Stringer]; use [Text] for those
//   - strings and byte slices render quoted
//   - bools render as true or false
//   - slices, arrays and maps implementing error or [fmt.Stringer] render
//     through that method
//   - slices and arrays render as arrays, each element through Of
//   - maps with string keys render as objects with keys in sorted order
//   - anything else renders with fmt's default formatting, which covers
//     numbers, [fmt.Stringer] and error
//
// Of panics with [ErrPropertyValue] if v is a [Property] or a pointer to
// one, and with [ErrPrefixValue] if v is a [Prefix]. Use [Object] or an
// [Output] for properties.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case Fragment:
		return FromFragment(x)
	case Property:
		panic(fmt.Errorf("%w: %q", ErrPropertyValue, x.name))
	case *Property:
		panic(fmt.Errorf("%w: %T", ErrPropertyValue, x))
	case Prefix:
		panic(fmt.Errorf("%w: %q", ErrPrefixValue, string(x)))
	}
	rv := reflect.ValueOf(v)
	if isNil(rv) {
		return Null()
	}
	if vr, ok := v.(Valuer); ok {
		return vr.StateValue()
	}
	return reflectValue(rv)
}

func reflectValue(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func:
		return Address(rv.Pointer())
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Slice, reflect.Array, reflect.Map:
		if text, ok := ownText(rv); ok {
			return rendered(text)
		}
	}
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Bytes(rv.Bytes())
		}
		return elements(rv)
	case reflect.Array:
		return elements(rv)
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return mapObject(rv)
		}
	}
	return rendered(fmt.Sprint(rv.Interface()))
}

// ownText returns the text of a value whose type renders itself.
func ownText(rv reflect.Value) (string, bool) {
	switch x := rv.Interface().(type) {
	case error:
		return x.Error(), true
	case fmt.Stringer:
		return x.String(), true
	}
	return "", false
}

func elements(rv reflect.Value) Value {
	values := make([]Value, rv.Len())
	for i := range values {
		values[i] = Of(rv.Index(i).Interface())
	}
	return Array(values...)
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
