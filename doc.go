// Package teststate renders diagnostic state for test failure messages.
//
// State is built from values and named properties and collected in an
// [Output], one entry per line. The rendering is deterministic and meant to
// be compared byte for byte:
//
//	out := teststate.WithGoogleTestPrefix()
//	out.Add(4711, "name")
//	out.Append(teststate.Prop("position", teststate.Object(
//		teststate.PropOf("x", 1),
//		teststate.PropOf("y", 2),
//	)))
//	t.Errorf("unexpected state\n%s", out)
//
// prints
//
//	[    STATE ] 4711
//	[    STATE ] "name"
//	[    STATE ] "position": { "x": 1, "y": 2 }
//
// # Values
//
// A [Value] is built with a constructor per kind or with [Of], which picks
// the rendering from the dynamic type:
//
//   - [Bool] → true / false
//   - [Null], nil and nil pointers → null
//   - [Pointer], [Ptr], [Address] → 0x and the address in lowercase hex,
//     zero-padded to two digits per pointer byte
//   - [String], [Bytes] → the text in double quotes, unescaped
//   - [Number], [Text] and anything else → Go's default textual form
//   - [Array], [List], [Seq] → [ e1, e2 ] or []
//   - [Object], [Map] → { "n1": v1, "n2": v2 } or {}
//
// Arrays and objects nest to any depth. Implement [Valuer] to give a type a
// structured rendering of its own. Text that is already rendered is wrapped
// with [FromFragment] and never quoted again.
//
// # Properties
//
// A [Property] pairs a name with a value and renders as "name": value. A
// property is not a value: [Array] and [Object] accept only the types that
// belong in them, and [Of] panics with [ErrPropertyValue] when given one.
//
// # Output
//
// An [Output] starts every line with its [Prefix]. [GoogleTest] reproduces
// googletest's "[    STATE ] " marker and [GoogleTestMarker] builds others
// in the same layout. Read the text with String, Lines or WriteTo.
package teststate
