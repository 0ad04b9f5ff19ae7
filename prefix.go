package teststate

import "github.com/mattn/go-runewidth"

// markerWidth is the number of display columns between the brackets of a
// googletest marker, excluding the trailing space.
const markerWidth = 9

// Prefix is literal text written at the start of every [Output] line.
type Prefix string

// GoogleTest is the marker googletest uses for its own diagnostic lines,
// labelled STATE.
const GoogleTest Prefix = "[    STATE ] "

// String returns the prefix text.
func (p Prefix) String() string { return string(p) }

// GoogleTestMarker returns a prefix laid out like googletest's markers
// ("[ RUN      ]", "[       OK ]"): label right-aligned inside the brackets
// and followed by a space. Labels wider than the marker are kept whole.
//
//	GoogleTestMarker("STATE") == GoogleTest
func GoogleTestMarker(label string) Prefix {
	return Prefix("[" + runewidth.FillLeft(label, markerWidth) + " ] ")
}
