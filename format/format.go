// Package format enumerates the texture unit's copy formats and the tile
// geometry each of them is stored in.
//
// Values match the hardware encoding: the low nibble selects the base
// format, bit 4 marks depth sources and bit 5 marks copy-only formats.
package format

import (
	"fmt"
	"slices"
	"strings"
)

// TextureFormat identifies a packed texture layout.
type TextureFormat uint32

const (
	depthFlag = 0x10
	copyFlag  = 0x20
)

// Texture formats.
const (
	I4     TextureFormat = 0x0
	I8     TextureFormat = 0x1
	IA4    TextureFormat = 0x2
	IA8    TextureFormat = 0x3
	RGB565 TextureFormat = 0x4
	RGB5A3 TextureFormat = 0x5
	RGBA8  TextureFormat = 0x6

	Z8    TextureFormat = 0x1 | depthFlag
	Z16   TextureFormat = 0x3 | depthFlag
	Z24X8 TextureFormat = 0x6 | depthFlag
)

// Copy-only formats.
const (
	R4  TextureFormat = 0x0 | copyFlag
	RA4 TextureFormat = 0x2 | copyFlag
	RA8 TextureFormat = 0x3 | copyFlag
	A8  TextureFormat = 0x7 | copyFlag
	R8  TextureFormat = 0x8 | copyFlag
	G8  TextureFormat = 0x9 | copyFlag
	B8  TextureFormat = 0xA | copyFlag
	RG8 TextureFormat = 0xB | copyFlag
	GB8 TextureFormat = 0xC | copyFlag

	Z4   TextureFormat = 0x0 | depthFlag | copyFlag
	Z8M  TextureFormat = 0x9 | depthFlag | copyFlag
	Z8L  TextureFormat = 0xA | depthFlag | copyFlag
	Z16L TextureFormat = 0xC | depthFlag | copyFlag
)

var names = map[TextureFormat]string{
	I4:     "I4",
	I8:     "I8",
	IA4:    "IA4",
	IA8:    "IA8",
	RGB565: "RGB565",
	RGB5A3: "RGB5A3",
	RGBA8:  "RGBA8",
	Z8:     "Z8",
	Z16:    "Z16",
	Z24X8:  "Z24X8",
	R4:     "R4",
	RA4:    "RA4",
	RA8:    "RA8",
	A8:     "A8",
	R8:     "R8",
	G8:     "G8",
	B8:     "B8",
	RG8:    "RG8",
	GB8:    "GB8",
	Z4:     "Z4",
	Z8M:    "Z8M",
	Z8L:    "Z8L",
	Z16L:   "Z16L",
}

// String returns the format name, or TextureFormat(0x..) for unknown values.
func (f TextureFormat) String() string {
	if name, ok := names[f]; ok {
		return name
	}
	return fmt.Sprintf("TextureFormat(0x%x)", uint32(f))
}

// Valid reports whether f is one of the supported formats.
func (f TextureFormat) Valid() bool {
	_, ok := names[f]
	return ok
}

// IsDepth reports whether f is encoded from the depth buffer.
func (f TextureFormat) IsDepth() bool {
	return f.Valid() && f&depthFlag != 0
}

// IsCopy reports whether f only exists as a copy destination.
func (f TextureFormat) IsCopy() bool {
	return f.Valid() && f&copyFlag != 0
}

// Is32Bit reports whether f stores 32 bits per texel. Such formats keep
// each tile in two interleaved cache-line halves.
func (f TextureFormat) Is32Bit() bool {
	return f == RGBA8 || f == Z24X8
}

// All returns every supported format in ascending numeric order.
func All() []TextureFormat {
	all := make([]TextureFormat, 0, len(names))
	for f := range names {
		all = append(all, f)
	}
	slices.Sort(all)
	return all
}

// Parse looks up a format by name, ignoring case.
func Parse(name string) (TextureFormat, error) {
	for f, n := range names {
		if strings.EqualFold(n, name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("format: unknown texture format %q", name)
}
