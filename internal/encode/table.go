package encode

import (
	"fmt"

	"github.com/gogpu/texconv/format"
	"github.com/gogpu/texconv/internal/swizzle"
)

// Variant selects between alternative encoders of the same format.
type Variant uint8

const (
	// VariantDefault is the encoder the format normally uses.
	VariantDefault Variant = iota
	// VariantTranslucent encodes RGB5A3 with the four-bit-alpha layout for
	// every texel (RGBA4443), for sources known to carry alpha throughout.
	VariantTranslucent
)

// Entry is one row of the dispatch table.
type Entry struct {
	Format   format.TextureFormat
	Name     string
	Geometry format.Geometry
	// Reads is the number of texture reads per output pixel. It equals
	// Geometry.Samples except for 32-bit formats, which read both
	// cache-line halves of a single sample.
	Reads int
	// Wide selects the 32-bit address layout.
	Wide bool

	body func(*Context)
}

type encoder struct {
	name string
	wide bool
	body func(*Context)
}

var table = map[format.TextureFormat]encoder{
	format.I4:     {"I4", false, writeI4},
	format.I8:     {"I8", false, writeI8},
	format.IA4:    {"IA4", false, writeIA4},
	format.IA8:    {"IA8", false, writeIA8},
	format.RGB565: {"RGB565", false, writeRGB565},
	format.RGB5A3: {"RGB5A3", false, writeRGB5A3},
	format.RGBA8:  {"RGBA8", true, writeRGBA8},
	format.R4:     {"C4(r)", false, writeC4("r")},
	format.RA4:    {"CC4(ar)", false, writeCC4("ar")},
	format.RA8:    {"CC8(ar)", false, writeCC8("ar")},
	format.A8:     {"C8(a)", false, writeC8("a")},
	format.R8:     {"C8(r)", false, writeC8("r")},
	format.G8:     {"C8(g)", false, writeC8("g")},
	format.B8:     {"C8(b)", false, writeC8("b")},
	format.RG8:    {"CC8(rg)", false, writeCC8("rg")},
	format.GB8:    {"CC8(gb)", false, writeCC8("gb")},
	format.Z8:     {"C8(b)", false, writeC8("b")},
	format.Z16:    {"Z16", false, writeZ16},
	format.Z24X8:  {"Z24", true, writeZ24},
	format.Z4:     {"C4(b)", false, writeC4("b")},
	format.Z8M:    {"Z8(256)", false, writeZ8(depthMiddleByte)},
	format.Z8L:    {"Z8(65536)", false, writeZ8(depthLowByte)},
	format.Z16L:   {"Z16L", false, writeZ16L},
}

var rgba4443 = encoder{"RGBA4443", false, writeRGBA4443}

// Lookup returns the encoder for f. The second result is false when f has
// no encoder or no geometry.
func Lookup(f format.TextureFormat, v Variant) (Entry, bool) {
	enc, ok := table[f]
	if !ok {
		return Entry{}, false
	}
	if f == format.RGB5A3 && v == VariantTranslucent {
		enc = rgba4443
	}
	g, ok := format.GeometryOf(f)
	if !ok {
		return Entry{}, false
	}
	reads := g.Samples
	if enc.wide {
		reads = 2 * g.Samples
	}
	return Entry{
		Format:   f,
		Name:     enc.name,
		Geometry: g,
		Reads:    reads,
		Wide:     enc.wide,
		body:     enc.body,
	}, true
}

// Encode emits the complete shader for e into c: the address prologue, the
// encoder body and the closing of the entry point. The context state is
// back at its zero value afterwards.
func (e Entry) Encode(c *Context) error {
	start := c.reads
	if e.Wide {
		swizzle.WritePrologue32(c.w, e.Geometry)
	} else {
		swizzle.WritePrologue(c.w, e.Geometry)
	}
	e.body(c)
	c.end()

	if n := c.reads - start; n != e.Reads {
		return fmt.Errorf("encode: %s emitted %d texture reads, want %d", e.Name, n, e.Reads)
	}
	return nil
}
