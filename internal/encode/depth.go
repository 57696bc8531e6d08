package encode

import (
	"fmt"

	"github.com/gogpu/texconv/internal/emit"
)

// depthScale is the largest 24-bit depth value.
const depthScale = 16777215

// Byte selectors for the 8-bit depth copies: Z8M keeps the middle byte of
// the 24-bit value, Z8L the low byte.
const (
	depthMiddleByte = 256
	depthLowByte    = 65536
)

// writeZ8 returns an encoder extracting one byte of depth per lane with
// fract(depth * multiplier).
func writeZ8(multiplier float64) func(*Context) {
	return func(c *Context) {
		w := c.w
		w.Line("var depth: f32;")
		for i, lane := range lanes {
			if i > 0 {
				c.incrementSampleX()
			}
			c.sampleColor("b", "depth")
			w.Line("ocol0.%s = fract(depth * %s);", lane, emit.Float(multiplier))
		}
	}
}

// writeExpandDepth emits the big-endian byte split of depth into expanded.
// With low set the remainder is kept in expanded.b.
func writeExpandDepth(c *Context, depth, expanded string, low bool) {
	w := c.w
	w.Line("%s *= %s;", depth, emit.Float(depthScale))
	w.Line("%s.r = floor(%s / (256.0 * 256.0));", expanded, depth)
	w.Line("%s -= %s.r * 256.0 * 256.0;", depth, expanded)
	w.Line("%s.g = floor(%s / 256.0);", expanded, depth)
	if low {
		w.Line("%s -= %s.g * 256.0;", depth, expanded)
		w.Line("%s.b = %s;", expanded, depth)
	}
}

// writeZ16 stores the upper 16 bits of depth, byte order reversed.
func writeZ16(c *Context) {
	w := c.w
	w.Line("var depth: f32;")
	w.Line("var expanded: vec3<f32>;")

	c.sampleColor("b", "depth")
	writeExpandDepth(c, "depth", "expanded", false)
	w.Line("ocol0.b = expanded.g / 255.0;")
	w.Line("ocol0.g = expanded.r / 255.0;")
	c.incrementSampleX()

	c.sampleColor("b", "depth")
	writeExpandDepth(c, "depth", "expanded", false)
	w.Line("ocol0.r = expanded.g / 255.0;")
	w.Line("ocol0.a = expanded.r / 255.0;")
}

// writeZ16L stores the lower 16 bits of depth, byte order reversed.
func writeZ16L(c *Context) {
	w := c.w
	w.Line("var depth: f32;")
	w.Line("var expanded: vec3<f32>;")

	c.sampleColor("b", "depth")
	writeExpandDepth(c, "depth", "expanded", true)
	w.Line("ocol0.b = expanded.b / 255.0;")
	w.Line("ocol0.g = expanded.g / 255.0;")
	c.incrementSampleX()

	c.sampleColor("b", "depth")
	writeExpandDepth(c, "depth", "expanded", true)
	w.Line("ocol0.r = expanded.b / 255.0;")
	w.Line("ocol0.a = expanded.g / 255.0;")
}

// writeZ24 stores a 24-bit depth tile in two cache-line halves: even tile
// columns carry the high byte of each sample with the unused lanes set to
// 1.0, odd ones carry the low 16 bits.
func writeZ24(c *Context) {
	w := c.w
	w.Line("let cl = xb - (halfxb * 2.0);")
	w.Line("var depth0: f32;")
	w.Line("var depth1: f32;")
	w.Line("var expanded0: vec3<f32>;")
	w.Line("var expanded1: vec3<f32>;")

	c.sampleColor("b", "depth0")
	c.incrementSampleX()
	c.sampleColor("b", "depth1")

	for i := 0; i < 2; i++ {
		writeExpandDepth(c, fmt.Sprintf("depth%d", i), fmt.Sprintf("expanded%d", i), true)
	}

	w.Line("if (cl > 0.5) {")
	w.Indent()
	w.Line("ocol0.b = expanded0.g / 255.0;")
	w.Line("ocol0.g = expanded0.b / 255.0;")
	w.Line("ocol0.r = expanded1.g / 255.0;")
	w.Line("ocol0.a = expanded1.b / 255.0;")
	w.Dedent()
	w.Line("} else {")
	w.Indent()
	w.Line("ocol0.b = 1.0;")
	w.Line("ocol0.g = expanded0.r / 255.0;")
	w.Line("ocol0.r = 1.0;")
	w.Line("ocol0.a = expanded1.r / 255.0;")
	w.Dedent()
	w.Line("}")
}
