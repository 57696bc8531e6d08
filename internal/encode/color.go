package encode

import "github.com/gogpu/texconv/internal/emit"

// alphaOpaque is 224/255, the largest alpha three bits can hold. Texels
// above it are stored without alpha at five bits per channel.
const alphaOpaque = 0.878

func writeRGB565(c *Context) {
	w := c.w
	c.sampleColor("rgb", "let texSample0")
	c.incrementSampleX()
	c.sampleColor("rgb", "let texSample1")
	w.Line("let texRs = vec2<f32>(texSample0.r, texSample1.r);")
	w.Line("let texGs = vec2<f32>(texSample0.g, texSample1.g);")
	w.Line("let texBs = vec2<f32>(texSample0.b, texSample1.b);")

	c.toBitDepth(6, "texGs", "let gInt")
	w.Line("let gUpper = floor(gInt / 8.0);")
	w.Line("let gLower = gInt - gUpper * 8.0;")

	c.toBitDepth(5, "texRs", "var hi")
	w.Line("hi = hi * 8.0 + gUpper;")
	c.toBitDepth(5, "texBs", "var lo")
	w.Line("lo = lo + gLower * 32.0;")

	w.Line("ocol0 = vec4<f32>(hi.y, lo.x, hi.x, lo.y);")
	w.Line("ocol0 = ocol0 / 255.0;")
}

// writeRGB5A3Texel packs the current texSample into lanes hi and lo,
// choosing the opaque or translucent encoding per texel.
func writeRGB5A3Texel(c *Context, hi, lo string) {
	w := c.w
	w.Line("if (texSample.a > %s) {", emit.Float(alphaOpaque))
	w.Indent()
	c.toBitDepth(5, "texSample.g", "color0")
	w.Line("gUpper = floor(color0 / 8.0);")
	w.Line("gLower = color0 - gUpper * 8.0;")
	c.toBitDepth(5, "texSample.r", "ocol0."+hi)
	w.Line("ocol0.%s = ocol0.%s * 4.0 + gUpper + 128.0;", hi, hi)
	c.toBitDepth(5, "texSample.b", "ocol0."+lo)
	w.Line("ocol0.%s = ocol0.%s + gLower * 32.0;", lo, lo)
	w.Dedent()
	w.Line("} else {")
	w.Indent()
	c.toBitDepth(4, "texSample.r", "ocol0."+hi)
	c.toBitDepth(4, "texSample.b", "ocol0."+lo)
	c.toBitDepth(3, "texSample.a", "color0")
	w.Line("ocol0.%s = ocol0.%s + color0 * 16.0;", hi, hi)
	c.toBitDepth(4, "texSample.g", "color0")
	w.Line("ocol0.%s = ocol0.%s + color0 * 16.0;", lo, lo)
	w.Dedent()
	w.Line("}")
}

func writeRGB5A3(c *Context) {
	w := c.w
	w.Line("var texSample: vec4<f32>;")
	w.Line("var color0: f32;")
	w.Line("var gUpper: f32;")
	w.Line("var gLower: f32;")

	c.sampleColor("rgba", "texSample")
	writeRGB5A3Texel(c, "b", "g")
	c.incrementSampleX()
	c.sampleColor("rgba", "texSample")
	writeRGB5A3Texel(c, "r", "a")

	w.Line("ocol0 = ocol0 / 255.0;")
}

// writeRGBA4443 always uses the translucent RGB5A3 encoding, alpha first.
func writeRGBA4443(c *Context) {
	w := c.w
	w.Line("var texSample: vec4<f32>;")
	w.Line("var color0: vec4<f32>;")
	w.Line("var color1: vec4<f32>;")

	c.sampleColor("rgba", "texSample")
	c.toBitDepth(3, "texSample.a", "color0.b")
	c.toBitDepth(4, "texSample.r", "color1.b")
	c.toBitDepth(4, "texSample.g", "color0.g")
	c.toBitDepth(4, "texSample.b", "color1.g")
	c.incrementSampleX()

	c.sampleColor("rgba", "texSample")
	c.toBitDepth(3, "texSample.a", "color0.r")
	c.toBitDepth(4, "texSample.r", "color1.r")
	c.toBitDepth(4, "texSample.g", "color0.a")
	c.toBitDepth(4, "texSample.b", "color1.a")

	w.Line("ocol0 = (color0 * 16.0 + color1) / 255.0;")
}

// writeRGBA8 emits both cache-line halves of a 32-bit tile and blends them
// with weights derived from the tile column parity: cl1 is 1 on odd tile
// columns, which hold green and blue, and 0 on even ones holding alpha and
// red.
func writeRGBA8(c *Context) {
	w := c.w
	w.Line("let cl1 = xb - (halfxb * 2.0);")
	w.Line("let cl0 = 1.0 - cl1;")
	w.Line("var texSample: vec4<f32>;")
	w.Line("var color0: vec4<f32>;")
	w.Line("var color1: vec4<f32>;")

	c.sampleColor("rgba", "texSample")
	w.Line("color0.b = texSample.a;")
	w.Line("color0.g = texSample.r;")
	w.Line("color1.b = texSample.g;")
	w.Line("color1.g = texSample.b;")
	c.incrementSampleX()

	c.sampleColor("rgba", "texSample")
	w.Line("color0.r = texSample.a;")
	w.Line("color0.a = texSample.r;")
	w.Line("color1.r = texSample.g;")
	w.Line("color1.a = texSample.b;")

	w.Line("ocol0 = (cl0 * color0) + (cl1 * color1);")
}
