package encode

// writeC4 returns an encoder packing eight single-channel samples into two
// nibbles per lane.
func writeC4(comp string) func(*Context) {
	return func(c *Context) {
		w := c.w
		w.Line("var color0: vec4<f32>;")
		w.Line("var color1: vec4<f32>;")
		for i, lane := range lanes {
			if i > 0 {
				c.incrementSampleX()
			}
			c.sampleColor(comp, "color0."+lane)
			c.incrementSampleX()
			c.sampleColor(comp, "color1."+lane)
		}
		c.toBitDepth(4, "color0", "color0")
		c.toBitDepth(4, "color1", "color1")
		w.Line("ocol0 = (color0 * 16.0 + color1) / 255.0;")
	}
}

// writeC8 returns an encoder copying four single-channel samples, one per
// lane.
func writeC8(comp string) func(*Context) {
	return func(c *Context) {
		for i, lane := range lanes {
			if i > 0 {
				c.incrementSampleX()
			}
			c.sampleColor(comp, "ocol0."+lane)
		}
	}
}

// writeCC4 returns an encoder for two-channel samples quantized to four
// bits: the first channel goes to the high nibble.
func writeCC4(comp string) func(*Context) {
	return func(c *Context) {
		w := c.w
		w.Line("var texSample: vec2<f32>;")
		w.Line("var color0: vec4<f32>;")
		w.Line("var color1: vec4<f32>;")
		for i, lane := range lanes {
			if i > 0 {
				c.incrementSampleX()
			}
			c.sampleColor(comp, "texSample")
			w.Line("color0.%s = texSample.x;", lane)
			w.Line("color1.%s = texSample.y;", lane)
		}
		c.toBitDepth(4, "color0", "color0")
		c.toBitDepth(4, "color1", "color1")
		w.Line("ocol0 = (color0 * 16.0 + color1) / 255.0;")
	}
}

// writeCC8 returns an encoder copying two two-channel samples.
func writeCC8(comp string) func(*Context) {
	return func(c *Context) {
		w := c.w
		w.Line("var texSample: vec2<f32>;")

		c.sampleColor(comp, "texSample")
		w.Line("ocol0.b = texSample.x;")
		w.Line("ocol0.g = texSample.y;")
		c.incrementSampleX()

		c.sampleColor(comp, "texSample")
		w.Line("ocol0.r = texSample.x;")
		w.Line("ocol0.a = texSample.y;")
	}
}
