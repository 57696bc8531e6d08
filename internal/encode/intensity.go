package encode

// lanes lists the output lanes in the order the packed bytes are stored.
var lanes = [4]string{"b", "g", "r", "a"}

func writeI8(c *Context) {
	w := c.w
	w.Line("var texSample: vec3<f32>;")
	for i, lane := range lanes {
		if i > 0 {
			c.incrementSampleX()
		}
		c.sampleColor("rgb", "texSample")
		c.colorToIntensity("texSample", "ocol0."+lane)
	}
	w.Line("ocol0 += IntensityConst.aaaa;")
}

func writeI4(c *Context) {
	w := c.w
	w.Line("var texSample: vec3<f32>;")
	w.Line("var color0: vec4<f32>;")
	w.Line("var color1: vec4<f32>;")
	for i, lane := range lanes {
		if i > 0 {
			c.incrementSampleX()
		}
		c.sampleColor("rgb", "texSample")
		c.colorToIntensity("texSample", "color0."+lane)
		c.incrementSampleX()
		c.sampleColor("rgb", "texSample")
		c.colorToIntensity("texSample", "color1."+lane)
	}
	w.Line("color0 += IntensityConst.aaaa;")
	w.Line("color1 += IntensityConst.aaaa;")
	c.toBitDepth(4, "color0", "color0")
	c.toBitDepth(4, "color1", "color1")
	w.Line("ocol0 = (color0 * 16.0 + color1) / 255.0;")
}

func writeIA8(c *Context) {
	w := c.w
	w.Line("var texSample: vec4<f32>;")

	c.sampleColor("rgba", "texSample")
	w.Line("ocol0.b = texSample.a;")
	c.colorToIntensity("texSample", "ocol0.g")
	c.incrementSampleX()

	c.sampleColor("rgba", "texSample")
	w.Line("ocol0.r = texSample.a;")
	c.colorToIntensity("texSample", "ocol0.a")

	w.Line("ocol0.g += IntensityConst.a;")
	w.Line("ocol0.a += IntensityConst.a;")
}

func writeIA4(c *Context) {
	w := c.w
	w.Line("var texSample: vec4<f32>;")
	w.Line("var color0: vec4<f32>;")
	w.Line("var color1: vec4<f32>;")
	for i, lane := range lanes {
		if i > 0 {
			c.incrementSampleX()
		}
		c.sampleColor("rgba", "texSample")
		w.Line("color0.%s = texSample.a;", lane)
		c.colorToIntensity("texSample", "color1."+lane)
	}
	w.Line("color1 += IntensityConst.aaaa;")
	c.toBitDepth(4, "color0", "color0")
	c.toBitDepth(4, "color1", "color1")
	w.Line("ocol0 = (color0 * 16.0 + color1) / 255.0;")
}
