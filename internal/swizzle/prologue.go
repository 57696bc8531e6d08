package swizzle

import (
	"github.com/gogpu/texconv/format"
	"github.com/gogpu/texconv/internal/emit"
)

// Names shared between the prologue, the encoders and the backend binding
// layout.
const (
	ParamsStruct = "EncodeParams"
	ParamsVar    = "params"
	TextureVar   = "srcTexture"
	SamplerVar   = "srcSampler"
	EntryPoint   = "fs_main"
	OutputVar    = "ocol0"
	CoordVar     = "sampleUv"

	ParamsBinding  = 0
	TextureBinding = 1
	SamplerBinding = 2
)

// writeHeader emits the resource declarations and opens the entry point.
//
// params.stride holds Params.WidthStride, HeightStride, BufferWidth and
// BufferHeight; params.rect holds Width, HeightM1, OffsetX and OffsetY.
func writeHeader(w *emit.Writer) {
	w.Line("struct %s {", ParamsStruct)
	w.Indent()
	w.Line("stride: vec4<f32>,")
	w.Line("rect: vec4<f32>,")
	w.Dedent()
	w.Line("}")
	w.Blank()
	w.Line("@group(0) @binding(%d) var<uniform> %s: %s;", ParamsBinding, ParamsVar, ParamsStruct)
	w.Line("@group(0) @binding(%d) var %s: texture_2d<f32>;", TextureBinding, TextureVar)
	w.Line("@group(0) @binding(%d) var %s: sampler;", SamplerBinding, SamplerVar)
	w.Blank()
	w.Line("@fragment")
	w.Line("fn %s(@location(0) uv0: vec2<f32>) -> @location(0) vec4<f32> {", EntryPoint)
	w.Indent()
	w.Line("var %s: vec4<f32>;", OutputVar)
	w.Line("var %s: vec2<f32>;", CoordVar)
}

// writeNormalize emits the tail shared by both layouts.
func writeNormalize(w *emit.Writer) {
	w.Line("%s = %s * %s.stride.xy;", CoordVar, CoordVar, ParamsVar)
	w.Line("%s = %s + %s.rect.zw;", CoordVar, CoordVar, ParamsVar)
	w.Line("%s = %s + vec2<f32>(%s, %s);", CoordVar, CoordVar, emit.Float(Bias[0]), emit.Float(Bias[1]))
	w.Line("%s = %s / %s.stride.zw;", CoordVar, CoordVar, ParamsVar)
}

// WritePrologue emits the declarations and the standard address computation
// for g, leaving the first sample position in sampleUv. The entry point is
// left open for the encoder body.
func WritePrologue(w *emit.Writer, g format.Geometry) {
	bw := emit.Int(g.TileWidth)
	bh := emit.Int(g.TileHeight)

	writeHeader(w)
	w.Line("var uv1: vec2<f32> = floor(uv0);")
	w.Line("uv1.x = uv1.x * %s;", emit.Int(g.Samples))
	w.Line("let xl = floor(uv1.x / %s);", bw)
	w.Line("let xib = uv1.x - (xl * %s);", bw)
	w.Line("let yl = floor(uv1.y / %s);", bh)
	w.Line("let yb = yl * %s;", bh)
	w.Line("let yoff = uv1.y - yb;")
	w.Line("let xp = uv1.x + (yoff * %s.rect.x);", ParamsVar)
	w.Line("let xel = floor(xp / %s);", bw)
	w.Line("let xb = floor(xel / %s);", bh)
	w.Line("let xoff = xel - (xb * %s);", bh)
	w.Line("%s.x = xib + (xb * %s);", CoordVar, bw)
	w.Line("%s.y = yb + xoff;", CoordVar)
	writeNormalize(w)
}

// WritePrologue32 emits the declarations and the 32-bit address computation.
// The lets xb and halfxb stay in scope for the encoder.
func WritePrologue32(w *emit.Writer, g format.Geometry) {
	bw := emit.Int(g.TileWidth)
	bh := emit.Int(g.TileHeight)

	writeHeader(w)
	w.Line("let uv1 = floor(uv0);")
	w.Line("let yl = floor(uv1.y / %s);", bh)
	w.Line("let yb = yl * %s;", bh)
	w.Line("let yoff = uv1.y - yb;")
	w.Line("let xp = uv1.x + (yoff * %s.rect.x);", ParamsVar)
	w.Line("let xel = floor(xp / 2.0);")
	w.Line("let xb = floor(xel / %s);", bh)
	w.Line("let xoff = xel - (xb * %s);", bh)
	w.Line("let x2 = uv1.x * 2.0;")
	w.Line("let xl = floor(x2 / %s);", bw)
	w.Line("let xib = x2 - (xl * %s);", bw)
	w.Line("let halfxb = floor(xb / 2.0);")
	w.Line("%s.x = xib + (halfxb * %s);", CoordVar, bw)
	w.Line("%s.y = yb + xoff;", CoordVar)
	writeNormalize(w)
}
