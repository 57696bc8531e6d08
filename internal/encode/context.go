// Package encode holds the per-format encoder library. Every encoder emits
// the body of one fragment shader that samples the source image and packs
// the samples into the texture unit's byte layout.
package encode

import (
	"math"

	"github.com/gogpu/texconv/internal/emit"
	"github.com/gogpu/texconv/internal/swizzle"
)

// intensityWeights are the luma weights and the bias added once per output
// pixel, packed into one vec4 so the bias rides along in the alpha lane.
var intensityWeights = [4]float64{0.257, 0.504, 0.098, 0.0625}

// State is the generation-scoped coordination state.
type State struct {
	// IntensityDeclared is set once IntensityConst has been emitted.
	IntensityDeclared bool
	// SampleOffset counts the horizontal sample steps taken so far.
	SampleOffset int
}

// Context carries the writer and the state of one generation. It is owned
// by a single generation and must not be shared.
type Context struct {
	w     *emit.Writer
	state State
	reads int
}

// NewContext creates a context writing into w.
func NewContext(w *emit.Writer) *Context {
	return &Context{w: w}
}

// Writer returns the underlying writer.
func (c *Context) Writer() *emit.Writer {
	return c.w
}

// State returns a copy of the coordination state.
func (c *Context) State() State {
	return c.state
}

// Reads returns the number of texture reads emitted so far.
func (c *Context) Reads() int {
	return c.reads
}

// sampleColor emits one texture read at the current sample offset.
//
// The offset is folded into the coordinate as a constant multiple of the
// per-sample step instead of advancing sampleUv, which keeps each read
// independent and costs fewer ALU slots than a running coordinate.
func (c *Context) sampleColor(comp, dest string) {
	c.w.Line("%s = textureSampleLevel(%s, %s, %s + vec2<f32>(%s * (%s.stride.x / %s.stride.z), 0.0), 0.0).%s;",
		dest, swizzle.TextureVar, swizzle.SamplerVar, swizzle.CoordVar,
		emit.Int(c.state.SampleOffset), swizzle.ParamsVar, swizzle.ParamsVar, comp)
	c.reads++
}

// incrementSampleX moves the next read one sample to the right.
func (c *Context) incrementSampleX() {
	c.state.SampleOffset++
}

// colorToIntensity emits the luma dot product of src into dest. The bias in
// IntensityConst.a is left for the caller to add once per output pixel.
func (c *Context) colorToIntensity(src, dest string) {
	if !c.state.IntensityDeclared {
		c.w.Line("let IntensityConst = vec4<f32>(%s, %s, %s, %s);",
			emit.Float(intensityWeights[0]), emit.Float(intensityWeights[1]),
			emit.Float(intensityWeights[2]), emit.Float(intensityWeights[3]))
		c.state.IntensityDeclared = true
	}
	c.w.Line("%s = dot(IntensityConst.rgb, %s.rgb);", dest, src)
}

// toBitDepth emits the quantization of src to depth bits into dest.
func (c *Context) toBitDepth(depth int, src, dest string) {
	c.w.Line("%s = floor(%s * %s);", dest, src, emit.Float(BitDepthScale(depth)))
}

// end closes the entry point and resets the state.
func (c *Context) end() {
	c.w.Line("return %s;", swizzle.OutputVar)
	c.w.Dedent()
	c.w.Line("}")
	c.state = State{}
}

// BitDepthScale returns the multiplier that quantizes a normalized channel
// to depth bits: 255 / 2^(8-depth).
func BitDepthScale(depth int) float64 {
	return 255 / math.Pow(2, float64(8-depth))
}

// Quantize returns the integer a normalized channel value v encodes to at
// depth bits, matching the emitted floor(v * BitDepthScale(depth)).
func Quantize(v float64, depth int) int {
	return int(math.Floor(v * BitDepthScale(depth)))
}
