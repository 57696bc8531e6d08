// Package swizzle maps linear destination pixels onto the tiled source
// texels they encode.
//
// The mapping exists twice: as pure float64 functions (Texel, Texel32, Map,
// Map32) and as WGSL emitted by WritePrologue and WritePrologue32. Both
// perform the same operations in the same order, so the Go side can be used
// to reason about what a generated shader samples.
package swizzle

import (
	"math"

	"github.com/gogpu/texconv/format"
)

// Params are the eight scalar shader parameters in upload order.
type Params struct {
	WidthStride  float64 // source texels per destination texel, x
	HeightStride float64 // source texels per destination texel, y
	BufferWidth  float64 // source buffer width in texels
	BufferHeight float64 // source buffer height in texels
	Width        float64 // destination row length in source texels
	HeightM1     float64 // destination height minus one
	OffsetX      float64 // source rectangle origin, x
	OffsetY      float64 // source rectangle origin, y
}

// Bias is added to every sample position before normalization. It aligns
// sampling to texel centers on the hardware this layout targets.
var Bias = [2]float64{0, 1}

// Steps holds the intermediate values of one address computation. The
// 32-bit encoders derive their cache-line weights from XB and HalfXB.
type Steps struct {
	XL, XIB    float64
	YL, YB     float64
	YOff, XP   float64
	XEL, XB    float64
	XOff       float64
	X2, HalfXB float64
}

// Texel returns the source texel sampled first for destination pixel (x, y)
// under the standard layout. width is the destination row length in source
// texels (Params.Width).
func Texel(x, y float64, g format.Geometry, width float64) (sx, sy float64, s Steps) {
	bw, bh := float64(g.TileWidth), float64(g.TileHeight)
	ux := math.Floor(x) * float64(g.Samples)
	uy := math.Floor(y)

	s.XL = math.Floor(ux / bw)
	s.XIB = ux - s.XL*bw
	s.YL = math.Floor(uy / bh)
	s.YB = s.YL * bh
	s.YOff = uy - s.YB
	s.XP = ux + s.YOff*width
	s.XEL = math.Floor(s.XP / bw)
	s.XB = math.Floor(s.XEL / bh)
	s.XOff = s.XEL - s.XB*bh

	return s.XIB + s.XB*bw, s.YB + s.XOff, s
}

// Texel32 is Texel for 32-bit formats, where every two destination texels
// share one tile column and HalfXB selects the cache-line half.
func Texel32(x, y float64, g format.Geometry, width float64) (sx, sy float64, s Steps) {
	bw, bh := float64(g.TileWidth), float64(g.TileHeight)
	ux := math.Floor(x)
	uy := math.Floor(y)

	s.YL = math.Floor(uy / bh)
	s.YB = s.YL * bh
	s.YOff = uy - s.YB
	s.XP = ux + s.YOff*width
	s.XEL = math.Floor(s.XP / 2)
	s.XB = math.Floor(s.XEL / bh)
	s.XOff = s.XEL - s.XB*bh
	s.X2 = ux * 2
	s.XL = math.Floor(s.X2 / bw)
	s.XIB = s.X2 - s.XL*bw
	s.HalfXB = math.Floor(s.XB / 2)

	return s.XIB + s.HalfXB*bw, s.YB + s.XOff, s
}

// Normalize scales a source texel by the strides, moves it to the source
// origin, applies Bias and divides by the buffer size.
func Normalize(sx, sy float64, p Params) (u, v float64) {
	u = (sx*p.WidthStride + p.OffsetX + Bias[0]) / p.BufferWidth
	v = (sy*p.HeightStride + p.OffsetY + Bias[1]) / p.BufferHeight
	return u, v
}

// Map returns the normalized coordinate of the first sample for destination
// pixel (x, y).
func Map(x, y float64, g format.Geometry, p Params) (u, v float64) {
	sx, sy, _ := Texel(x, y, g, p.Width)
	return Normalize(sx, sy, p)
}

// Map32 is Map for 32-bit formats.
func Map32(x, y float64, g format.Geometry, p Params) (u, v float64) {
	sx, sy, _ := Texel32(x, y, g, p.Width)
	return Normalize(sx, sy, p)
}

// SampleStep returns the horizontal distance, in normalized units, between
// the first sample and sample k.
func SampleStep(k int, p Params) float64 {
	return float64(k) * (p.WidthStride / p.BufferWidth)
}

// CacheLineWeight returns the weight of the second cache-line half used by
// the 32-bit encoders: 0 for even tile columns and 1 for odd ones.
func CacheLineWeight(s Steps) float64 {
	return s.XB - s.HalfXB*2
}
