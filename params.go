package texconv

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/texconv/internal/swizzle"
)

// ParameterSlot is the uniform slot the encoding shaders read their
// parameters from. It matches the @binding of the EncodeParams uniform.
const ParameterSlot = swizzle.ParamsBinding

// ParameterSize is the size in bytes of the EncodeParams uniform block.
const ParameterSize = 8 * 4

// ParameterSink receives shader parameters. It is implemented by the
// rendering backend, which owns the uniform buffer.
type ParameterSink interface {
	WriteParameters(slot uint32, values [8]float32) error
}

// Parameters describes one copy from the source buffer into a tiled
// texture.
type Parameters struct {
	// Width and Height are the size of the copied rectangle.
	Width, Height float32
	// OffsetX and OffsetY are its origin in the source buffer.
	OffsetX, OffsetY float32
	// WidthStride and HeightStride are the source texels per encoded texel.
	WidthStride, HeightStride float32
	// BufferWidth and BufferHeight are the size of the source buffer.
	BufferWidth, BufferHeight float32
}

// Values returns the parameters in uniform order:
// widthStride, heightStride, bufferWidth, bufferHeight, width, height-1,
// offsetX, offsetY.
func (p Parameters) Values() [8]float32 {
	return [8]float32{
		p.WidthStride,
		p.HeightStride,
		p.BufferWidth,
		p.BufferHeight,
		p.Width,
		p.Height - 1,
		p.OffsetX,
		p.OffsetY,
	}
}

// Bytes returns the uniform block contents as little-endian float32s.
func (p Parameters) Bytes() []byte {
	return EncodeParameters(p.Values())
}

// EncodeParameters lays values out as the EncodeParams uniform block, in the
// order Parameters.Values returns them.
func EncodeParameters(values [8]float32) []byte {
	b := make([]byte, 0, ParameterSize)
	for _, v := range values {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
	}
	return b
}

func (p Parameters) swizzle() swizzle.Params {
	v := p.Values()
	return swizzle.Params{
		WidthStride:  float64(v[0]),
		HeightStride: float64(v[1]),
		BufferWidth:  float64(v[2]),
		BufferHeight: float64(v[3]),
		Width:        float64(v[4]),
		HeightM1:     float64(v[5]),
		OffsetX:      float64(v[6]),
		OffsetY:      float64(v[7]),
	}
}

// SetShaderParameters writes the parameters of one copy to sink at
// ParameterSlot.
func SetShaderParameters(sink ParameterSink, width, height, offsetX, offsetY,
	widthStride, heightStride, buffW, buffH float32) error {
	if sink == nil {
		return ErrNilSink
	}
	p := Parameters{
		Width:        width,
		Height:       height,
		OffsetX:      offsetX,
		OffsetY:      offsetY,
		WidthStride:  widthStride,
		HeightStride: heightStride,
		BufferWidth:  buffW,
		BufferHeight: buffH,
	}
	return sink.WriteParameters(ParameterSlot, p.Values())
}
