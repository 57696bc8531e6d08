package texconv

import (
	"fmt"
	"sync"

	"github.com/gogpu/texconv/format"
	"github.com/gogpu/texconv/internal/emit"
	"github.com/gogpu/texconv/internal/encode"
	"github.com/gogpu/texconv/internal/swizzle"
	"github.com/gogpu/texconv/internal/workpool"
)

// Generator produces encoding shaders. Generations on one Generator are
// serialized; use several generators to generate in parallel.
type Generator struct {
	mu   sync.Mutex
	opts generatorOptions
	w    *emit.Writer
}

// NewGenerator creates a generator.
func NewGenerator(opts ...GeneratorOption) *Generator {
	o := defaultGeneratorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Generator{
		opts: o,
		w:    emit.NewWriter(o.capacity),
	}
}

// RGB5A3Mode returns the RGB5A3 encoding the generator uses.
func (g *Generator) RGB5A3Mode() RGB5A3Mode {
	return g.opts.rgb5a3Mode
}

// Capacity returns the buffer capacity, 0 when unlimited.
func (g *Generator) Capacity() int {
	return g.w.Capacity()
}

// GenerateShader returns the WGSL source of the fragment shader encoding f.
//
// It fails with ErrNotImplemented for formats without an encoder and with
// ErrBufferOverflow when the text exceeds the generator's capacity. On error
// no text is returned.
func (g *Generator) GenerateShader(f format.TextureFormat) (string, error) {
	e, ok := encode.Lookup(f, g.variant())
	if !ok {
		return "", fmt.Errorf("texconv: unknown texture copy format %#x: %w", uint32(f), ErrNotImplemented)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.w.Reset()
	c := encode.NewContext(g.w)
	if err := e.Encode(c); err != nil {
		return "", fmt.Errorf("texconv: %v: %w", f, err)
	}
	src, err := g.w.String()
	if err != nil {
		Logger().Debug("texconv: shader overflow", "format", f.String(), "capacity", g.w.Capacity())
		return "", fmt.Errorf("texconv: %v: %w", f, err)
	}

	Logger().Debug("texconv: generated shader",
		"format", f.String(),
		"encoder", e.Name,
		"tile_width", e.Geometry.TileWidth,
		"tile_height", e.Geometry.TileHeight,
		"samples", e.Geometry.Samples,
		"bytes", len(src))
	return src, nil
}

func (g *Generator) variant() encode.Variant {
	if g.opts.rgb5a3Mode == RGB5A3Translucent {
		return encode.VariantTranslucent
	}
	return encode.VariantDefault
}

var defaultGenerator = NewGenerator()

// GenerateShader generates the shader for f with a shared default
// generator.
func GenerateShader(f format.TextureFormat) (string, error) {
	return defaultGenerator.GenerateShader(f)
}

// SampleCoord returns the normalized source coordinate the shader for f
// samples first when drawing the output pixel (x, y) with parameters p.
// The k-th sample of the pixel lies k*p.WidthStride/p.BufferWidth to the
// right of it.
func SampleCoord(f format.TextureFormat, x, y int, p Parameters) (u, v float64, err error) {
	g, ok := format.GeometryOf(f)
	if !ok {
		return 0, 0, fmt.Errorf("texconv: unknown texture copy format %#x: %w", uint32(f), ErrNotImplemented)
	}
	sp := p.swizzle()
	if f.Is32Bit() {
		u, v = swizzle.Map32(float64(x), float64(y), g, sp)
	} else {
		u, v = swizzle.Map(float64(x), float64(y), g, sp)
	}
	return u, v, nil
}

// GenerateAll generates the shaders for formats in parallel. Every worker
// owns a Generator built with opts; workers <= 0 uses GOMAXPROCS. On error
// the first failing format, in the order given, is reported.
func GenerateAll(formats []format.TextureFormat, workers int, opts ...GeneratorOption) (map[format.TextureFormat]string, error) {
	gens := make([]*Generator, min(workpool.Workers(workers), max(len(formats), 1)))
	for i := range gens {
		gens[i] = NewGenerator(opts...)
	}

	sources := make([]string, len(formats))
	errs := make([]error, len(formats))
	workpool.Run(gens, len(formats), func(g *Generator, i int) {
		sources[i], errs[i] = g.GenerateShader(formats[i])
	})

	out := make(map[format.TextureFormat]string, len(formats))
	for i, f := range formats {
		if errs[i] != nil {
			return nil, errs[i]
		}
		out[f] = sources[i]
	}
	return out, nil
}
