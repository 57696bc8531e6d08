package texconv

// DefaultBufferCapacity is the shader text capacity of a Generator created
// without WithBufferCapacity. The longest format stays well below it.
const DefaultBufferCapacity = 16384

// RGB5A3Mode selects how RGB5A3 is encoded.
type RGB5A3Mode uint32

const (
	// RGB5A3Auto stores texels with alpha above 224/255 as opaque RGB555 and
	// the others as ARGB3444, chosen per texel.
	RGB5A3Auto RGB5A3Mode = iota

	// RGB5A3Translucent stores every texel as ARGB3444. Use it when the
	// source is known to carry alpha throughout.
	RGB5A3Translucent
)

// String returns the mode name.
func (m RGB5A3Mode) String() string {
	switch m {
	case RGB5A3Auto:
		return "auto"
	case RGB5A3Translucent:
		return "translucent"
	default:
		return "unknown"
	}
}

// GeneratorOption configures a Generator during creation.
//
// Example:
//
//	gen := texconv.NewGenerator(
//	    texconv.WithBufferCapacity(32 << 10),
//	    texconv.WithRGB5A3Mode(texconv.RGB5A3Translucent),
//	)
type GeneratorOption func(*generatorOptions)

type generatorOptions struct {
	capacity   int
	rgb5a3Mode RGB5A3Mode
}

func defaultGeneratorOptions() generatorOptions {
	return generatorOptions{
		capacity:   DefaultBufferCapacity,
		rgb5a3Mode: RGB5A3Auto,
	}
}

// WithBufferCapacity sets the maximum size of a generated shader in bytes.
// Generation fails with ErrBufferOverflow when a shader would exceed it.
// A capacity <= 0 removes the limit.
func WithBufferCapacity(n int) GeneratorOption {
	return func(o *generatorOptions) {
		o.capacity = n
	}
}

// WithRGB5A3Mode selects the RGB5A3 encoding.
func WithRGB5A3Mode(m RGB5A3Mode) GeneratorOption {
	return func(o *generatorOptions) {
		o.rgb5a3Mode = m
	}
}
