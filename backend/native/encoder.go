package native

import (
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/texconv"
	"github.com/gogpu/texconv/format"
	"github.com/gogpu/texconv/internal/swizzle"
)

// TargetFormat is the format of the render target the encoding shaders
// write. Every output pixel holds four packed texture bytes.
const TargetFormat = gputypes.TextureFormatRGBA8Unorm

// ShaderSource produces the WGSL source for a texture format.
// *texconv.Generator and *texconv.ShaderCache implement it through Get or
// GenerateShader; see SourceFunc.
type ShaderSource interface {
	GenerateShader(f format.TextureFormat) (string, error)
}

// SourceFunc adapts a function to ShaderSource.
type SourceFunc func(f format.TextureFormat) (string, error)

// GenerateShader calls fn.
func (fn SourceFunc) GenerateShader(f format.TextureFormat) (string, error) {
	return fn(f)
}

// EncoderOption configures an Encoder.
type EncoderOption func(*encoderOptions)

type encoderOptions struct {
	source ShaderSource
	spirv  bool
}

// WithShaderSource sets where the encoder gets shader text from. The
// default is a texconv.ShaderCache over a default generator.
func WithShaderSource(s ShaderSource) EncoderOption {
	return func(o *encoderOptions) {
		o.source = s
	}
}

// WithSPIRV makes the encoder compile shaders to SPIR-V with naga before
// creating modules, instead of passing WGSL to the HAL.
func WithSPIRV() EncoderOption {
	return func(o *encoderOptions) {
		o.spirv = true
	}
}

// Encoder creates the GPU objects for texture encoding on one HAL device.
// It is safe for concurrent use.
type Encoder struct {
	device hal.Device
	queue  hal.Queue
	opts   encoderOptions

	mu        sync.Mutex
	modules   map[format.TextureFormat]hal.ShaderModule
	buffers   map[uint32]hal.Buffer
	owned     []hal.Buffer
	destroyed bool
}

// NewEncoder creates an encoder on device and queue.
func NewEncoder(device hal.Device, queue hal.Queue, opts ...EncoderOption) (*Encoder, error) {
	if device == nil || queue == nil {
		return nil, ErrNoDevice
	}
	var o encoderOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		c := texconv.NewShaderCache(nil)
		o.source = SourceFunc(c.Get)
	}
	return &Encoder{
		device:  device,
		queue:   queue,
		opts:    o,
		modules: make(map[format.TextureFormat]hal.ShaderModule),
		buffers: make(map[uint32]hal.Buffer),
	}, nil
}

// NewEncoderFromProvider creates an encoder on a shared device. The
// provider must expose HalDevice() any and HalQueue() any returning
// hal.Device and hal.Queue.
func NewEncoderFromProvider(provider gpucontext.DeviceProvider, opts ...EncoderOption) (*Encoder, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("%w: provider does not expose HAL types", ErrNoDevice)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: provider HalDevice is not hal.Device", ErrNoDevice)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: provider HalQueue is not hal.Queue", ErrNoDevice)
	}
	return NewEncoder(device, queue, opts...)
}

// ShaderModule returns the shader module encoding f, creating it on first
// use. Modules are owned by the encoder and released by Destroy.
func (e *Encoder) ShaderModule(f format.TextureFormat) (hal.ShaderModule, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return nil, ErrDestroyed
	}
	if m, ok := e.modules[f]; ok {
		return m, nil
	}

	src, err := e.opts.source.GenerateShader(f)
	if err != nil {
		return nil, err
	}
	desc := &hal.ShaderModuleDescriptor{Label: "texconv_" + f.String()}
	if e.opts.spirv {
		code, err := CompileSPIRV(src)
		if err != nil {
			return nil, fmt.Errorf("native: %v: %w", f, err)
		}
		desc.Source = hal.ShaderSource{SPIRV: code}
	} else {
		desc.Source = hal.ShaderSource{WGSL: src}
	}

	m, err := e.device.CreateShaderModule(desc)
	if err != nil {
		return nil, fmt.Errorf("native: create shader module %v: %w", f, err)
	}
	e.modules[f] = m
	texconv.Logger().Debug("native: created shader module",
		"format", f.String(), "spirv", e.opts.spirv, "modules", len(e.modules))
	return m, nil
}

// CreateParameterBuffer creates a uniform buffer sized for the encoding
// parameters and binds it to slot. The encoder owns the buffer.
func (e *Encoder) CreateParameterBuffer(slot uint32) (hal.Buffer, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return nil, ErrDestroyed
	}
	buf, err := e.device.CreateBuffer(&hal.BufferDescriptor{
		Label: fmt.Sprintf("texconv_params_%d", slot),
		Size:  texconv.ParameterSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("native: create parameter buffer: %w", err)
	}
	e.owned = append(e.owned, buf)
	e.buffers[slot] = buf
	return buf, nil
}

// BindParameterBuffer makes WriteParameters for slot write into buf. The
// caller keeps ownership of buf. A nil buf unbinds the slot.
func (e *Encoder) BindParameterBuffer(slot uint32, buf hal.Buffer) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if buf == nil {
		delete(e.buffers, slot)
		return
	}
	e.buffers[slot] = buf
}

// WriteParameters uploads values into the buffer bound to slot. It
// implements texconv.ParameterSink.
func (e *Encoder) WriteParameters(slot uint32, values [8]float32) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return ErrDestroyed
	}
	buf, ok := e.buffers[slot]
	if !ok {
		return fmt.Errorf("%w: slot %d", ErrNoParameterBuffer, slot)
	}
	if err := e.queue.WriteBuffer(buf, 0, texconv.EncodeParameters(values)); err != nil {
		return fmt.Errorf("native: write parameters slot %d: %w", slot, err)
	}
	return nil
}

// Modules returns the number of shader modules created so far.
func (e *Encoder) Modules() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.modules)
}

// Destroy releases the shader modules and parameter buffers the encoder
// created. Buffers bound with BindParameterBuffer are left alone. Destroy
// is idempotent.
func (e *Encoder) Destroy() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return
	}
	e.destroyed = true
	for f, m := range e.modules {
		e.device.DestroyShaderModule(m)
		delete(e.modules, f)
	}
	for _, buf := range e.owned {
		e.device.DestroyBuffer(buf)
	}
	e.owned = nil
	clear(e.buffers)
}

// BindGroupLayoutEntries describes the resources the encoding shaders
// bind in group 0: the parameter uniform, the source texture and its
// sampler.
func BindGroupLayoutEntries() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    swizzle.ParamsBinding,
			Visibility: gputypes.ShaderStageFragment,
			Buffer: &gputypes.BufferBindingLayout{
				Type:           gputypes.BufferBindingTypeUniform,
				MinBindingSize: texconv.ParameterSize,
			},
		},
		{
			Binding:    swizzle.TextureBinding,
			Visibility: gputypes.ShaderStageFragment,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeFloat,
				ViewDimension: gputypes.TextureViewDimension2D,
			},
		},
		{
			Binding:    swizzle.SamplerBinding,
			Visibility: gputypes.ShaderStageFragment,
			Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
		},
	}
}

var _ texconv.ParameterSink = (*Encoder)(nil)
