// Package native hands generated encoding shaders to the gogpu GPU stack.
//
// CompileSPIRV, Translate and Validate run the naga compiler over the WGSL
// text. Encoder creates wgpu HAL shader modules for texture formats and
// uploads the encoding parameters into caller-owned uniform buffers.
//
//	enc, err := native.NewEncoderFromProvider(provider)
//	if err != nil {
//	    return err
//	}
//	defer enc.Destroy()
//
//	module, err := enc.ShaderModule(format.RGB565)
//	enc.BindParameterBuffer(texconv.ParameterSlot, uniforms)
//	err = texconv.SetShaderParameters(enc, w, h, x, y, 1, 1, bw, bh)
package native
