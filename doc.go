// Package texconv generates the fragment shaders that encode a rendered
// image into the tiled texture formats of a console-style texture unit.
//
// # Overview
//
// The texture unit stores textures as a grid of small tiles. Every format
// has its own tile size and packs a fixed number of source texels into one
// RGBA8 output pixel. A copy from the framebuffer to texture memory is
// therefore a draw into a linear RGBA8 target with a shader that, for each
// output pixel, works out which source texels land there, samples them and
// packs their channels into the format's byte layout.
//
// The shaders are emitted as WGSL text. backend/native compiles them with
// naga and turns them into wgpu HAL shader modules.
//
// # Quick Start
//
//	src, err := texconv.GenerateShader(format.I4)
//	if err != nil {
//	    return err
//	}
//
//	// Before drawing, upload the copy rectangle.
//	err = texconv.SetShaderParameters(sink,
//	    width, height, offsetX, offsetY,
//	    widthStride, heightStride, bufferWidth, bufferHeight)
//
// # Caching
//
// [ShaderCache] keeps one shader per format and configuration. With shader
// debugging enabled it regenerates on every request and reports, through
// the shaderuid package, any request whose text differs from the cached one.
//
// # Concurrency
//
// A [Generator] serializes generations on an internal mutex; every
// generation uses its own encoding context. [ShaderCache] is safe for
// concurrent use.
package texconv
