package native

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/hlsl"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/msl"
)

// Target is a shading language Translate can produce.
type Target int

const (
	TargetHLSL Target = iota + 1
	TargetGLSL
	TargetMSL
)

// String returns the language name.
func (t Target) String() string {
	switch t {
	case TargetHLSL:
		return "HLSL"
	case TargetGLSL:
		return "GLSL"
	case TargetMSL:
		return "MSL"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

// CompileSPIRV compiles WGSL source to SPIR-V words.
func CompileSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("native: compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// lower parses and lowers WGSL source to naga IR.
func lower(wgslSource string) (*ir.Module, error) {
	ast, err := naga.Parse(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("native: parse shader: %w", err)
	}
	module, err := naga.LowerWithSource(ast, wgslSource)
	if err != nil {
		return nil, fmt.Errorf("native: lower shader: %w", err)
	}
	return module, nil
}

// Validate runs the naga validator over WGSL source. All validation errors
// are joined into the result.
func Validate(wgslSource string) error {
	module, err := lower(wgslSource)
	if err != nil {
		return err
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		return fmt.Errorf("native: validate shader: %w", err)
	}
	if len(verrs) == 0 {
		return nil
	}
	errs := make([]error, len(verrs))
	for i, e := range verrs {
		errs[i] = e
	}
	return fmt.Errorf("native: validate shader: %w", errors.Join(errs...))
}

// Translate converts WGSL source to another shading language.
func Translate(wgslSource string, target Target) (string, error) {
	if target < TargetHLSL || target > TargetMSL {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedTarget, target)
	}
	module, err := lower(wgslSource)
	if err != nil {
		return "", err
	}

	var out string
	switch target {
	case TargetHLSL:
		out, _, err = hlsl.Compile(module, hlsl.DefaultOptions())
	case TargetGLSL:
		out, _, err = glsl.Compile(module, glsl.DefaultOptions())
	case TargetMSL:
		out, _, err = msl.Compile(module, msl.DefaultOptions())
	}
	if err != nil {
		return "", fmt.Errorf("native: translate to %v: %w", target, err)
	}
	return out, nil
}
