package texconv

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/texconv/format"
)

func TestGenerateShaderAllFormats(t *testing.T) {
	for _, f := range format.All() {
		t.Run(f.String(), func(t *testing.T) {
			a, err := GenerateShader(f)
			if err != nil {
				t.Fatalf("GenerateShader(%v) = %v", f, err)
			}
			b, err := GenerateShader(f)
			if err != nil {
				t.Fatal(err)
			}
			if a != b {
				t.Error("output is not deterministic")
			}
			for _, want := range []string{
				"struct EncodeParams {",
				"@group(0) @binding(0) var<uniform> params: EncodeParams;",
				"@fragment",
				"fn fs_main(@location(0) uv0: vec2<f32>) -> @location(0) vec4<f32> {",
				"return ocol0;",
			} {
				if !strings.Contains(a, want) {
					t.Errorf("missing %q", want)
				}
			}
			if len(a) > DefaultBufferCapacity {
				t.Errorf("%d bytes exceed the default capacity", len(a))
			}
		})
	}
}

func TestGenerateShaderUnknownFormat(t *testing.T) {
	for _, f := range []format.TextureFormat{0x7, 0x12, 0x21, 0x3B, 0x100} {
		src, err := GenerateShader(f)
		if !errors.Is(err, ErrNotImplemented) {
			t.Errorf("GenerateShader(%#x) error = %v, want ErrNotImplemented", uint32(f), err)
		}
		if src != "" {
			t.Errorf("GenerateShader(%#x) returned text with an error", uint32(f))
		}
	}

	_, err := GenerateShader(0x7)
	if got, want := err.Error(), "texconv: unknown texture copy format 0x7: not implemented"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestGenerateShaderOverflow(t *testing.T) {
	longest, size := format.I4, 0
	for _, f := range format.All() {
		src, err := GenerateShader(f)
		if err != nil {
			t.Fatal(err)
		}
		if len(src) > size {
			longest, size = f, len(src)
		}
	}

	src, err := NewGenerator(WithBufferCapacity(size - 1)).GenerateShader(longest)
	if !errors.Is(err, ErrBufferOverflow) {
		t.Fatalf("capacity %d: error = %v, want ErrBufferOverflow", size-1, err)
	}
	if src != "" {
		t.Error("overflow must not return partial text")
	}

	if _, err := NewGenerator(WithBufferCapacity(size)).GenerateShader(longest); err != nil {
		t.Errorf("capacity %d: %v", size, err)
	}
}

func TestGeneratorRecoversAfterOverflow(t *testing.T) {
	want, err := NewGenerator(WithBufferCapacity(0)).GenerateShader(format.R8)
	if err != nil {
		t.Fatal(err)
	}
	big, err := NewGenerator(WithBufferCapacity(0)).GenerateShader(format.RGB5A3)
	if err != nil {
		t.Fatal(err)
	}
	if len(big) <= len(want) {
		t.Fatalf("RGB5A3 (%d bytes) should be longer than R8 (%d bytes)", len(big), len(want))
	}

	g := NewGenerator(WithBufferCapacity(len(want)))
	if _, err := g.GenerateShader(format.RGB5A3); !errors.Is(err, ErrBufferOverflow) {
		t.Fatalf("RGB5A3 should overflow %d bytes, got %v", len(want), err)
	}
	got, err := g.GenerateShader(format.R8)
	if err != nil {
		t.Fatalf("R8 after overflow: %v", err)
	}
	if got != want {
		t.Error("output after an overflow differs")
	}
}

func TestGeneratorOptions(t *testing.T) {
	g := NewGenerator()
	if g.Capacity() != DefaultBufferCapacity || g.RGB5A3Mode() != RGB5A3Auto {
		t.Errorf("defaults: capacity %d, mode %v", g.Capacity(), g.RGB5A3Mode())
	}
	if NewGenerator(WithBufferCapacity(-1)).Capacity() != 0 {
		t.Error("negative capacity should mean unlimited")
	}
}

func TestRGB5A3Translucent(t *testing.T) {
	auto, err := NewGenerator().GenerateShader(format.RGB5A3)
	if err != nil {
		t.Fatal(err)
	}
	g := NewGenerator(WithRGB5A3Mode(RGB5A3Translucent))
	translucent, err := g.GenerateShader(format.RGB5A3)
	if err != nil {
		t.Fatal(err)
	}
	if auto == translucent {
		t.Fatal("translucent mode did not change the RGB5A3 shader")
	}
	if strings.Contains(translucent, "if (") {
		t.Error("translucent RGB5A3 must not branch on alpha")
	}

	// Other formats are unaffected.
	a, _ := NewGenerator().GenerateShader(format.IA8)
	b, _ := g.GenerateShader(format.IA8)
	if a != b {
		t.Error("RGB5A3 mode changed the IA8 shader")
	}
}

func TestRGB5A3ModeString(t *testing.T) {
	tests := map[RGB5A3Mode]string{
		RGB5A3Auto:        "auto",
		RGB5A3Translucent: "translucent",
		RGB5A3Mode(9):     "unknown",
	}
	for m, want := range tests {
		if got := m.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", uint32(m), got, want)
		}
	}
}

func TestGenerateShaderConcurrent(t *testing.T) {
	g := NewGenerator()
	want := make(map[format.TextureFormat]string)
	for _, f := range format.All() {
		src, err := g.GenerateShader(f)
		if err != nil {
			t.Fatal(err)
		}
		want[f] = src
	}

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			all := format.All()
			for j := range all {
				f := all[(i+j)%len(all)]
				src, err := g.GenerateShader(f)
				if err != nil {
					t.Error(err)
					return
				}
				if src != want[f] {
					t.Errorf("%v: concurrent output differs", f)
				}
			}
		}()
	}
	wg.Wait()
}

func TestLiteralsUseDecimalPoint(t *testing.T) {
	src, err := GenerateShader(format.RGB5A3)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"0.878", "31.875", "15.9375", "7.96875"} {
		if !strings.Contains(src, want) {
			t.Errorf("missing literal %s", want)
		}
	}
}

func TestSampleCoord(t *testing.T) {
	p := Parameters{
		Width: 8, Height: 8,
		WidthStride: 1, HeightStride: 1,
		BufferWidth: 8, BufferHeight: 8,
	}
	u, v, err := SampleCoord(format.I4, 0, 0, p)
	if err != nil {
		t.Fatal(err)
	}
	if u != 0 || v != 0.125 {
		t.Errorf("SampleCoord(I4, 0, 0) = (%v, %v), want (0, 0.125)", u, v)
	}

	// The second output pixel of an I4 row starts eight texels in.
	u, _, err = SampleCoord(format.I4, 1, 0, p)
	if err != nil {
		t.Fatal(err)
	}
	if u != 0 {
		t.Errorf("I4 pixel 1 u = %v, want 0 (next tile row)", u)
	}

	if _, _, err := SampleCoord(0x7, 0, 0, p); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("unknown format error = %v", err)
	}
}

func TestGenerateAll(t *testing.T) {
	all := format.All()
	got, err := GenerateAll(all, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(all) {
		t.Fatalf("got %d shaders, want %d", len(got), len(all))
	}
	for _, f := range all {
		want, _ := GenerateShader(f)
		if got[f] != want {
			t.Errorf("%v: parallel output differs", f)
		}
	}

	tr, err := GenerateAll([]format.TextureFormat{format.RGB5A3}, 0, WithRGB5A3Mode(RGB5A3Translucent))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(tr[format.RGB5A3], "if (") {
		t.Error("options not applied to worker generators")
	}
}

func TestGenerateAllReportsFirstError(t *testing.T) {
	_, err := GenerateAll([]format.TextureFormat{format.I8, 0x7, 0x8}, 2)
	if !errors.Is(err, ErrNotImplemented) || !strings.Contains(err.Error(), "0x7") {
		t.Errorf("error = %v", err)
	}
	got, err := GenerateAll(nil, 2)
	if err != nil || len(got) != 0 {
		t.Errorf("GenerateAll(nil) = %v, %v", got, err)
	}
}
