package texconv

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

type recordingSink struct {
	slot   uint32
	values [8]float32
	calls  int
	err    error
}

func (s *recordingSink) WriteParameters(slot uint32, values [8]float32) error {
	s.slot = slot
	s.values = values
	s.calls++
	return s.err
}

func TestSetShaderParametersOrder(t *testing.T) {
	sink := &recordingSink{}
	err := SetShaderParameters(sink,
		64, 32, // width, height
		5, 6, // offsetX, offsetY
		2, 3, // widthStride, heightStride
		640, 528) // buffW, buffH
	if err != nil {
		t.Fatal(err)
	}
	want := [8]float32{2, 3, 640, 528, 64, 31, 5, 6}
	if sink.values != want {
		t.Errorf("values = %v, want %v", sink.values, want)
	}
	if sink.slot != ParameterSlot || sink.calls != 1 {
		t.Errorf("slot %d, calls %d", sink.slot, sink.calls)
	}
}

func TestSetShaderParametersErrors(t *testing.T) {
	if err := SetShaderParameters(nil, 1, 1, 0, 0, 1, 1, 1, 1); !errors.Is(err, ErrNilSink) {
		t.Errorf("nil sink error = %v", err)
	}
	errFull := errors.New("uniform buffer full")
	sink := &recordingSink{err: errFull}
	if err := SetShaderParameters(sink, 1, 1, 0, 0, 1, 1, 1, 1); !errors.Is(err, errFull) {
		t.Errorf("sink error = %v, want %v", err, errFull)
	}
}

func TestParametersBytes(t *testing.T) {
	p := Parameters{
		Width: 64, Height: 32,
		OffsetX: 5, OffsetY: 6,
		WidthStride: 2, HeightStride: 3,
		BufferWidth: 640, BufferHeight: 528,
	}
	b := p.Bytes()
	if len(b) != ParameterSize {
		t.Fatalf("len = %d, want %d", len(b), ParameterSize)
	}
	values := p.Values()
	for i, want := range values {
		got := math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
		if got != want {
			t.Errorf("word %d = %v, want %v", i, got, want)
		}
	}
	if string(EncodeParameters(values)) != string(b) {
		t.Error("EncodeParameters differs from Bytes")
	}
}
