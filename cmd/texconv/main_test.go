package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/texconv"
	"github.com/gogpu/texconv/format"
)

func TestSelectFormats(t *testing.T) {
	all, err := selectFormats("ALL")
	if err != nil || len(all) != len(format.All()) {
		t.Fatalf("selectFormats(ALL) = %d formats, %v", len(all), err)
	}

	got, err := selectFormats("i4, rgb5a3")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != format.I4 || got[1] != format.RGB5A3 {
		t.Errorf("selectFormats = %v", got)
	}

	if _, err := selectFormats("I4,BOGUS"); err == nil {
		t.Error("expected an error for an unknown name")
	}
}

func TestConvertWGSL(t *testing.T) {
	src, err := texconv.GenerateShader(format.Z16)
	if err != nil {
		t.Fatal(err)
	}
	data, ext, err := convert(src, "WGSL")
	if err != nil {
		t.Fatal(err)
	}
	if ext != "wgsl" || string(data) != src {
		t.Errorf("convert = %q, %d bytes", ext, len(data))
	}

	if _, _, err := convert(src, "dxil"); err == nil {
		t.Error("expected an error for an unknown target")
	}
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	if err := write(dir, format.RA8, "wgsl", []byte("src")); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "enc_ra8.wgsl"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "src" {
		t.Errorf("file content = %q", data)
	}

	var buf bytes.Buffer
	if err := writeTo(&buf, format.RA8, []byte("src")); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "// RA8\nsrc") {
		t.Errorf("stdout output = %q", buf.String())
	}
}
