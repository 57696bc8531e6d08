// Command texconv writes the texture encoding shaders to disk.
//
//	texconv -format all -target wgsl -output shaders/
//	texconv -format RGB5A3 -rgb5a3 translucent -target hlsl -output -
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/texconv"
	"github.com/gogpu/texconv/backend/native"
	"github.com/gogpu/texconv/format"
)

func main() {
	var (
		formatName = flag.String("format", "all", "texture format name, or all")
		target     = flag.String("target", "wgsl", "output language: wgsl, spirv, hlsl, glsl or msl")
		output     = flag.String("output", ".", "output directory, or - for stdout")
		rgb5a3     = flag.String("rgb5a3", "auto", "RGB5A3 encoding: auto or translucent")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		texconv.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	formats, err := selectFormats(*formatName)
	if err != nil {
		log.Fatal(err)
	}

	var opts []texconv.GeneratorOption
	switch *rgb5a3 {
	case "auto":
	case "translucent":
		opts = append(opts, texconv.WithRGB5A3Mode(texconv.RGB5A3Translucent))
	default:
		log.Fatalf("unknown RGB5A3 encoding %q", *rgb5a3)
	}
	sources, err := texconv.GenerateAll(formats, 0, opts...)
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range formats {
		data, ext, err := convert(sources[f], *target)
		if err != nil {
			log.Fatalf("%v: %v", f, err)
		}
		if err := write(*output, f, ext, data); err != nil {
			log.Fatalf("%v: %v", f, err)
		}
	}
	if *output != "-" {
		log.Printf("Wrote %d shaders to %s", len(formats), *output)
	}
}

func selectFormats(name string) ([]format.TextureFormat, error) {
	if strings.EqualFold(name, "all") {
		return format.All(), nil
	}
	var formats []format.TextureFormat
	for _, n := range strings.Split(name, ",") {
		f, err := format.Parse(strings.TrimSpace(n))
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// convert turns WGSL source into the requested language and returns it
// with its file extension.
func convert(src, target string) ([]byte, string, error) {
	switch strings.ToLower(target) {
	case "wgsl":
		return []byte(src), "wgsl", nil
	case "spirv":
		words, err := native.CompileSPIRV(src)
		if err != nil {
			return nil, "", err
		}
		b := make([]byte, 0, len(words)*4)
		for _, w := range words {
			b = binary.LittleEndian.AppendUint32(b, w)
		}
		return b, "spv", nil
	case "hlsl":
		out, err := native.Translate(src, native.TargetHLSL)
		return []byte(out), "hlsl", err
	case "glsl":
		out, err := native.Translate(src, native.TargetGLSL)
		return []byte(out), "frag", err
	case "msl":
		out, err := native.Translate(src, native.TargetMSL)
		return []byte(out), "metal", err
	default:
		return nil, "", fmt.Errorf("unknown target %q", target)
	}
}

func write(dir string, f format.TextureFormat, ext string, data []byte) error {
	if dir == "-" {
		return writeTo(os.Stdout, f, data)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	name := fmt.Sprintf("enc_%s.%s", strings.ToLower(f.String()), ext)
	return os.WriteFile(filepath.Join(dir, name), data, 0o644)
}

func writeTo(w io.Writer, f format.TextureFormat, data []byte) error {
	if _, err := fmt.Fprintf(w, "// %v\n", f); err != nil {
		return err
	}
	_, err := w.Write(append(data, '\n'))
	return err
}
