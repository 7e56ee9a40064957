package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"uf2status/ui/icon"
)

func main() {
	var (
		inPath    = flag.String("in", "", "Input file (.png for encode, .bin for decode).")
		outPath   = flag.String("out", "", "Output file (.go or .bin for encode, .png for decode).")
		mode      = flag.String("mode", "encode", "encode|decode.")
		name      = flag.String("name", "", "Go variable name (encode to .go only).")
		pkg       = flag.String("pkg", "assets", "Go package name (encode to .go only).")
		threshold = flag.Uint("threshold", 128, "Luminance at or above which a pixel is set.")
	)
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		fatalf("usage: mkicon -mode encode -in icon.png -out icon.go -name FileLogo [-pkg assets] [-threshold 128]\n       mkicon -mode decode -in icon.bin -out icon.png")
	}
	if *threshold > 255 {
		fatalf("threshold out of range: %d", *threshold)
	}

	switch strings.ToLower(*mode) {
	case "encode":
		if err := encodeFile(*inPath, *outPath, *name, *pkg, uint8(*threshold)); err != nil {
			fatalf("encode: %v", err)
		}
	case "decode":
		if err := decodeFile(*inPath, *outPath); err != nil {
			fatalf("decode: %v", err)
		}
	default:
		fatalf("unknown mode: %s", *mode)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func encodeFile(inPath, outPath, name, pkg string, threshold uint8) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	img, err := png.Decode(in)
	if err != nil {
		return fmt.Errorf("png: %w", err)
	}
	m := icon.MaskFromImage(img, threshold)
	data, err := icon.Encode(m)
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(outPath), ".go") {
		if name == "" {
			return fmt.Errorf("-name is required for .go output")
		}
		data, err = goSource(pkg, name, data)
		if err != nil {
			return err
		}
	}
	return os.WriteFile(outPath, data, 0o644)
}

func decodeFile(inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	m, err := icon.DecodeMask(data)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := png.Encode(out, m.Image()); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// goSource renders data as a gofmt'ed byte slice declaration.
func goSource(pkg, name string, data []byte) ([]byte, error) {
	h, err := icon.ParseHeader(data)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by mkicon. DO NOT EDIT.\n\npackage %s\n\n", pkg)
	fmt.Fprintf(&b, "var %s = []byte{\n", name)
	fmt.Fprintf(&b, "0x%02x, 0x%02x, 0x%02x, // %dx%d, %d payload bytes\n", data[0], data[1], data[2], h.Width, h.Height, h.Size)
	payload := data[icon.HeaderSize:]
	for i := 0; i < len(payload); i += 12 {
		end := i + 12
		if end > len(payload) {
			end = len(payload)
		}
		for j, v := range payload[i:end] {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "0x%02x,", v)
		}
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return format.Source(b.Bytes())
}
