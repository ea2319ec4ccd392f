// Command tareplay replays a captured TA parameter stream through the
// tile accelerator renderer core and reports the resulting surface,
// vertex, and index counts per list.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/gogpu/tacore"
	"github.com/gogpu/tacore/capture"
)

func main() {
	var (
		in            = flag.String("in", "", "capture file path (required)")
		dumpTextures  = flag.String("dump-textures", "", "if set, directory to dump resolved textures as PNGs")
		autosort      = flag.String("autosort", "", "override capture's autosort flag: true or false")
		logLevel      = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	if *in == "" {
		log.Fatal("tareplay: -in is required")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("tareplay: invalid -log-level %q: %v", *logLevel, err)
	}
	tacore.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("tareplay: %v", err)
	}
	defer f.Close()

	ctx, err := capture.ReadCapture(f)
	if err != nil {
		log.Fatalf("tareplay: reading capture: %v", err)
	}

	switch *autosort {
	case "true":
		ctx.Autosort = true
	case "false":
		ctx.Autosort = false
	case "":
		// leave as captured
	default:
		log.Fatalf("tareplay: -autosort must be true or false, got %q", *autosort)
	}

	backend := &dumpBackend{dumpDir: *dumpTextures}
	tr := tacore.New(
		tacore.WithBackend(backend),
		tacore.WithTextureDecoder(placeholderDecoder{}),
	)

	rc, err := tr.Convert(ctx)
	if err != nil {
		log.Fatalf("tareplay: conversion failed: %v", err)
	}

	fmt.Printf("surfaces=%d vertices=%d indices=%d\n", len(rc.Surfs), len(rc.Verts), len(rc.Indices))
	for lt := tacore.ListOpaque; int(lt) < 5; lt++ {
		fmt.Printf("  %-20s surfaces=%d orig=%d\n", tacore.ListType(lt), len(rc.Lists[lt].Surfs), rc.Lists[lt].NumOrigSurfs)
	}
}

// placeholderDecoder stands in for real PowerVR texture decode (out of
// scope, §1): it fills the scratch buffer with a flat gray so the
// pipeline can be exercised end to end without a real decoder.
type placeholderDecoder struct{}

func (placeholderDecoder) Decode(dst []byte, tcw tacore.TCW, paletteFmt tacore.PaletteFormat) (int, int, error) {
	w, h := tcw.Width, tcw.Height
	if w == 0 {
		w = 8
	}
	if h == 0 {
		h = 8
	}
	for i := 0; i < w*h*4; i += 4 {
		dst[i], dst[i+1], dst[i+2], dst[i+3] = 0x80, 0x80, 0x80, 0xFF
	}
	return w, h, nil
}

// dumpBackend is a no-op render backend that optionally writes each
// resolved texture to disk as a PNG for inspection.
type dumpBackend struct {
	dumpDir string
	next    tacore.TextureHandle
}

func (b *dumpBackend) CreateTexture(width, height int, filter tacore.TextureFilter, wrapU, wrapV tacore.TextureWrap, pixels []byte) (tacore.TextureHandle, error) {
	b.next++
	if b.dumpDir != "" {
		if err := os.MkdirAll(b.dumpDir, 0o755); err != nil {
			return 0, err
		}
		if err := dumpPNG(filepath.Join(b.dumpDir, fmt.Sprintf("tex_%d.png", b.next)), width, height, pixels); err != nil {
			return 0, err
		}
	}
	return b.next, nil
}

func (b *dumpBackend) DestroyTexture(h tacore.TextureHandle)                                     {}
func (b *dumpBackend) BeginTASurfaces(w, h int, verts []tacore.Vertex, indices []uint32)          {}
func (b *dumpBackend) DrawTASurface(s tacore.Surface)                                             {}
func (b *dumpBackend) EndTASurfaces()                                                             {}

// dumpPNG writes raw RGBA8 pixels to path, scaling to a minimum 64x64
// debug atlas tile via golang.org/x/image/draw when the decoded texture
// is smaller than that.
func dumpPNG(path string, width, height int, pixels []byte) error {
	src := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(src.Pix, pixels[:width*height*4])

	const minTile = 64
	dstW, dstH := width, height
	if dstW < minTile {
		dstW = minTile
	}
	if dstH < minTile {
		dstH = minTile
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, dst)
}
