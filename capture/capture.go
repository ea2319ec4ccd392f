// Package capture reads and writes the flat binary capture file format
// of §13.1: a fixed header describing viewport and background state,
// followed by the raw TA parameter stream the stream driver consumes
// verbatim. Grounded on the teacher's cmd/ggdemo demo-asset loading
// (flat little-endian binary, no container format) and this module's
// own word-based wire convention (internal/pcw/stride.go).
package capture

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/gogpu/tacore"
	"github.com/gogpu/tacore/internal/decode"
)

// headerWords is the fixed header's word count: video_width,
// video_height, autosort, alpha_ref, bg_isp, bg_tsp, bg_tcw.
const headerWords = 7

// vertexWords is one packed background vertex's word count: xyz (3) +
// uv (2) + color (1) + offset_color (1).
const vertexWords = 7

// ReadCapture reads a capture file and returns the reconstructed
// Context. The remainder of r after the header is taken verbatim as
// ctx.Params.
func ReadCapture(r io.Reader) (*tacore.Context, error) {
	header := make([]byte, headerWords*4+3*vertexWords*4)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("capture: read header: %w", err)
	}

	words := make([]uint32, headerWords)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(header[i*4 : i*4+4])
	}

	ctx := &tacore.Context{
		VideoWidth:  int(words[0]),
		VideoHeight: int(words[1]),
		Autosort:    words[2] != 0,
		AlphaRef:    uint8(words[3]),
		BGISP:       tacore.DecodeISP(words[4]),
		BGTSP:       tacore.DecodeTSP(words[5]),
		BGTCW:       tacore.DecodeTCW(words[6]),
	}

	vertsOff := headerWords * 4
	for i := 0; i < 3; i++ {
		ctx.BGVertices[i] = decodeVertex(header[vertsOff+i*vertexWords*4:])
	}

	params, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("capture: read params: %w", err)
	}
	ctx.Params = params
	ctx.Size = len(params)

	return ctx, nil
}

// WriteCapture serializes ctx into the capture file format of §13.1.
func WriteCapture(w io.Writer, ctx *tacore.Context) error {
	header := make([]byte, headerWords*4+3*vertexWords*4)

	putWord(header, 0, uint32(ctx.VideoWidth))
	putWord(header, 1, uint32(ctx.VideoHeight))
	putWord(header, 2, boolWord(ctx.Autosort))
	putWord(header, 3, uint32(ctx.AlphaRef))
	putWord(header, 4, tacore.EncodeISP(ctx.BGISP))
	putWord(header, 5, tacore.EncodeTSP(ctx.BGTSP))
	putWord(header, 6, tacore.EncodeTCW(ctx.BGTCW))

	vertsOff := headerWords * 4
	for i := 0; i < 3; i++ {
		encodeVertex(header[vertsOff+i*vertexWords*4:], ctx.BGVertices[i])
	}

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("capture: write header: %w", err)
	}
	if _, err := w.Write(ctx.Params[:ctx.Size]); err != nil {
		return fmt.Errorf("capture: write params: %w", err)
	}
	return nil
}

func putWord(buf []byte, wordIdx int, v uint32) {
	binary.LittleEndian.PutUint32(buf[wordIdx*4:wordIdx*4+4], v)
}

func boolWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// decodeVertex unpacks one background vertex: xyz (3 float words), uv
// (2 float words), color (1 packed word), offset_color (1 packed word).
func decodeVertex(buf []byte) tacore.BGVertex {
	return tacore.BGVertex{
		XYZ: [3]float32{
			readF32(buf, 0), readF32(buf, 4), readF32(buf, 8),
		},
		UV: [2]float32{
			readF32(buf, 12), readF32(buf, 16),
		},
		Color:       decode.ParsePackedColor(binary.LittleEndian.Uint32(buf[20:24])),
		OffsetColor: decode.ParsePackedColor(binary.LittleEndian.Uint32(buf[24:28])),
	}
}

func encodeVertex(buf []byte, v tacore.BGVertex) {
	writeF32(buf, 0, v.XYZ[0])
	writeF32(buf, 4, v.XYZ[1])
	writeF32(buf, 8, v.XYZ[2])
	writeF32(buf, 12, v.UV[0])
	writeF32(buf, 16, v.UV[1])
	binary.LittleEndian.PutUint32(buf[20:24], decode.SerializePackedColor(v.Color))
	binary.LittleEndian.PutUint32(buf[24:28], decode.SerializePackedColor(v.OffsetColor))
}

func readF32(buf []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset : offset+4]))
}

func writeF32(buf []byte, offset int, f float32) {
	binary.LittleEndian.PutUint32(buf[offset:offset+4], math.Float32bits(f))
}
