package capture

import (
	"bytes"
	"testing"

	"github.com/gogpu/tacore"
)

func TestWriteReadRoundTrip(t *testing.T) {
	ctx := &tacore.Context{
		VideoWidth:  640,
		VideoHeight: 480,
		Autosort:    true,
		AlphaRef:    128,
		BGISP:       tacore.ISP{CullingMode: tacore.CullBack, DepthCompare: tacore.DepthGEqual},
		BGTSP:       tacore.TSP{ShadingInstr: tacore.ShadeModulate, UseAlpha: true},
		BGTCW:       tacore.TCW{Width: 32, Height: 64, Addr: 0x4000},
		Params:      []byte{1, 2, 3, 4, 5, 6, 7, 8},
		Size:        8,
	}
	ctx.BGVertices[0] = tacore.BGVertex{XYZ: [3]float32{0, 0, 1}}
	ctx.BGVertices[1] = tacore.BGVertex{XYZ: [3]float32{1, 0, 1}}
	ctx.BGVertices[2] = tacore.BGVertex{XYZ: [3]float32{0, 1, 1}}

	var buf bytes.Buffer
	if err := WriteCapture(&buf, ctx); err != nil {
		t.Fatalf("WriteCapture: %v", err)
	}

	got, err := ReadCapture(&buf)
	if err != nil {
		t.Fatalf("ReadCapture: %v", err)
	}

	if got.VideoWidth != ctx.VideoWidth || got.VideoHeight != ctx.VideoHeight {
		t.Errorf("viewport mismatch: got %dx%d, want %dx%d", got.VideoWidth, got.VideoHeight, ctx.VideoWidth, ctx.VideoHeight)
	}
	if got.Autosort != ctx.Autosort {
		t.Errorf("autosort = %v, want %v", got.Autosort, ctx.Autosort)
	}
	if got.AlphaRef != ctx.AlphaRef {
		t.Errorf("alpha_ref = %v, want %v", got.AlphaRef, ctx.AlphaRef)
	}
	if got.BGISP.CullingMode != ctx.BGISP.CullingMode || got.BGISP.DepthCompare != ctx.BGISP.DepthCompare {
		t.Errorf("bg_isp mismatch: got %+v, want %+v", got.BGISP, ctx.BGISP)
	}
	if got.BGTCW.Addr != ctx.BGTCW.Addr {
		t.Errorf("bg_tcw.Addr = 0x%X, want 0x%X", got.BGTCW.Addr, ctx.BGTCW.Addr)
	}
	if got.BGTCW.Width != ctx.BGTCW.Width || got.BGTCW.Height != ctx.BGTCW.Height {
		t.Errorf("bg_tcw size = %dx%d, want %dx%d", got.BGTCW.Width, got.BGTCW.Height, ctx.BGTCW.Width, ctx.BGTCW.Height)
	}
	if !bytes.Equal(got.Params, ctx.Params) {
		t.Errorf("params = %v, want %v", got.Params, ctx.Params)
	}
	for i := range ctx.BGVertices {
		if got.BGVertices[i].XYZ != ctx.BGVertices[i].XYZ {
			t.Errorf("bg vertex %d = %+v, want %+v", i, got.BGVertices[i], ctx.BGVertices[i])
		}
	}
}
