package tacore

import (
	"github.com/gogpu/tacore/internal/decode"
	"github.com/gogpu/tacore/internal/pcw"
)

var depthFuncOverrideLEqual = DepthLEqual

// handlePolyParam implements the polygon parameter handler of §4.3. It
// reads the ISP/TSP/TCW words immediately following the PCW, translates
// them into SurfaceParams, applies the list-based overrides (order
// matters), resolves a texture if the PCW's texture bit is set, and
// stages a new surface. offset points at the PCW word itself.
func (tr *TR) handlePolyParam(ctx *Context, rc *RenderContext, st *trState, offset int, p pcw.PCW) {
	polyType := p.PolyType
	switch polyType {
	case 0, 1, 2, 5:
		// handled below
	case 6:
		// Modifier volume: no surface, no geometry (§7.2 non-goal).
		st.lastVertex = nil
		st.vertType = VertModVol
		return
	default:
		fail(ErrUnsupportedPolyType, "poly_type")
	}

	buf := ctx.Params
	isp := DecodeISP(readWord(buf, offset+4))
	tsp := DecodeTSP(readWord(buf, offset+8))
	tcw := DecodeTCW(readWord(buf, offset+12))

	payload := offset + 16
	switch polyType {
	case 1:
		st.faceColor = decode.ParseFloatColor(readF32(buf, payload), readF32(buf, payload+4), readF32(buf, payload+8), readF32(buf, payload+12))
	case 2:
		st.faceColor = decode.ParseFloatColor(readF32(buf, payload), readF32(buf, payload+4), readF32(buf, payload+8), readF32(buf, payload+12))
		st.faceOffsetColor = decode.ParseFloatColor(readF32(buf, payload+16), readF32(buf, payload+20), readF32(buf, payload+24), readF32(buf, payload+28))
	case 5:
		st.spriteColor = decode.ParsePackedColor(readWord(buf, payload))
		st.spriteOffsetColor = decode.ParsePackedColor(readWord(buf, payload+4))
	}

	st.lastVertex = nil
	st.vertType = VertType(p.VertType)
	st.firstVertOfStrip = len(rc.Verts)

	params := SurfaceParams{
		DepthWrite:         !isp.ZWriteDisable,
		DepthFunc:          isp.DepthCompare,
		Cull:               isp.CullingMode,
		SrcBlend:           tsp.SrcAlphaInstr,
		DstBlend:           tsp.DstAlphaInstr,
		ShadeMode:          tsp.ShadingInstr,
		IgnoreAlpha:        !tsp.UseAlpha,
		IgnoreTextureAlpha: tsp.IgnoreTexAlpha,
		OffsetColor:        p.Offset,
	}

	// List-based overrides; order matters (§4.3).
	if st.listType != ListTranslucent && st.listType != ListTranslucentModVol {
		params.SrcBlend = BlendNone
		params.DstBlend = BlendNone
	} else if ctx.Autosort {
		params.DepthFunc = depthFuncOverrideLEqual
	}
	if st.listType == ListPunchThrough {
		params.AlphaTest = true
		params.AlphaRef = ctx.AlphaRef
		params.DepthFunc = DepthGEqual
	}

	if p.Texture {
		params.Texture = tr.resolveTexture(tsp, tcw, ctx.PaletteFmt)
	}

	st.staged = Surface{Params: params, FirstVert: len(rc.Verts), NumVerts: 0}
}
