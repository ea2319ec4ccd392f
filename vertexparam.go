package tacore

import (
	"github.com/gogpu/tacore/internal/decode"
	"github.com/gogpu/tacore/internal/pcw"
)

// handleVertexParam implements the vertex parameter handler of §4.4:
// strip-boundary bookkeeping, the twelve vertex encodings, sprite
// quad synthesis, and strip commit on end-of-strip.
func (tr *TR) handleVertexParam(ctx *Context, rc *RenderContext, st *trState, offset int, p pcw.PCW) {
	if st.lastVertex != nil && st.lastVertex.endOfStrip {
		st.staged = Surface{
			Params:    st.staged.Params,
			FirstVert: len(rc.Verts),
			NumVerts:  0,
		}
	}

	buf := ctx.Params
	vertType := VertType(p.VertType)
	st.vertType = vertType

	switch vertType {
	case VertSpriteA, VertSpriteB:
		tr.emitSprite(rc, st, buf, offset, p)
		return
	case VertModVol:
		return
	}

	x, y, z := readF32(buf, offset+4), readF32(buf, offset+8), readF32(buf, offset+12)
	v := Vertex{XYZ: [3]float32{x, y, z}}

	switch vertType {
	case VertPacked:
		v.Color = decode.ParsePackedColor(readWord(buf, offset+16))
	case VertFloat:
		v.Color = decode.ParseFloatColor(readF32(buf, offset+16), readF32(buf, offset+20), readF32(buf, offset+24), readF32(buf, offset+28))
	case VertIntensity:
		v.Color = decode.ModulateIntensity(st.faceColor, readF32(buf, offset+16))
	case VertUVPackedF:
		v.UV = [2]float32{readF32(buf, offset+16), readF32(buf, offset+20)}
		v.Color = decode.ParsePackedColor(readWord(buf, offset+24))
		v.OffsetColor = decode.ParsePackedColor(readWord(buf, offset+28))
	case VertUVPacked16:
		v.UV[0], v.UV[1] = decode.UV16(uint16(readWord(buf, offset+16)), uint16(readWord(buf, offset+20)))
		v.Color = decode.ParsePackedColor(readWord(buf, offset+24))
		v.OffsetColor = decode.ParsePackedColor(readWord(buf, offset+28))
	case VertUVFloatF:
		v.UV = [2]float32{readF32(buf, offset+16), readF32(buf, offset+20)}
		v.Color = decode.ParseFloatColor(readF32(buf, offset+24), readF32(buf, offset+28), readF32(buf, offset+32), readF32(buf, offset+36))
		v.OffsetColor = decode.ParseFloatColor(readF32(buf, offset+40), readF32(buf, offset+44), readF32(buf, offset+48), readF32(buf, offset+52))
	case VertUVFloat16:
		v.UV[0], v.UV[1] = decode.UV16(uint16(readWord(buf, offset+16)), uint16(readWord(buf, offset+20)))
		v.Color = decode.ParseFloatColor(readF32(buf, offset+24), readF32(buf, offset+28), readF32(buf, offset+32), readF32(buf, offset+36))
		v.OffsetColor = decode.ParseFloatColor(readF32(buf, offset+40), readF32(buf, offset+44), readF32(buf, offset+48), readF32(buf, offset+52))
	case VertUVIntensityF:
		v.UV = [2]float32{readF32(buf, offset+16), readF32(buf, offset+20)}
		v.Color = decode.ModulateIntensity(st.faceColor, readF32(buf, offset+24))
		v.OffsetColor = decode.ModulateIntensity(st.faceOffsetColor, readF32(buf, offset+28))
	case VertUVIntensity16:
		v.UV[0], v.UV[1] = decode.UV16(uint16(readWord(buf, offset+16)), uint16(readWord(buf, offset+20)))
		v.Color = decode.ModulateIntensity(st.faceColor, readF32(buf, offset+24))
		v.OffsetColor = decode.ModulateIntensity(st.faceOffsetColor, readF32(buf, offset+28))
	default:
		fail(ErrUnsupportedVertType, "vert_type")
	}

	rc.addVertex(v)
	st.staged.NumVerts++
	st.lastVertex = &stagedVertex{vertex: v, endOfStrip: p.EndOfStrip}

	if p.EndOfStrip {
		tr.commitSurface(rc, st)
	}
}

// emitSprite implements the sprite quad synthesis of §4.4 for vert_type
// 15/16. The record supplies three full vertices, read here as a
// (bottom-left), b (top-left), and c (top-right); the fourth corner,
// bottom-right, is computed from the plane through a, b, c and emitted
// between b and c, not after c — the quad is fed as the tristrip
// (bottom-left, top-left, bottom-right, top-right), matching the
// reservation order of the reference tr_parse_vert_param's sprite case.
// End-of-strip must be set; otherwise fatal.
func (tr *TR) emitSprite(rc *RenderContext, st *trState, buf []byte, offset int, p pcw.PCW) {
	if !p.EndOfStrip {
		fail(ErrSpriteMissingEOS, "sprite vertex")
	}

	readCorner := func(o int) (xyz [3]float32, uv [2]float32) {
		xyz = [3]float32{readF32(buf, o), readF32(buf, o+4), readF32(buf, o+8)}
		uv = [2]float32{readF32(buf, o+12), readF32(buf, o+16)}
		return
	}

	aXYZ, aUV := readCorner(offset + 4)
	bXYZ, bUV := readCorner(offset + 4 + 20)
	cXYZ, cUV := readCorner(offset + 4 + 40)
	dx := readF32(buf, offset+4+60)
	dy := readF32(buf, offset+4+64)

	dz, ok := decode.PlaneFitZ(
		aXYZ[0], aXYZ[1], aXYZ[2],
		bXYZ[0], bXYZ[1], bXYZ[2],
		cXYZ[0], cXYZ[1], cXYZ[2],
		dx, dy,
	)
	if !ok {
		Logger().Warn("tacore: dropping degenerate sprite", "offset", offset)
		return
	}
	duU, duV := decode.SpriteUV(aUV[0], aUV[1], bUV[0], bUV[1], cUV[0], cUV[1])

	corners := [4]Vertex{
		{XYZ: aXYZ, UV: aUV},
		{XYZ: bXYZ, UV: bUV},
		{XYZ: [3]float32{dx, dy, dz}, UV: [2]float32{duU, duV}},
		{XYZ: cXYZ, UV: cUV},
	}
	for i := range corners {
		corners[i].Color = st.spriteColor
		corners[i].OffsetColor = st.spriteOffsetColor
		rc.addVertex(corners[i])
	}
	st.staged.NumVerts += 4
	st.lastVertex = &stagedVertex{vertex: corners[3], endOfStrip: true}

	tr.commitSurface(rc, st)
}
