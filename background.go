package tacore

import "github.com/gogpu/tacore/internal/decode"

// parseBackground synthesizes the single opaque background quad (§4.2).
// It runs exactly once, before the stream driver's main walk.
func (tr *TR) parseBackground(ctx *Context, rc *RenderContext) {
	va, vb, vc := ctx.BGVertices[0], ctx.BGVertices[1], ctx.BGVertices[2]

	vd := Vertex{
		XYZ: [3]float32{
			decode.Parallelogram1(va.XYZ[0], vb.XYZ[0], vc.XYZ[0]),
			decode.Parallelogram1(va.XYZ[1], vb.XYZ[1], vc.XYZ[1]),
			decode.Parallelogram1(va.XYZ[2], vb.XYZ[2], vc.XYZ[2]),
		},
		Color:       va.Color,
		OffsetColor: va.OffsetColor,
	}
	if ctx.BGISP.Texture {
		vd.UV = [2]float32{
			decode.Parallelogram1(va.UV[0], vb.UV[0], vc.UV[0]),
			decode.Parallelogram1(va.UV[1], vb.UV[1], vc.UV[1]),
		}
	}

	params := SurfaceParams{
		DepthWrite: !ctx.BGISP.ZWriteDisable,
		DepthFunc:  ctx.BGISP.DepthCompare,
		Cull:       ctx.BGISP.CullingMode,
		SrcBlend:   BlendNone,
		DstBlend:   BlendNone,
	}
	if ctx.BGISP.Texture {
		params.Texture = tr.resolveTexture(ctx.BGTSP, ctx.BGTCW, ctx.PaletteFmt)
	}

	firstVert := rc.addVertex(Vertex{XYZ: va.XYZ, UV: va.UV, Color: va.Color, OffsetColor: va.OffsetColor})
	rc.addVertex(Vertex{XYZ: vb.XYZ, UV: vb.UV, Color: vb.Color, OffsetColor: vb.OffsetColor})
	rc.addVertex(Vertex{XYZ: vc.XYZ, UV: vc.UV, Color: vc.Color, OffsetColor: vc.OffsetColor})
	rc.addVertex(vd)

	surf := Surface{Params: params, FirstVert: firstVert, NumVerts: 4}
	idx := rc.addSurface(surf)
	list := &rc.Lists[ListOpaque]
	list.Surfs = append(list.Surfs, idx)
	list.NumOrigSurfs++
}
