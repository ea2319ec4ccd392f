package tacore

import "github.com/gogpu/tacore/internal/pcw"

// walkStream implements the stream driver of §4.1: walks ctx.Params from
// offset 0 to ctx.Size, decoding and dispatching each parameter by tag.
func (tr *TR) walkStream(ctx *Context, rc *RenderContext, st *trState) {
	log := tr.logger()
	offset := 0
	for offset < ctx.Size {
		word := readWord(ctx.Params, offset)
		p := pcw.Decode(word)

		if listTypeValidInContext(st, p) {
			st.listType = ListType(p.ListType)
		}

		switch p.ParaType {
		case pcwEndOfList:
			st.lastVertex = nil
			st.listType = ListNone
			st.vertType = VertNone
		case pcwUserTileClip:
			// Ignored (§4.1).
		case pcwObjListSet:
			fail(ErrObjListSet, "OBJ_LIST_SET in stream")
		case pcwPolyOrVol, pcwSprite:
			tr.handlePolyParam(ctx, rc, st, offset, p)
		case pcwVertex:
			tr.handleVertexParam(ctx, rc, st, offset, p)
		}

		rc.Params = append(rc.Params, ParamTrace{
			Offset:   offset,
			ListType: st.listType,
			VertType: st.vertType,
			LastSurf: len(rc.Surfs) - 1,
			LastVert: len(rc.Verts) - 1,
		})

		log.Debug("tacore: stream param",
			"offset", offset,
			"para_type", p.ParaType,
			"list_type", st.listType,
			"vert_type", st.vertType,
		)

		offset += pcw.Stride(p)
	}
}

// Re-exported tags for readability at call sites; internal/pcw owns the
// canonical values (§9 "bit extraction belongs in one place").
const (
	pcwEndOfList    = pcw.ParaEndOfList
	pcwUserTileClip = pcw.ParaUserTileClip
	pcwObjListSet   = pcw.ParaObjListSet
	pcwPolyOrVol    = pcw.ParaPolyOrVol
	pcwSprite       = pcw.ParaSprite
	pcwVertex       = pcw.ParaVertex
)

// listTypeValidInContext implements §9's Open Question 3 resolution:
// "valid in current context" is taken to mean no list is currently
// active, i.e. a new list is only adopted between END_OF_LIST (or
// start-of-stream) and the next poly/vertex parameter.
func listTypeValidInContext(st *trState, p pcw.PCW) bool {
	return st.listType == ListNone
}
