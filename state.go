package tacore

// trState is the transient, per-conversion state §3 describes: the most
// recently parsed vertex, the current list/vertex type, and the face and
// sprite colors inherited by subsequent vertices. It is stack-allocated
// per conversion and discarded when Convert returns.
type trState struct {
	lastVertex *stagedVertex

	listType ListType
	vertType VertType

	faceColor       RGBA8
	faceOffsetColor RGBA8
	spriteColor     RGBA8
	spriteOffsetColor RGBA8

	// staged is the surface currently being built; it is appended to
	// RenderContext.Surfs only on commit (§4.6).
	staged Surface

	// firstVertOfStrip is the index into RenderContext.Verts where the
	// current strip's vertices began.
	firstVertOfStrip int
}

// stagedVertex records the PCW end-of-strip bit alongside the vertex
// itself, since the vertex parameter handler needs to know whether the
// *previous* vertex ended a strip before emitting the next one (§4.4).
type stagedVertex struct {
	vertex      Vertex
	endOfStrip  bool
}

func newTRState() *trState {
	return &trState{
		listType: ListNone,
		vertType: VertNone,
	}
}

func (s *trState) reset() {
	*s = trState{listType: ListNone, vertType: VertNone}
}
