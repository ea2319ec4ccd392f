package tacore

// commitSurface implements the surface commit of §4.6: append the
// staged surface into its list's surface array, splitting translucent
// and punch-through strips into one surface per triangle so they can be
// depth-sorted independently.
func (tr *TR) commitSurface(rc *RenderContext, st *trState) {
	list := &rc.Lists[st.listType]
	surf := st.staged

	switch st.listType {
	case ListTranslucent, ListTranslucentModVol, ListPunchThrough:
		for i := 0; i < surf.NumVerts-2; i++ {
			tri := surf
			tri.StripOffset = i
			tri.FirstVert = surf.FirstVert + i
			tri.NumVerts = 3
			idx := rc.addSurface(tri)
			list.Surfs = append(list.Surfs, idx)
		}
	default:
		idx := rc.addSurface(surf)
		list.Surfs = append(list.Surfs, idx)
	}

	list.NumOrigSurfs++
}
