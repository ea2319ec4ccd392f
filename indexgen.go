package tacore

// mergeAndIndex implements the index generator of §4.8: run-length
// merges adjacent surfaces in a list sharing identical SurfaceParams,
// emits a CCW triangle index array for the merged run, and compacts the
// list's surface-index array down to one entry per merged group.
func (tr *TR) mergeAndIndex(rc *RenderContext, lt ListType) {
	list := &rc.Lists[lt]
	surfs := list.Surfs
	if len(surfs) == 0 {
		return
	}

	merged := make([]int, 0, len(surfs))

	i := 0
	for i < len(surfs) {
		first := surfs[i]
		params := rc.Surfs[first].Params
		firstIndex := len(rc.Indices)

		j := i
		for j < len(surfs) && rc.Surfs[surfs[j]].Params == params {
			s := rc.Surfs[surfs[j]]
			for t := 0; t < s.NumVerts-2; t++ {
				v := uint32(s.FirstVert + t)
				if (s.StripOffset+t)%2 != 0 {
					rc.addIndex(v)
					rc.addIndex(v + 1)
					rc.addIndex(v + 2)
				} else {
					rc.addIndex(v)
					rc.addIndex(v + 2)
					rc.addIndex(v + 1)
				}
			}
			j++
		}

		rc.Surfs[first].FirstVert = firstIndex
		rc.Surfs[first].NumVerts = len(rc.Indices) - firstIndex
		merged = append(merged, first)

		i = j
	}

	list.Surfs = merged
}
