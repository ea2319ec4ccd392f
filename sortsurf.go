package tacore

// sortList implements the surface sort of §4.7: a stable merge sort of
// a translucent/punch-through list's surfaces by minz, using an
// auxiliary buffer of equal size (the reference C algorithm is
// preserved rather than replaced with sort.SliceStable — see
// DESIGN.md). tr.sortTmp, tr.sortMinZ, and tr.sortTmpZ are TR-owned
// scratch arrays reused across conversions but never shared across TR
// instances (§5, §9).
func (tr *TR) sortList(rc *RenderContext, lt ListType) {
	list := &rc.Lists[lt]
	n := len(list.Surfs)
	if n < 2 {
		return
	}

	if cap(tr.sortMinZ) < n {
		tr.sortMinZ = make([]float32, n)
	}
	minZ := tr.sortMinZ[:n]
	for i, surfIdx := range list.Surfs {
		s := rc.Surfs[surfIdx]
		if s.NumVerts != 3 {
			fail(ErrSortVertCount, "sort input surface")
		}
		v0 := rc.Verts[s.FirstVert].XYZ[2]
		v1 := rc.Verts[s.FirstVert+1].XYZ[2]
		v2 := rc.Verts[s.FirstVert+2].XYZ[2]
		minZ[i] = min3(v0, v1, v2)
	}

	if cap(tr.sortTmp) < n {
		tr.sortTmp = make([]int, n)
	}
	tmp := tr.sortTmp[:n]

	if cap(tr.sortTmpZ) < n {
		tr.sortTmpZ = make([]float32, n)
	}
	tmpZ := tr.sortTmpZ[:n]

	mergeSortSurfs(list.Surfs, minZ, tmp, tmpZ)
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// mergeSortSurfs stably sorts surfs ascending by the parallel minZ
// array, using tmp/tmpZ as scratch. minZ is permuted alongside surfs so
// the key for index i always matches surfs[i].
func mergeSortSurfs(surfs []int, minZ []float32, tmp []int, tmpZ []float32) {
	n := len(surfs)
	if n < 2 {
		return
	}
	var sort func(lo, hi int)
	sort = func(lo, hi int) {
		if hi-lo < 2 {
			return
		}
		mid := (lo + hi) / 2
		sort(lo, mid)
		sort(mid, hi)

		i, j, k := lo, mid, lo
		for i < mid && j < hi {
			if minZ[i] <= minZ[j] {
				tmp[k] = surfs[i]
				tmpZ[k] = minZ[i]
				i++
			} else {
				tmp[k] = surfs[j]
				tmpZ[k] = minZ[j]
				j++
			}
			k++
		}
		for i < mid {
			tmp[k] = surfs[i]
			tmpZ[k] = minZ[i]
			i++
			k++
		}
		for j < hi {
			tmp[k] = surfs[j]
			tmpZ[k] = minZ[j]
			j++
			k++
		}
		copy(surfs[lo:hi], tmp[lo:hi])
		copy(minZ[lo:hi], tmpZ[lo:hi])
	}
	sort(0, n)
}
