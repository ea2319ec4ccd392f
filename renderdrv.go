package tacore

// renderOrder is the fixed list walk order of §4.9.
var renderOrder = [3]ListType{ListOpaque, ListPunchThrough, ListTranslucent}

// RenderUntil implements §4.9's render_until: streams rc to tr's
// backend, stopping after the surface at endSurf is drawn (endSurf ==
// -1 never stops early). End() is called unconditionally, even when the
// walk stops early.
func (tr *TR) RenderUntil(rc *RenderContext, endSurf int) {
	backend := tr.opts.backend
	backend.BeginTASurfaces(rc.Width, rc.Height, rc.Verts, rc.Indices)
	defer backend.EndTASurfaces()

	for _, lt := range renderOrder {
		for _, surfIdx := range rc.Lists[lt].Surfs {
			backend.DrawTASurface(rc.Surfs[surfIdx])
			if surfIdx == endSurf {
				return
			}
		}
	}
}

// Render implements §4.9's render(): equivalent to RenderUntil(rc, -1).
func (tr *TR) Render(rc *RenderContext) {
	tr.RenderUntil(rc, -1)
}
