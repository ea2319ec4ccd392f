package decode

// Parallelogram1 completes a quad's fourth point along one axis by
// parallelogram completion: d = b + (b - a) + (c - a). The background
// quad (§4.2) applies this per-component across position and UV; the
// sprite (§4.4) uses the two-axis form below for its UV.
func Parallelogram1(a, b, c float32) float32 {
	return b + (b - a) + (c - a)
}

// ParallelogramXY applies Parallelogram1 to both axes of a 2D point:
// d = b + (b - a) + (c - a) per component, the same completion the
// background quad (§4.2) applies per component via Parallelogram1.
func ParallelogramXY(ax, ay, bx, by, cx, cy float32) (dx, dy float32) {
	return Parallelogram1(ax, bx, cx), Parallelogram1(ay, by, cy)
}

// ParallelogramB completes a quad's fourth point opposite b, given
// adjacent points a and c: d = b + (a - b) + (c - b). The sprite's
// missing UV (§4.4) is completed opposite its second read vertex, not
// its first, unlike the background quad's Parallelogram1.
func ParallelogramB(a, b, c float32) float32 {
	return b + (a - b) + (c - b)
}

// SpriteUV completes a sprite's fourth 2D UV opposite b (§4.4).
func SpriteUV(au, av, bu, bv, cu, cv float32) (du, dv float32) {
	return ParallelogramB(au, bu, cu), ParallelogramB(av, bv, cv)
}

// PlaneFitZ solves for the missing Z of a fourth point (dx, dy) given the
// plane through three complete points a, b, c (§4.4). The plane normal is
// n = cross(a-b, c-b); ok is false if the points are degenerate (|n| == 0
// or n.z == 0), in which case the caller must drop the sprite rather than
// divide by zero.
func PlaneFitZ(ax, ay, az, bx, by, bz, cx, cy, cz, dx, dy float32) (z float32, ok bool) {
	abx, aby, abz := ax-bx, ay-by, az-bz
	cbx, cby, cbz := cx-bx, cy-by, cz-bz

	nx := aby*cbz - abz*cby
	ny := abz*cbx - abx*cbz
	nz := abx*cby - aby*cbx

	if nx == 0 && ny == 0 && nz == 0 {
		return 0, false
	}
	if nz == 0 {
		return 0, false
	}

	d := nx*bx + ny*by + nz*bz
	z = (d - nx*dx - ny*dy) / nz
	return z, true
}
