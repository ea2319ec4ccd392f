package decode

import "math"

// UV16 decodes a pair of 16-bit UV halves as the hardware packs them: each
// half is placed in the high 16 bits of a 32-bit word and reinterpreted as
// a float (low 16 bits are zero — intentional, not a bug), and the two
// halves are swapped: the first wire field becomes uv[1], the second
// becomes uv[0].
func UV16(first, second uint16) (u, v float32) {
	v = math.Float32frombits(uint32(first) << 16)
	u = math.Float32frombits(uint32(second) << 16)
	return u, v
}
