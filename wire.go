package tacore

import "math"

// readF32 reads a little-endian 32-bit word and reinterprets it as an
// IEEE-754 float, per this module's word-based capture wire format
// (internal/pcw/stride.go).
func readF32(buf []byte, offset int) float32 {
	return math.Float32frombits(readWord(buf, offset))
}
