// Package pcw decodes the 32-bit parameter control word that prefixes
// every command in the TA stream, and the fixed-stride table the stream
// driver uses to advance past each parameter kind.
//
// Ported in spirit (not in code) from the teacher's PTCL reader
// (internal/gpu/tilecompute/ptcl.go): a tagged stream of fixed-width
// words read by a small ReadXxx family of functions, one per tag. Bit
// extraction lives in exactly one place here, per the tagged-union
// decoding design note.
package pcw

import "encoding/binary"

// ParaType is the PCW's command tag field.
type ParaType uint8

const (
	ParaEndOfList ParaType = iota
	ParaUserTileClip
	ParaObjListSet
	ParaPolyOrVol
	ParaSprite
	ParaVertex
)

// PCW is the decoded 32-bit parameter control word (§6).
type PCW struct {
	UV16Bit     bool
	Gouraud     bool
	Offset      bool
	Texture     bool
	ListType    uint8 // 3 bits, raw list-type field
	ParaType    ParaType
	EndOfStrip  bool
	PolyType    uint8 // valid only when ParaType is PolyOrVol/Sprite
	VertType    uint8 // valid only when ParaType is Vertex
}

// Bit layout, LSB to MSB. Positions are this module's own wire contract
// with the front-end (§6: "exact bit positions ... are not redefined
// here" refers to the *hardware's* bit positions; this is our capture
// format's equivalent, fixed for the lifetime of this module).
const (
	bitUV16Bit = 0
	bitGouraud = 1
	bitOffset  = 2
	bitTexture = 3

	shiftListType = 4
	maskListType  = 0x7

	shiftParaType = 7
	maskParaType  = 0x7

	bitEndOfStrip = 10

	shiftPolyType = 11
	maskPolyType  = 0x7

	shiftVertType = 14
	maskVertType  = 0x1F
)

// Decode unpacks a raw 32-bit PCW word.
func Decode(word uint32) PCW {
	return PCW{
		UV16Bit:    word&(1<<bitUV16Bit) != 0,
		Gouraud:    word&(1<<bitGouraud) != 0,
		Offset:     word&(1<<bitOffset) != 0,
		Texture:    word&(1<<bitTexture) != 0,
		ListType:   uint8((word >> shiftListType) & maskListType),
		ParaType:   ParaType((word >> shiftParaType) & maskParaType),
		EndOfStrip: word&(1<<bitEndOfStrip) != 0,
		PolyType:   uint8((word >> shiftPolyType) & maskPolyType),
		VertType:   uint8((word >> shiftVertType) & maskVertType),
	}
}

// ReadWord reads a little-endian 32-bit word at the given offset.
func ReadWord(buf []byte, offset int) uint32 {
	return binary.LittleEndian.Uint32(buf[offset : offset+4])
}
