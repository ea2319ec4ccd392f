package pcw

// This module's capture wire format stores every field as a 4-byte
// little-endian word (floats as IEEE-754 bit patterns, colors as packed
// uint32, 16-bit UV halves as a uint32 with the value in the low 16
// bits). That uniform word size keeps the variable-stride table below a
// simple function of (para_type, poly_type, vert_type) in WORDS; stride
// driver code converts to bytes by multiplying by 4.

// PolyWords is the word count (including the leading PCW word) of a
// polygon/sprite parameter record for a given poly_type (§4.3).
func PolyWords(polyType uint8) int {
	const base = 4 // PCW, ISP, TSP, TCW
	switch polyType {
	case 0:
		return base
	case 1:
		return base + 4 // face color (4 floats)
	case 2:
		return base + 8 // face color + face offset color (8 floats)
	case 5:
		return base + 2 // sprite color + sprite offset color (2 packed words)
	case 6:
		return base // modifier volume, no extra payload
	default:
		return base
	}
}

// VertexWords is the word count (including the leading PCW word) of a
// vertex parameter record for a given vert_type (§4.4).
func VertexWords(vertType uint8) int {
	const xyzBase = 4 // PCW + xyz (3 words)
	switch vertType {
	case 0:
		return xyzBase + 1 // packed color
	case 1:
		return xyzBase + 4 // float rgba
	case 2:
		return xyzBase + 1 // intensity
	case 3:
		return xyzBase + 2 + 2 // uv + packed base/offset color
	case 4:
		return xyzBase + 2 + 2 // uv16 (2 words) + packed base/offset color
	case 5:
		return xyzBase + 2 + 8 // uv + float base/offset color
	case 6:
		return xyzBase + 2 + 8 // uv16 + float base/offset color
	case 7:
		return xyzBase + 2 + 2 // uv + base/offset intensity
	case 8:
		return xyzBase + 2 + 2 // uv16 + base/offset intensity
	case 15, 16:
		// PCW + 3 full vertices (xyz 3 words + uv 2 words each) + 4th vertex xy.
		return 1 + 3*(3+2) + 2
	case 17:
		return xyzBase // modifier volume, no extra payload read
	default:
		return xyzBase
	}
}

// ControlWords is the word count of a control parameter (END_OF_LIST,
// USER_TILE_CLIP); OBJ_LIST_SET is fatal before its stride matters.
func ControlWords(pt ParaType) int {
	switch pt {
	case ParaEndOfList:
		return 1
	case ParaUserTileClip:
		return 5
	default:
		return 1
	}
}

// Stride returns the number of bytes to advance the stream offset past
// this parameter, per §4.1's "variable stride computed from (pcw,
// vert_type)".
func Stride(p PCW) int {
	var words int
	switch p.ParaType {
	case ParaEndOfList, ParaUserTileClip, ParaObjListSet:
		words = ControlWords(p.ParaType)
	case ParaPolyOrVol, ParaSprite:
		words = PolyWords(p.PolyType)
	case ParaVertex:
		words = VertexWords(p.VertType)
	default:
		words = 1
	}
	return words * 4
}
