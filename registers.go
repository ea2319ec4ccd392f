package tacore

import "encoding/binary"

// This module's capture format encodes ISP/TSP/TCW each as a single
// 32-bit little-endian word, decoded here in one place (§9 "Tagged-union
// PCW decoding" applies equally to these sibling registers). The raw
// bit-field values are defined to match this package's enum orderings
// exactly (DepthFunc, CullMode, BlendFactor, ShadeMode), so decoding is
// a direct cast with no separate translation table — the table in §4.3
// is this ordering.

const (
	ispBitZWriteDisable = 0
	ispShiftDepthFunc   = 1
	ispMaskDepthFunc    = 0x7
	ispShiftCull        = 4
	ispMaskCull         = 0x3
	ispBitTexture       = 6
	ispBitOffset        = 7
)

// DecodeISP unpacks a raw 32-bit ISP register word.
func DecodeISP(word uint32) ISP {
	return ISP{
		ZWriteDisable: word&(1<<ispBitZWriteDisable) != 0,
		DepthCompare:  DepthFunc((word >> ispShiftDepthFunc) & ispMaskDepthFunc),
		CullingMode:   CullMode((word >> ispShiftCull) & ispMaskCull),
		Texture:       word&(1<<ispBitTexture) != 0,
		Offset:        word&(1<<ispBitOffset) != 0,
	}
}

const (
	tspShiftSrcBlend = 0
	tspMaskBlend     = 0x7
	tspShiftDstBlend = 3
	tspShiftShade    = 6
	tspMaskShade     = 0x3
	tspBitUseAlpha   = 8
	tspBitIgnoreTex  = 9
	tspBitFilter     = 10
	tspBitClampU     = 11
	tspBitClampV     = 12
	tspBitFlipU      = 13
	tspBitFlipV      = 14
)

// DecodeTSP unpacks a raw 32-bit TSP register word.
func DecodeTSP(word uint32) TSP {
	filter := 0
	if word&(1<<tspBitFilter) != 0 {
		filter = 1
	}
	return TSP{
		SrcAlphaInstr:  BlendFactor((word >> tspShiftSrcBlend) & tspMaskBlend),
		DstAlphaInstr:  BlendFactor((word >> tspShiftDstBlend) & tspMaskBlend),
		ShadingInstr:   ShadeMode((word >> tspShiftShade) & tspMaskShade),
		UseAlpha:       word&(1<<tspBitUseAlpha) != 0,
		IgnoreTexAlpha: word&(1<<tspBitIgnoreTex) != 0,
		FilterMode:     filter,
		ClampU:         word&(1<<tspBitClampU) != 0,
		ClampV:         word&(1<<tspBitClampV) != 0,
		FlipU:          word&(1<<tspBitFlipU) != 0,
		FlipV:          word&(1<<tspBitFlipV) != 0,
	}
}

const (
	tcwMaskAddr        = 0x1FFFFF // 21 bits
	tcwBitMipmaps      = 21
	tcwShiftFormat     = 22
	tcwMaskFormat      = 0x3
	tcwShiftPaletteFmt = 24
	tcwMaskPaletteFmt  = 0x3
	tcwShiftWidthClass = 26
	tcwMaskSizeClass   = 0x7
	tcwShiftHeightClass = 29
)

// sizeClassToPixels maps a 3-bit size class to a side length, per §4.5's
// mipmap offset tables indexed by log2(side length) from 8 to 1024.
func sizeClassToPixels(class uint32) int {
	return 8 << class
}

// DecodeTCW unpacks a raw 32-bit TCW register word.
func DecodeTCW(word uint32) TCW {
	widthClass := (word >> tcwShiftWidthClass) & tcwMaskSizeClass
	heightClass := (word >> tcwShiftHeightClass) & tcwMaskSizeClass
	width := sizeClassToPixels(widthClass)
	return TCW{
		Format:     TextureFormat((word >> tcwShiftFormat) & tcwMaskFormat),
		Mipmaps:    word&(1<<tcwBitMipmaps) != 0,
		Width:      width,
		Height:     sizeClassToPixels(heightClass),
		Stride:     width,
		Addr:       word & tcwMaskAddr,
		PaletteFmt: PaletteFormat((word >> tcwShiftPaletteFmt) & tcwMaskPaletteFmt),
	}
}

// EncodeISP is the inverse of DecodeISP, used by the capture writer.
func EncodeISP(isp ISP) uint32 {
	var w uint32
	if isp.ZWriteDisable {
		w |= 1 << ispBitZWriteDisable
	}
	w |= uint32(isp.DepthCompare&ispMaskDepthFunc) << ispShiftDepthFunc
	w |= uint32(isp.CullingMode&ispMaskCull) << ispShiftCull
	if isp.Texture {
		w |= 1 << ispBitTexture
	}
	if isp.Offset {
		w |= 1 << ispBitOffset
	}
	return w
}

// EncodeTSP is the inverse of DecodeTSP, used by the capture writer.
func EncodeTSP(tsp TSP) uint32 {
	var w uint32
	w |= uint32(tsp.SrcAlphaInstr&tspMaskBlend) << tspShiftSrcBlend
	w |= uint32(tsp.DstAlphaInstr&tspMaskBlend) << tspShiftDstBlend
	w |= uint32(tsp.ShadingInstr&tspMaskShade) << tspShiftShade
	if tsp.UseAlpha {
		w |= 1 << tspBitUseAlpha
	}
	if tsp.IgnoreTexAlpha {
		w |= 1 << tspBitIgnoreTex
	}
	if tsp.FilterMode != 0 {
		w |= 1 << tspBitFilter
	}
	if tsp.ClampU {
		w |= 1 << tspBitClampU
	}
	if tsp.ClampV {
		w |= 1 << tspBitClampV
	}
	if tsp.FlipU {
		w |= 1 << tspBitFlipU
	}
	if tsp.FlipV {
		w |= 1 << tspBitFlipV
	}
	return w
}

// pixelsToSizeClass is the inverse of sizeClassToPixels, rounding up to
// the nearest supported side length.
func pixelsToSizeClass(pixels int) uint32 {
	class := uint32(0)
	for (8 << class) < pixels {
		class++
	}
	return class
}

// EncodeTCW is the inverse of DecodeTCW, used by the capture writer.
func EncodeTCW(tcw TCW) uint32 {
	w := tcw.Addr & tcwMaskAddr
	if tcw.Mipmaps {
		w |= 1 << tcwBitMipmaps
	}
	w |= uint32(tcw.Format&tcwMaskFormat) << tcwShiftFormat
	w |= uint32(tcw.PaletteFmt&tcwMaskPaletteFmt) << tcwShiftPaletteFmt
	w |= pixelsToSizeClass(tcw.Width) << tcwShiftWidthClass
	w |= pixelsToSizeClass(tcw.Height) << tcwShiftHeightClass
	return w
}

// readWord reads a little-endian 32-bit word at the given byte offset.
func readWord(buf []byte, offset int) uint32 {
	return binary.LittleEndian.Uint32(buf[offset : offset+4])
}
