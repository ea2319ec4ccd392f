package tacore

// ISP packs the image-synthesis-processor register fields that the
// polygon parameter handler and background parser translate into surface
// state (§4.3, §4.2).
type ISP struct {
	ZWriteDisable bool
	DepthCompare  DepthFunc
	CullingMode   CullMode
	Texture       bool
	Offset        bool
}

// TSP packs the texture-shading-parameter register fields consulted by
// the polygon parameter handler and texture resolver (§4.3, §4.5).
type TSP struct {
	SrcAlphaInstr  BlendFactor
	DstAlphaInstr  BlendFactor
	ShadingInstr   ShadeMode
	UseAlpha       bool
	IgnoreTexAlpha bool
	FilterMode     int // 0 = nearest, nonzero = bilinear
	ClampU, ClampV bool
	FlipU, FlipV   bool
}

// TCW packs the texture-control-word register fields that select the
// texture's format, size, and stride (§4.5).
type TCW struct {
	Format     TextureFormat
	Mipmaps    bool
	Width      int
	Height     int
	Stride     int
	Addr       uint32
	PaletteFmt PaletteFormat
}

// TextureFormat is the on-chip pixel encoding the decoder must be told
// about, mapping to the four mipmap-offset-table categories of §4.5.
type TextureFormat int

const (
	FormatTwiddledCompressed TextureFormat = iota
	FormatPaletted4BPP
	FormatPaletted8BPP
	FormatNonPaletted
)

// PaletteFormat selects the palette RAM pixel layout for paletted formats.
type PaletteFormat int

const (
	PaletteARGB1555 PaletteFormat = iota
	PaletteRGB565
	PaletteARGB4444
	PaletteARGB8888
)

// BGVertex is one of the three fully-supplied background quad vertices
// consumed by the background parser (§4.2).
type BGVertex struct {
	XYZ         [3]float32
	UV          [2]float32
	Color       RGBA8
	OffsetColor RGBA8
}

// Context is the TA front-end's output: a command buffer plus the fixed
// fields needed to interpret it (§6).
type Context struct {
	// Params is the tagged binary parameter stream (§4.1). Size is the
	// number of valid bytes in Params (which may be smaller than len).
	Params []byte
	Size   int

	BGVertices [3]BGVertex
	BGISP      ISP
	BGTSP      TSP
	BGTCW      TCW

	PaletteFmt PaletteFormat
	Stride     int
	AlphaRef   uint8
	Autosort   bool

	VideoWidth  int
	VideoHeight int
}
