package tacore

// ListType identifies one of the five TA render lists.
type ListType int

const (
	ListNone ListType = iota - 1
	ListOpaque
	ListOpaqueModVol
	ListTranslucent
	ListTranslucentModVol
	ListPunchThrough
	numLists = int(ListPunchThrough) + 1
)

func (lt ListType) String() string {
	switch lt {
	case ListOpaque:
		return "opaque"
	case ListOpaqueModVol:
		return "opaque_modvol"
	case ListTranslucent:
		return "translucent"
	case ListTranslucentModVol:
		return "translucent_modvol"
	case ListPunchThrough:
		return "punch_through"
	default:
		return "none"
	}
}

// VertType is one of the twelve vertex parameter encodings (VertModVol is
// the modifier-volume encoding, which the handler skips), or VertNone when
// no vertex type is active.
type VertType int

const (
	VertNone     VertType = -1
	VertPacked   VertType = 0
	VertFloat    VertType = 1
	VertIntensity VertType = 2
	VertUVPackedF  VertType = 3
	VertUVPacked16 VertType = 4
	VertUVFloatF   VertType = 5
	VertUVFloat16  VertType = 6
	VertUVIntensityF  VertType = 7
	VertUVIntensity16 VertType = 8
	VertSpriteA  VertType = 15
	VertSpriteB  VertType = 16
	VertModVol   VertType = 17
)

// DepthFunc is the depth comparison mode translated from isp.depth_compare_mode.
type DepthFunc int

const (
	DepthNever DepthFunc = iota
	DepthGreater
	DepthEqual
	DepthGEqual
	DepthLess
	DepthNEqual
	DepthLEqual
	DepthAlways
)

// CullMode is the culling mode translated from isp.culling_mode.
type CullMode int

const (
	CullNone CullMode = iota
	CullNoneDup
	CullBack
	CullFront
)

// BlendFactor is one of the eight TSP alpha instruction blend factors.
type BlendFactor int

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendOtherColor
	BlendInvOtherColor
	BlendSrcAlpha
	BlendInvSrcAlpha
	BlendDstAlpha
	BlendInvDstAlpha
)

// BlendNone is used to force "no blending" on opaque-family lists.
const BlendNone = BlendOne

// ShadeMode is the texture shading instruction.
type ShadeMode int

const (
	ShadeDecal ShadeMode = iota
	ShadeModulate
	ShadeDecalAlpha
	ShadeModulateAlpha
)

// TextureFilter is the sampler minification/magnification filter.
type TextureFilter int

const (
	FilterNearest TextureFilter = iota
	FilterBilinear
)

// TextureWrap is the sampler wrap mode for one axis.
type TextureWrap int

const (
	WrapRepeat TextureWrap = iota
	WrapClampToEdge
	WrapMirroredRepeat
)

// RGBA8 is a packed 0xAARRGGBB color decomposed into four bytes, stored
// here in [R, G, B, A] order to match the wire decomposition in §4.4.
type RGBA8 [4]byte

// SurfaceParams is the opaque bag of pipeline state used for the
// adjacent-surface equality merge in the index generator (§4.8). Two
// surfaces merge only when every field here compares equal.
type SurfaceParams struct {
	DepthWrite          bool
	DepthFunc           DepthFunc
	Cull                CullMode
	SrcBlend            BlendFactor
	DstBlend            BlendFactor
	ShadeMode           ShadeMode
	IgnoreAlpha         bool
	IgnoreTextureAlpha  bool
	OffsetColor         bool
	AlphaTest           bool
	AlphaRef            uint8
	Texture             TextureHandle
}

// Surface is a draw unit sharing one pipeline state (§3).
type Surface struct {
	Params SurfaceParams

	// FirstVert/NumVerts index into RenderContext.Verts before index
	// generation runs, and into RenderContext.Indices afterward.
	FirstVert int
	NumVerts  int

	// StripOffset is this surface's position within the original triangle
	// strip (0 for the first triangle); it selects CCW winding in §4.8.
	StripOffset int
}

// Vertex is one TA vertex: position, texture coordinate, and two packed
// colors (base and offset).
type Vertex struct {
	XYZ         [3]float32
	UV          [2]float32
	Color       RGBA8
	OffsetColor RGBA8
}

// ParamTrace is one diagnostic entry recorded per parsed stream command.
type ParamTrace struct {
	Offset    int
	ListType  ListType
	VertType  VertType
	LastSurf  int
	LastVert  int
}

// TextureHandle is an opaque backend texture handle. Zero means "no
// texture bound".
type TextureHandle uint64
