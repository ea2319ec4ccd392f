package tacore

// Backend is the render backend collaborator (§6): it receives finished
// surfaces and an index buffer and performs device upload and drawing.
// Shaped after the teacher's render.DeviceHandle/render.Texture
// create/destroy-lifecycle and gpucore's explicit Begin/End pipeline
// stages, adapted to the TA's simpler opaque-handle semantics.
//
// The core never calls a Backend method concurrently and makes no
// assumption about its thread-safety (§5).
type Backend interface {
	// CreateTexture uploads decoded RGBA8 pixels and returns an opaque
	// handle. Called only from the texture resolver (§4.5).
	CreateTexture(width, height int, filter TextureFilter, wrapU, wrapV TextureWrap, pixels []byte) (TextureHandle, error)

	// DestroyTexture releases a handle previously returned by
	// CreateTexture. Called when a cache entry is replaced while dirty.
	DestroyTexture(h TextureHandle)

	// BeginTASurfaces starts a render pass over the finished vertex and
	// index buffers (§4.9).
	BeginTASurfaces(width, height int, verts []Vertex, indices []uint32)

	// DrawTASurface issues one surface's draw call within the pass
	// opened by BeginTASurfaces.
	DrawTASurface(s Surface)

	// EndTASurfaces closes the render pass opened by BeginTASurfaces.
	// Called unconditionally, even if render_until stopped early (§4.9).
	EndTASurfaces()
}

// TextureDecoder is the external texture-pixel-decoding collaborator
// (§6): given the TCW's format fields and a palette format, it fills dst
// with RGBA8 bytes and reports the decoded width/height.
type TextureDecoder interface {
	Decode(dst []byte, tcw TCW, paletteFmt PaletteFormat) (width, height int, err error)
}

// maxTextureScratch bounds a single decode: 1024x1024 RGBA8 (§4.5).
const maxTextureScratch = 1024 * 1024 * 4

// TextureCache is the memoized-decode-and-upload collaborator of §4.5,
// keyed by the packed (tsp, tcw) register pair. texcache.Cache is the
// concrete implementation (§11.1); callers may supply their own for
// testing via a fake.
type TextureCache interface {
	Resolve(tsp TSP, tcw TCW, paletteFmt PaletteFormat, decoder TextureDecoder, backend Backend) (TextureHandle, error)
}
