package tacore

import "sync"

// defaultCache is the private, unshared texture cache a TR constructs
// for itself when WithTextureCache is not supplied (§10.3). It
// implements the same §4.5 algorithm as texcache.Cache; it lives in
// this package (rather than importing texcache) because texcache
// itself imports tacore for the TSP/TCW/Backend/TextureDecoder types,
// and this package cannot import back without a cycle. Callers who
// want a cache shared across multiple TR instances (§5, §11.1) inject
// a *texcache.Cache via WithTextureCache instead.
type defaultCache struct {
	mu      sync.Mutex
	entries map[uint64]*cacheEntry

	// scratch is the owning TR's decode buffer (tr.go), reused across
	// every Resolve call on this cache since it is never shared across
	// TR instances and Resolve holds mu for its whole body.
	scratch []byte
}

type cacheEntry struct {
	handle TextureHandle
	dirty  bool
	width  int
	height int
}

func newDefaultCache(scratch []byte) TextureCache {
	return &defaultCache{entries: make(map[uint64]*cacheEntry), scratch: scratch}
}

func texKey(tsp TSP, tcw TCW) uint64 {
	low := uint32(tcw.Format) | uint32(tcw.Width)<<2 | uint32(tcw.Height)<<13
	if tcw.Mipmaps {
		low |= 1 << 24
	}
	if tsp.FilterMode != 0 {
		low |= 1 << 25
	}
	if tsp.ClampU {
		low |= 1 << 26
	}
	if tsp.ClampV {
		low |= 1 << 27
	}
	if tsp.FlipU {
		low |= 1 << 28
	}
	if tsp.FlipV {
		low |= 1 << 29
	}
	return uint64(tcw.Addr)<<32 | uint64(low)
}

// Resolve implements §4.5 exactly as texcache.Cache.Resolve does, under
// a single mutex rather than sharded locking since this cache is never
// shared across TR instances.
func (c *defaultCache) Resolve(tsp TSP, tcw TCW, paletteFmt PaletteFormat, decoder TextureDecoder, backend Backend) (TextureHandle, error) {
	key := texKey(tsp, tcw)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		e = &cacheEntry{dirty: true}
		c.entries[key] = e
	}

	if e.handle != 0 && !e.dirty {
		return e.handle, nil
	}
	if e.handle != 0 && e.dirty {
		Logger().Warn("tacore: evicting dirty texture cache entry", "handle", e.handle)
		backend.DestroyTexture(e.handle)
		e.handle = 0
	}

	width, height, err := decoder.Decode(c.scratch, tcw, paletteFmt)
	if err != nil {
		return 0, err
	}

	if e.width != 0 && e.height != 0 && (e.width != width || e.height != height) {
		Logger().Warn("tacore: texture cache key resolved to a different decoded size",
			"prev_width", e.width, "prev_height", e.height, "width", width, "height", height)
	}

	filter := FilterNearest
	if tsp.FilterMode != 0 {
		filter = FilterBilinear
	}
	wrapU := wrapModeFor(tsp.ClampU, tsp.FlipU)
	wrapV := wrapModeFor(tsp.ClampV, tsp.FlipV)

	handle, err := backend.CreateTexture(width, height, filter, wrapU, wrapV, c.scratch[:width*height*4])
	if err != nil {
		return 0, err
	}

	e.handle = handle
	e.dirty = false
	e.width = width
	e.height = height
	return handle, nil
}

func wrapModeFor(clamp, flip bool) TextureWrap {
	switch {
	case clamp:
		return WrapClampToEdge
	case flip:
		return WrapMirroredRepeat
	default:
		return WrapRepeat
	}
}

// resolveTexture is the polygon parameter handler's and background
// parser's entry point into the texture resolver (§4.3, §4.2): it
// consults the configured TextureCache with this TR's own decoder and
// backend.
func (tr *TR) resolveTexture(tsp TSP, tcw TCW, paletteFmt PaletteFormat) TextureHandle {
	h, err := tr.opts.texCache.Resolve(tsp, tcw, paletteFmt, tr.opts.decoder, tr.opts.backend)
	if err != nil {
		fail(ErrNilTextureEntry, err.Error())
	}
	return h
}
