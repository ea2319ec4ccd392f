package texcache

import (
	"sync"

	"github.com/gogpu/tacore"
)

// DefaultShardCount mirrors the teacher's cache.DefaultShardCount: a
// power of two so shard selection is a bitwise AND (shard/sharded.go).
const DefaultShardCount = 16

const shardMask = DefaultShardCount - 1

// Cache is the texture resolver of §4.5, generalized from the teacher's
// cache.ShardedCache[K, V] shard-and-mutex-per-shard shape. Unlike that
// cache, entries are never LRU-evicted: the resolve algorithm mutates
// an entry in place for the lifetime of the (tsp, tcw) key, matching
// the external "find_texture always succeeds" precondition of §4.5 (a
// cache that could silently evict and return a different handle for
// the same key would violate it).
//
// A *Cache may be shared across multiple tacore.TR instances (§5,
// §10.3); each shard's own sync.RWMutex makes concurrent Resolve calls
// from different TRs safe.
type Cache struct {
	shards [DefaultShardCount]*shard
}

type shard struct {
	mu      sync.RWMutex
	entries map[uint64]*Entry
}

// New creates an empty texture cache.
func New() *Cache {
	c := &Cache{}
	for i := range c.shards {
		c.shards[i] = &shard{entries: make(map[uint64]*Entry)}
	}
	return c
}

func (c *Cache) getShard(key uint64) *shard {
	return c.shards[key&shardMask]
}

// Resolve implements the full §4.5 algorithm. The entry's shard lock is
// held for the duration of the call so two goroutines racing to resolve
// the same key never both decode and upload.
func (c *Cache) Resolve(tsp tacore.TSP, tcw tacore.TCW, paletteFmt tacore.PaletteFormat, decoder tacore.TextureDecoder, backend tacore.Backend) (tacore.TextureHandle, error) {
	key := packKey(tsp, tcw)
	sh := c.getShard(key)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	e, ok := sh.entries[key]
	if !ok {
		e = &Entry{Dirty: true}
		sh.entries[key] = e
	}

	if e.Handle != 0 && !e.Dirty {
		return e.Handle, nil
	}
	if e.Handle != 0 && e.Dirty {
		tacore.Logger().Warn("texcache: evicting dirty texture cache entry", "handle", e.Handle)
		backend.DestroyTexture(e.Handle)
		e.Handle = 0
	}

	scratch := make([]byte, maxScratchBytes)
	width, height, err := decoder.Decode(scratch, tcw, paletteFmt)
	if err != nil {
		return 0, err
	}

	if e.Width != 0 && e.Height != 0 && (e.Width != width || e.Height != height) {
		tacore.Logger().Warn("texcache: texture cache key resolved to a different decoded size",
			"prev_width", e.Width, "prev_height", e.Height, "width", width, "height", height)
	}

	filter := tacore.FilterNearest
	if tsp.FilterMode != 0 {
		filter = tacore.FilterBilinear
	}
	wrapU := wrapModeFor(tsp.ClampU, tsp.FlipU)
	wrapV := wrapModeFor(tsp.ClampV, tsp.FlipV)

	handle, err := backend.CreateTexture(width, height, filter, wrapU, wrapV, scratch[:width*height*4])
	if err != nil {
		return 0, err
	}

	e.Handle = handle
	e.Dirty = false
	e.Filter = filter
	e.WrapU = wrapU
	e.WrapV = wrapV
	e.Format = tcw.Format
	e.Width = width
	e.Height = height

	return handle, nil
}

func wrapModeFor(clamp, flip bool) tacore.TextureWrap {
	switch {
	case clamp:
		return tacore.WrapClampToEdge
	case flip:
		return tacore.WrapMirroredRepeat
	default:
		return tacore.WrapRepeat
	}
}

// maxScratchBytes bounds a single decode to the largest texture the
// hardware can describe: 1024x1024 RGBA8 (§4.5).
const maxScratchBytes = 1024 * 1024 * 4

// MarkDirty flags the cache entry for (tsp, tcw) dirty, forcing the next
// Resolve to destroy and re-decode it. Used by callers that detect a
// texture's backing memory changed out from under a live handle.
func (c *Cache) MarkDirty(tsp tacore.TSP, tcw tacore.TCW) {
	key := packKey(tsp, tcw)
	sh := c.getShard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if e, ok := sh.entries[key]; ok {
		e.Dirty = true
	}
}

// Len returns the total number of cached entries across all shards.
func (c *Cache) Len() int {
	total := 0
	for _, sh := range c.shards {
		sh.mu.RLock()
		total += len(sh.entries)
		sh.mu.RUnlock()
	}
	return total
}
