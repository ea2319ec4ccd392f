// Package texcache implements the memoized texture resolver of §4.5: a
// sharded, concurrency-safe cache keyed by the packed (tsp, tcw) register
// pair, generalized from the teacher's cache.ShardedCache[K, V] pattern
// (cache/sharded.go) but specialized to the TextureCacheEntry shape of
// §3 and the resolve algorithm of §4.5, which mutates entries in place
// rather than evicting them.
package texcache

import "github.com/gogpu/tacore"

// Entry is the TextureCacheEntry of §3: the core mutates Handle, Dirty,
// Filter, WrapU, WrapV, Format, Width, and Height; everything else about
// the decoded texture lives behind the opaque Handle on the backend
// side.
type Entry struct {
	Handle tacore.TextureHandle
	Dirty  bool

	Filter tacore.TextureFilter
	WrapU  tacore.TextureWrap
	WrapV  tacore.TextureWrap

	Format tacore.TextureFormat
	Width  int
	Height int
}

// packKey bit-packs the (tsp, tcw) register pair into the cache key
// (§11.1). TSP and TCW are decoded register structs rather than raw
// words, so the key is built from the fields that actually participate
// in texture identity: tcw's address selects the decoded source bytes
// (the upper 32 bits), and a low 32-bit word folds in format/size and
// the sampler-relevant tsp fields, so two objects differing only in
// sampler state never alias one decode.
func packKey(tsp tacore.TSP, tcw tacore.TCW) uint64 {
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
