package tacore

import "log/slog"

// Option configures a TR during construction. Use functional options to
// customize capacities and inject collaborators.
//
// Example:
//
//	tr := tacore.New(
//	    tacore.WithBackend(myBackend),
//	    tacore.WithTextureDecoder(myDecoder),
//	    tacore.WithCapacities(4096, 65536, 131072),
//	)
type Option func(*trOptions)

// trOptions holds optional configuration for TR creation.
type trOptions struct {
	maxSurfs  int
	maxVerts  int
	maxIndices int

	backend  Backend
	decoder  TextureDecoder
	texCache TextureCache

	logger *slog.Logger
}

const (
	defaultMaxSurfs   = 4096
	defaultMaxVerts   = 65536
	defaultMaxIndices = 131072
)

func defaultOptions() trOptions {
	return trOptions{
		maxSurfs:   defaultMaxSurfs,
		maxVerts:   defaultMaxVerts,
		maxIndices: defaultMaxIndices,
	}
}

// WithCapacities overrides the default capacity bounds of invariant 1
// (§3): the maximum number of surfaces, vertices, and indices a single
// conversion may produce. Exceeding any of these is a precondition
// violation (§7.1) that aborts the conversion; Convert returns it as an
// error wrapping ErrCapacityExceeded.
func WithCapacities(maxSurfs, maxVerts, maxIndices int) Option {
	return func(o *trOptions) {
		o.maxSurfs = maxSurfs
		o.maxVerts = maxVerts
		o.maxIndices = maxIndices
	}
}

// WithBackend injects the render backend collaborator (§6). Required:
// New panics if no backend is configured.
func WithBackend(b Backend) Option {
	return func(o *trOptions) {
		o.backend = b
	}
}

// WithTextureDecoder injects the texture pixel decoder collaborator (§6).
// Required: New panics if no decoder is configured.
func WithTextureDecoder(d TextureDecoder) Option {
	return func(o *trOptions) {
		o.decoder = d
	}
}

// WithTextureCache injects a texture cache to use for texture resolution
// (§4.5, §11.1). A cache may safely be shared across multiple TR
// instances (§5). If omitted, each TR gets its own private cache.
func WithTextureCache(c TextureCache) Option {
	return func(o *trOptions) {
		o.texCache = c
	}
}

// WithLogger overrides the package-level default logger (see SetLogger)
// for this TR instance only.
func WithLogger(l *slog.Logger) Option {
	return func(o *trOptions) {
		o.logger = l
	}
}
