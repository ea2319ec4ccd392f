package tacore

import "log/slog"

// TR is the Tile Accelerator Renderer Core: a translation stage that
// consumes a captured TA command buffer and emits a backend-neutral
// render context (§1, §2). A TR owns no global state: its texture
// scratch buffer belongs to the instance so multiple TRs may convert
// concurrently (§5, §9 "Scratch ownership").
type TR struct {
	opts trOptions

	// scratch is the texture resolver's decode buffer, owned per-TR so
	// concurrent conversions never share it (§5, §9).
	scratch []byte

	// sortTmp/sortMinZ/sortTmpZ are the surface-sort scratch arrays
	// (§4.7, §9), reused across conversions but never shared across TR
	// instances.
	sortTmp  []int
	sortMinZ []float32
	sortTmpZ []float32
}

// New constructs a TR. A nil backend or texture decoder is a programmer
// error and panics immediately, not deferred to the first Convert call
// (§10.3).
func New(opts ...Option) *TR {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.backend == nil {
		panic("tacore: New: no Backend configured (use WithBackend)")
	}
	if o.decoder == nil {
		panic("tacore: New: no TextureDecoder configured (use WithTextureDecoder)")
	}
	if o.logger == nil {
		o.logger = Logger()
	}

	scratch := make([]byte, maxTextureScratch)
	if o.texCache == nil {
		o.texCache = newDefaultCache(scratch)
	}

	return &TR{
		opts:    o,
		scratch: scratch,
	}
}

// Convert runs the full pipeline of §2's data flow over ctx and returns
// a populated RenderContext. Precondition violations (§7.1) are
// recovered at this boundary and returned as a wrapped error; they
// never leave Convert as a panic.
func (tr *TR) Convert(ctx *Context) (rc *RenderContext, err error) {
	defer recoverPrecondition(&err)

	log := tr.opts.logger
	rc = newRenderContext(tr.opts.maxSurfs, tr.opts.maxVerts, tr.opts.maxIndices, ctx.VideoWidth, ctx.VideoHeight)
	st := newTRState()

	tr.parseBackground(ctx, rc)
	tr.walkStream(ctx, rc, st)

	if ctx.Autosort {
		tr.sortList(rc, ListTranslucent)
		tr.sortList(rc, ListPunchThrough)
	}
	for lt := ListOpaque; int(lt) < numLists; lt++ {
		tr.mergeAndIndex(rc, lt)
	}

	log.Info("tacore: conversion complete",
		"surfaces", len(rc.Surfs),
		"vertices", len(rc.Verts),
		"indices", len(rc.Indices),
	)
	return rc, nil
}

func (tr *TR) logger() *slog.Logger { return tr.opts.logger }
