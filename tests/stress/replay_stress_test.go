// Package stress exercises the concurrency model of §5: many TR
// instances, each single-threaded internally, converting independently
// while sharing one texcache.Cache. Grounded on the teacher's reserved
// tests/stress directory and cmd/ggdemo's flat capture-replay style.
package stress

import (
	"encoding/binary"
	"math"
	"sync"
	"testing"

	"github.com/gogpu/tacore"
	"github.com/gogpu/tacore/texcache"
)

type wordBuilder struct {
	buf []byte
}

func (b *wordBuilder) word(w uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], w)
	b.buf = append(b.buf, tmp[:]...)
}

func (b *wordBuilder) f32(f float32) { b.word(math.Float32bits(f)) }

func pcwWord(listType, paraType uint8, eos bool, polyType, vertType uint8) uint32 {
	var w uint32
	w |= uint32(listType) << 4
	w |= uint32(paraType) << 7
	if eos {
		w |= 1 << 10
	}
	w |= uint32(polyType) << 11
	w |= uint32(vertType) << 14
	return w
}

const (
	paraEndOfList = 0
	paraPolyOrVol = 3
	paraVertex    = 5
)

func (b *wordBuilder) polyParam(listType, polyType uint8) {
	b.word(pcwWord(listType, paraPolyOrVol, false, polyType, 0))
	b.word(0)
	b.word(0)
	b.word(0)
	if polyType == 5 {
		b.word(0)
		b.word(0)
	}
}

func (b *wordBuilder) vertex0(listType uint8, eos bool, x, y, z float32) {
	b.word(pcwWord(listType, paraVertex, eos, 0, 0))
	b.f32(x)
	b.f32(y)
	b.f32(z)
	b.word(0)
}

func (b *wordBuilder) sprite(listType uint8, ax, ay, az, bx, by, bz, cx, cy, cz, dx, dy float32) {
	b.word(pcwWord(listType, paraVertex, true, 0, 15))
	corner := func(x, y, z, u, v float32) {
		b.f32(x)
		b.f32(y)
		b.f32(z)
		b.f32(u)
		b.f32(v)
	}
	corner(ax, ay, az, 0, 0)
	corner(bx, by, bz, 0, 1)
	corner(cx, cy, cz, 1, 1)
	b.f32(dx)
	b.f32(dy)
}

func (b *wordBuilder) endOfList() {
	b.word(pcwWord(0, paraEndOfList, false, 0, 0))
}

func newContext(params []byte, autosort bool) *tacore.Context {
	return &tacore.Context{
		Params:      params,
		Size:        len(params),
		VideoWidth:  640,
		VideoHeight: 480,
		AlphaRef:    128,
		Autosort:    autosort,
	}
}

// capture builds one named synthetic stream for the corpus.
type syntheticCapture struct {
	name string
	ctx  *tacore.Context
}

func buildCorpus() []syntheticCapture {
	var corpus []syntheticCapture

	corpus = append(corpus, syntheticCapture{"empty", newContext(nil, false)})

	{
		var b wordBuilder
		b.polyParam(uint8(tacore.ListOpaque), 0)
		b.vertex0(uint8(tacore.ListOpaque), false, 0, 0, 1)
		b.vertex0(uint8(tacore.ListOpaque), false, 1, 0, 1)
		b.vertex0(uint8(tacore.ListOpaque), false, 0, 1, 1)
		b.vertex0(uint8(tacore.ListOpaque), true, 1, 1, 1)
		b.endOfList()
		corpus = append(corpus, syntheticCapture{"single-strip", newContext(b.buf, false)})
	}

	{
		var b wordBuilder
		b.polyParam(uint8(tacore.ListOpaque), 0)
		b.vertex0(uint8(tacore.ListOpaque), false, 0, 0, 1)
		b.vertex0(uint8(tacore.ListOpaque), false, 1, 0, 1)
		b.vertex0(uint8(tacore.ListOpaque), true, 0, 1, 1)
		b.polyParam(uint8(tacore.ListOpaque), 0)
		b.vertex0(uint8(tacore.ListOpaque), false, 2, 0, 1)
		b.vertex0(uint8(tacore.ListOpaque), false, 3, 0, 1)
		b.vertex0(uint8(tacore.ListOpaque), true, 2, 1, 1)
		b.endOfList()
		corpus = append(corpus, syntheticCapture{"multi-strip-merge", newContext(b.buf, false)})
	}

	{
		var b wordBuilder
		b.polyParam(uint8(tacore.ListTranslucent), 0)
		b.vertex0(uint8(tacore.ListTranslucent), false, 0, 0, 5)
		b.vertex0(uint8(tacore.ListTranslucent), false, 1, 0, 5)
		b.vertex0(uint8(tacore.ListTranslucent), true, 0, 1, 5)
		b.polyParam(uint8(tacore.ListTranslucent), 0)
		b.vertex0(uint8(tacore.ListTranslucent), false, 0, 0, 1)
		b.vertex0(uint8(tacore.ListTranslucent), false, 1, 0, 1)
		b.vertex0(uint8(tacore.ListTranslucent), true, 0, 1, 1)
		b.endOfList()
		corpus = append(corpus, syntheticCapture{"translucent-autosort", newContext(b.buf, true)})
	}

	{
		var b wordBuilder
		b.polyParam(uint8(tacore.ListOpaque), 5)
		b.sprite(uint8(tacore.ListOpaque), 0, 0, 1, 0, 1, 1, 1, 1, 1, 1, 0)
		b.endOfList()
		corpus = append(corpus, syntheticCapture{"sprite", newContext(b.buf, false)})
	}

	{
		var b wordBuilder
		b.polyParam(uint8(tacore.ListOpaque), 5)
		b.sprite(uint8(tacore.ListOpaque), 0, 0, 0, 1, 0, 0, 2, 0, 0, 3, 0)
		b.endOfList()
		corpus = append(corpus, syntheticCapture{"degenerate-sprite", newContext(b.buf, false)})
	}

	return corpus
}

type stressDecoder struct{}

func (stressDecoder) Decode(dst []byte, tcw tacore.TCW, paletteFmt tacore.PaletteFormat) (int, int, error) {
	for i := range dst {
		dst[i] = byte(i)
	}
	return 8, 8, nil
}

type stressBackend struct {
	mu   sync.Mutex
	next tacore.TextureHandle
}

func (b *stressBackend) CreateTexture(width, height int, filter tacore.TextureFilter, wrapU, wrapV tacore.TextureWrap, pixels []byte) (tacore.TextureHandle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next++
	return b.next, nil
}
func (b *stressBackend) DestroyTexture(h tacore.TextureHandle)                             {}
func (b *stressBackend) BeginTASurfaces(w, h int, verts []tacore.Vertex, indices []uint32) {}
func (b *stressBackend) DrawTASurface(s tacore.Surface)                                    {}
func (b *stressBackend) EndTASurfaces()                                                    {}

// TestReplayStressConcurrentConversions replays the synthetic corpus
// across many goroutines, each owning its own TR but sharing one
// texcache.Cache, per §5's stated concurrency model: a TR is not
// goroutine-safe, but a TextureCache may be shared across TRs.
func TestReplayStressConcurrentConversions(t *testing.T) {
	corpus := buildCorpus()
	shared := texcache.New()

	const workers = 16
	const roundsPerWorker = 25

	var wg sync.WaitGroup
	errc := make(chan error, workers*roundsPerWorker)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			tr := tacore.New(
				tacore.WithBackend(&stressBackend{}),
				tacore.WithTextureDecoder(stressDecoder{}),
				tacore.WithTextureCache(shared),
			)
			for round := 0; round < roundsPerWorker; round++ {
				sc := corpus[(worker+round)%len(corpus)]
				rc, err := tr.Convert(sc.ctx)
				if err != nil {
					errc <- err
					continue
				}
				if len(rc.Verts) > 65536 {
					errc <- errInvariant(sc.name, "vertex capacity invariant violated")
				}
				if len(rc.Surfs) > 4096 {
					errc <- errInvariant(sc.name, "surface capacity invariant violated")
				}
				for _, idx := range rc.Indices {
					if int(idx) >= len(rc.Verts) {
						errc <- errInvariant(sc.name, "index out of vertex range")
					}
				}
			}
		}(w)
	}

	wg.Wait()
	close(errc)
	for err := range errc {
		t.Error(err)
	}
}

type invariantError struct {
	capture string
	msg     string
}

func errInvariant(capture, msg string) error {
	return &invariantError{capture: capture, msg: msg}
}

func (e *invariantError) Error() string {
	return e.capture + ": " + e.msg
}
