package renderer

import (
	"context"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/alitto/pond/v2"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
)

// TraceFunc traces one jittered primary ray and returns its radiance and
// the depth channel value to record (MAX_DEPTH - remaining_depth). The
// integrator package supplies this; renderer never inspects scene contents
// (spec.md §6).
type TraceFunc func(ray rtmath.Ray, rnd *rand.Rand) (radiance rtmath.V3, depthUsed uint32)

// AlbedoNormalFunc computes the single-bounce albedo/normal auxiliaries for
// one primary ray, used by the pre-render pass.
type AlbedoNormalFunc func(ray rtmath.Ray, rnd *rand.Rand) (albedo, normal rtmath.V3)

// WorkerPool drives the progressive accumulator's pre-render and main
// passes over a pool of goroutines backed by github.com/alitto/pond/v2
// (spec.md §4.6). No cooperative scheduling: each worker blocks only on
// the accumulator's mutex at merge time, the atomic row counter during the
// pre-render pass, and the final join at frame boundary.
type WorkerPool struct {
	cam        *Camera
	acc        *Accumulator
	numWorkers int
	pool       pond.Pool
	quickPass  atomic.Bool
}

// SetQuickPass sets the process-wide cancellation flag, polled once per
// pixel row by every in-flight RunPasses worker (spec.md §5).
func (wp *WorkerPool) SetQuickPass(v bool) { wp.quickPass.Store(v) }

// NewWorkerPool creates a pool sized to numWorkers (0 = max(1, NumCPU()-2),
// spec.md §4.6, leaving headroom for the OS and any driving process).
func NewWorkerPool(cam *Camera, acc *Accumulator, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU() - 2
		if numWorkers < 1 {
			numWorkers = 1
		}
	}
	return &WorkerPool{
		cam:        cam,
		acc:        acc,
		numWorkers: numWorkers,
		pool:       pond.NewPool(numWorkers),
	}
}

// NumWorkers returns the configured worker count.
func (wp *WorkerPool) NumWorkers() int { return wp.numWorkers }

// Close stops the underlying pool and waits for any in-flight task to
// finish. Call once after the final RunPasses call returns.
func (wp *WorkerPool) Close() { wp.pool.StopAndWait() }

// PreRenderPass computes per-pixel albedo/normal once, with rows claimed by
// parallel workers through an atomic counter, then merges every row's
// result into the accumulator's auxiliary buffers (spec.md §4.6).
func (wp *WorkerPool) PreRenderPass(fn AlbedoNormalFunc) {
	var nextRow int64 = -1
	height := int64(wp.cam.ImageHeight())

	var wg sync.WaitGroup
	for w := 0; w < wp.numWorkers; w++ {
		seed := int64(w) + 1 // deterministic per-worker seed, spec.md §3
		wg.Add(1)
		wp.pool.Submit(func() {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(seed))
			for {
				row := atomic.AddInt64(&nextRow, 1)
				if row >= height {
					return
				}
				wp.renderAuxRow(int(row), fn, rnd)
			}
		})
	}
	wg.Wait()
}

func (wp *WorkerPool) renderAuxRow(y int, fn AlbedoNormalFunc, rnd *rand.Rand) {
	width := wp.cam.ImageWidth()
	for x := 0; x < width; x++ {
		s := (rtmath.F(x) + 0.5) / rtmath.F(width)
		t := (rtmath.F(y) + 0.5) / rtmath.F(wp.cam.ImageHeight())
		ray := wp.cam.Ray(s, t, rnd)
		albedo, normal := fn(ray, rnd)
		wp.acc.MergeAux(y*width+x, albedo, normal)
	}
}

// RunPasses repeats the main pass — every worker renders one full-frame
// sample into a private scratch buffer and merges it into the shared
// accumulator — until ctx is cancelled or frameLimit full-frame samples
// have been merged per worker (0 means unbounded, relying solely on ctx).
// Returns once every worker goroutine has stopped (spec.md §4.6).
func (wp *WorkerPool) RunPasses(ctx context.Context, fn TraceFunc, frameLimit int) {
	var wg sync.WaitGroup
	for w := 0; w < wp.numWorkers; w++ {
		seed := int64(w) + 1
		wg.Add(1)
		wp.pool.Submit(func() {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(seed))
			frames := 0
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}
				if frameLimit > 0 && frames >= frameLimit {
					return
				}
				scratch := wp.acc.NewScratch()
				if wp.renderFrame(scratch, fn, rnd) {
					wp.acc.Merge(scratch)
				}
				frames++
			}
		})
	}
	wg.Wait()
}

// renderFrame samples every pixel once: u = (x+rand)/(W-1), v =
// (y+rand)/(H-1), per spec.md §4.6. It returns false, leaving the frame
// incomplete, when the quick-pass flag is seen.
func (wp *WorkerPool) renderFrame(scratch *Scratch, fn TraceFunc, rnd *rand.Rand) bool {
	width, height := wp.cam.ImageWidth(), wp.cam.ImageHeight()
	denomX, denomY := rtmath.F(width-1), rtmath.F(height-1)
	if denomX <= 0 {
		denomX = 1
	}
	if denomY <= 0 {
		denomY = 1
	}
	for y := 0; y < height; y++ {
		if wp.quickPass.Load() {
			return false
		}
		for x := 0; x < width; x++ {
			jitterS := (rtmath.F(x) + rnd.Float64()) / denomX
			jitterT := (rtmath.F(y) + rnd.Float64()) / denomY
			ray := wp.cam.Ray(jitterS, jitterT, rnd)
			radiance, depth := fn(ray, rnd)
			idx := y*width + x
			scratch.Pixels[idx].Color = radiance
			scratch.Pixels[idx].DepthSum = depth
		}
	}
	return true
}
