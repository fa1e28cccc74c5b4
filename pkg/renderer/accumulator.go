package renderer

import (
	"sync"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
)

// PixelAccum is a single pixel's accumulated radiance and path-depth sums
// (spec.md §3's Accumulator type).
type PixelAccum struct {
	Color    rtmath.V3
	DepthSum uint32
}

// Accumulator is the shared, mutex-guarded progressive image state: a
// sample count plus per-pixel color/depth sums, and two auxiliary
// single-sample buffers (albedo, normal) used for denoising (spec.md §4.6).
//
// Invariant: SampleCount equals the number of completed full-frame passes
// merged; len(Pixels) == Width*Height.
type Accumulator struct {
	Width, Height int

	mu          sync.Mutex
	sampleCount uint32
	pixels      []PixelAccum

	auxMu  sync.Mutex
	albedo []rtmath.V3
	normal []rtmath.V3
}

// NewAccumulator allocates an empty accumulator sized to the image.
func NewAccumulator(width, height int) *Accumulator {
	return &Accumulator{
		Width:  width,
		Height: height,
		pixels: make([]PixelAccum, width*height),
		albedo: make([]rtmath.V3, width*height),
		normal: make([]rtmath.V3, width*height),
	}
}

// Scratch is a worker-private buffer for one in-progress sample pass,
// exclusively owned by the worker that rendered into it until merged.
type Scratch struct {
	Pixels []PixelAccum
}

// NewScratch allocates a private scratch buffer sized to the accumulator.
func (a *Accumulator) NewScratch() *Scratch {
	return &Scratch{Pixels: make([]PixelAccum, a.Width*a.Height)}
}

// Merge elementwise-adds a worker's private scratch buffer into the shared
// accumulator under a single lock and increments SampleCount by one. Merge
// is commutative and associative in the order workers call it, so the
// final image for a fixed sample count never depends on merge order
// (spec.md §5, invariant 9).
func (a *Accumulator) Merge(s *Scratch) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.pixels {
		a.pixels[i].Color = a.pixels[i].Color.Add(s.Pixels[i].Color)
		a.pixels[i].DepthSum += s.Pixels[i].DepthSum
	}
	a.sampleCount++
}

// SampleCount returns the number of full-frame passes merged so far.
func (a *Accumulator) SampleCount() uint32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sampleCount
}

// MergeAux stores one pixel's pre-render albedo/normal sample at index in
// the auxiliary buffers, under their own lock.
func (a *Accumulator) MergeAux(index int, albedo, normal rtmath.V3) {
	a.auxMu.Lock()
	defer a.auxMu.Unlock()
	a.albedo[index] = albedo
	a.normal[index] = normal
}

// DisplayMode selects which buffer a Snapshot projects to 8-bit RGB.
type DisplayMode int

const (
	DisplayRadiance DisplayMode = iota
	DisplayAlbedo
	DisplayNormal
	DisplayDepth
)

// Snapshot is a read-only copy of the accumulator's current raw sums and
// auxiliary buffers, ready for 8-bit RGB projection. Consumers read a
// snapshot, divide by sample count, gamma-correct, and emit pixels
// (spec.md §4.6).
type Snapshot struct {
	Width, Height int
	SampleCount   uint32
	Pixels        []PixelAccum
	Albedo        []rtmath.V3
	Normal        []rtmath.V3
}

// TakeSnapshot copies the accumulator's current state under lock.
func (a *Accumulator) TakeSnapshot() Snapshot {
	a.mu.Lock()
	pixels := make([]PixelAccum, len(a.pixels))
	copy(pixels, a.pixels)
	count := a.sampleCount
	a.mu.Unlock()

	a.auxMu.Lock()
	albedo := make([]rtmath.V3, len(a.albedo))
	normal := make([]rtmath.V3, len(a.normal))
	copy(albedo, a.albedo)
	copy(normal, a.normal)
	a.auxMu.Unlock()

	return Snapshot{Width: a.Width, Height: a.Height, SampleCount: count, Pixels: pixels, Albedo: albedo, Normal: normal}
}

const gamma = 2.2

// Project converts the snapshot into 8-bit RGB pixels for the requested
// display mode: radiance divides by sample count and gamma-corrects;
// albedo is a single-sample buffer shown directly; normal is a
// single-sample buffer mapped from [-1,1] to [0,1]; depth normalizes
// each pixel's depth sum by the snapshot's maximum, onto a gray ramp
// (spec.md §4.6).
func (s Snapshot) Project(mode DisplayMode) []byte {
	out := make([]byte, s.Width*s.Height*3)
	samples := rtmath.F(s.SampleCount)
	if samples <= 0 {
		samples = 1
	}

	var maxDepthSum rtmath.F
	if mode == DisplayDepth {
		for i := range s.Pixels {
			if d := rtmath.F(s.Pixels[i].DepthSum); d > maxDepthSum {
				maxDepthSum = d
			}
		}
		if maxDepthSum <= 0 {
			maxDepthSum = 1
		}
	}

	for i := 0; i < s.Width*s.Height; i++ {
		var color rtmath.V3
		switch mode {
		case DisplayAlbedo:
			color = s.Albedo[i]
		case DisplayNormal:
			color = s.Normal[i].Add(rtmath.NewV3(1, 1, 1)).Multiply(0.5)
		case DisplayDepth:
			v := rtmath.F(s.Pixels[i].DepthSum) / maxDepthSum
			color = rtmath.NewV3(v, v, v)
		default:
			color = s.Pixels[i].Color.Multiply(1 / samples).GammaCorrect(gamma)
		}

		color = color.Clamp(0, 1)
		out[i*3+0] = byte(color.X*255 + 0.5)
		out[i*3+1] = byte(color.Y*255 + 0.5)
		out[i*3+2] = byte(color.Z*255 + 0.5)
	}
	return out
}
