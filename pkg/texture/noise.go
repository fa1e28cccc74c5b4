package texture

import (
	"github.com/aquilax/go-perlin"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
)

// Noise is a procedural surface backed by Perlin noise, used to texture the
// SkySphere background with nebula-like variation instead of a flat
// gradient (the Sky background stays an analytic gradient). Grounded on nicolasmd87-gopher3D's terrain generator
// (examples/Voxel/gocraft.go), which drives `perlin.NewPerlin` the same
// way: fixed alpha/beta/octave parameters, seeded once at construction.
type Noise struct {
	gen      *perlin.Perlin
	scale    rtmath.F
	lowColor rtmath.V3
	highColor rtmath.V3
}

// NewNoise creates a Perlin-backed procedural surface that interpolates
// between lowColor and highColor by noise value. seed makes the pattern
// reproducible across renders of the same scene.
func NewNoise(seed int64, scale rtmath.F, lowColor, highColor rtmath.V3) *Noise {
	const alpha, beta = 2.0, 2.0
	const octaves int32 = 3
	return &Noise{
		gen:       perlin.NewPerlin(alpha, beta, octaves, seed),
		scale:     scale,
		lowColor:  lowColor,
		highColor: highColor,
	}
}

func (n *Noise) Width() int  { return 0 } // procedural: no native resolution
func (n *Noise) Height() int { return 0 }

// GetF evaluates 2D Perlin noise at uv*scale, remaps it from [-1,1] to
// [0,1], and lerps between lowColor and highColor.
func (n *Noise) GetF(uv rtmath.V2) (rtmath.V4, error) {
	raw := n.gen.Noise2D(uv.X*n.scale, uv.Y*n.scale)
	t := (raw + 1) / 2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	color := n.lowColor.Multiply(1 - t).Add(n.highColor.Multiply(t))
	return rtmath.NewV4(color.X, color.Y, color.Z, 1), nil
}
