// Package renderer assembles the Camera, the progressive Accumulator and a
// pond-backed WorkerPool into the render loop described in spec.md §4.5/§6.
package renderer

import (
	"math"
	"math/rand"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
)

// CameraConfig holds the construction inputs for a thin-lens Camera
// (spec.md §4.5).
type CameraConfig struct {
	Center        rtmath.V3
	LookAt        rtmath.V3
	Up            rtmath.V3
	Width         int
	AspectRatio   rtmath.F
	VFov          rtmath.F // degrees
	Aperture      rtmath.F
	FocusDistance rtmath.F // 0 means auto: distance from Center to LookAt
}

// Camera generates jittered primary rays through a thin lens (spec.md
// §4.5). For Aperture=0 every ray originates exactly at Center regardless
// of (s, t).
type Camera struct {
	origin                  rtmath.V3
	lowerLeftCorner         rtmath.V3
	horizontal, vertical    rtmath.V3
	u, v, w                 rtmath.V3
	lensRadius              rtmath.F
	imageWidth, imageHeight int
}

// NewCamera builds a Camera from a CameraConfig, deriving the orthonormal
// basis (u, v, w) and placing the viewport at FocusDistance along -w.
func NewCamera(cfg CameraConfig) *Camera {
	focusDistance := cfg.FocusDistance
	if focusDistance <= 0 {
		focusDistance = cfg.LookAt.Sub(cfg.Center).Length()
		if focusDistance == 0 {
			focusDistance = 1
		}
	}

	theta := cfg.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := halfHeight * cfg.AspectRatio

	w := cfg.Center.Sub(cfg.LookAt).Unit()
	u := cfg.Up.Cross(w).Unit()
	v := w.Cross(u)

	viewportWidth := 2 * halfWidth * focusDistance
	viewportHeight := 2 * halfHeight * focusDistance

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := cfg.Center.
		Sub(horizontal.Multiply(0.5)).
		Sub(vertical.Multiply(0.5)).
		Sub(w.Multiply(focusDistance))

	imageHeight := int(float64(cfg.Width) / cfg.AspectRatio)
	if imageHeight < 1 {
		imageHeight = 1
	}

	return &Camera{
		origin:          cfg.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      cfg.Aperture / 2,
		imageWidth:      cfg.Width,
		imageHeight:     imageHeight,
	}
}

// ImageWidth returns the configured pixel width.
func (c *Camera) ImageWidth() int { return c.imageWidth }

// ImageHeight returns the derived pixel height.
func (c *Camera) ImageHeight() int { return c.imageHeight }

// Ray samples a random offset on the lens disk and builds a primary ray
// toward the viewport point at screen coordinates (s, t) in [0, 1]
// (spec.md §4.5).
func (c *Camera) Ray(s, t rtmath.F, rnd *rand.Rand) rtmath.Ray {
	var offset rtmath.V3
	if c.lensRadius > 0 {
		rd := rtmath.RandomInUnitDisk(rnd).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	origin := c.origin.Add(offset)
	target := c.lowerLeftCorner.Add(c.horizontal.Multiply(s)).Add(c.vertical.Multiply(t))
	direction := target.Sub(origin)

	return rtmath.NewRay(origin, direction)
}
