package material

import (
	"math"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
	"github.com/ravelin-labs/pathtracer/pkg/texture"
)

// Background is the closed sum type sampled when a ray escapes the scene:
// Solid, Sky, SkySphere, CubeMap (spec.md §3).
type Background struct {
	kind       bgKind
	solid      rtmath.V3
	skyTop     rtmath.V3
	skyBottom  rtmath.V3
	sphere     texture.Surface
	faces      [6]texture.Surface // +X,-X,+Y,-Y,+Z,-Z
	rotation   rtmath.F           // turns, around Y
}

type bgKind int

const (
	bgSolid bgKind = iota
	bgSky
	bgSkySphere
	bgCubeMap
)

// NewSolidBackground returns a constant-color background.
func NewSolidBackground(color rtmath.V3) *Background {
	return &Background{kind: bgSolid, solid: color}
}

// NewSkyBackground returns the procedural vertical gradient background
// between bottom and top colors.
func NewSkyBackground(bottom, top rtmath.V3) *Background {
	return &Background{kind: bgSky, skyBottom: bottom, skyTop: top}
}

// NewSkySphereBackground returns an equirectangular-mapped background.
func NewSkySphereBackground(sphere texture.Surface) *Background {
	return &Background{kind: bgSkySphere, sphere: sphere}
}

// NewCubeMapBackground returns a 6-face cube map background, optionally
// rotated around the Y axis (in turns).
func NewCubeMapBackground(faces [6]texture.Surface, rotationTurns rtmath.F) *Background {
	return &Background{kind: bgCubeMap, faces: faces, rotation: rotationTurns}
}

// Sample returns the background radiance for a ray that missed the world.
func (b *Background) Sample(ray rtmath.Ray) rtmath.V3 {
	switch b.kind {
	case bgSolid:
		return b.solid
	case bgSky:
		return b.sampleSky(ray)
	case bgSkySphere:
		return b.sampleSkySphere(ray)
	case bgCubeMap:
		return b.sampleCubeMap(ray)
	default:
		return rtmath.V3{}
	}
}

func (b *Background) sampleSky(ray rtmath.Ray) rtmath.V3 {
	unit := ray.Direction.Unit()
	t := 0.5 * (unit.Y + 1.0)
	return b.skyBottom.Multiply(1 - t).Add(b.skyTop.Multiply(t))
}

// equirectangularUV maps a unit direction to (u,v) in [0,1]^2: u wraps
// around the horizon (atan2 of X,Z), v spans the poles (asin of Y).
func equirectangularUV(dir rtmath.V3) rtmath.V2 {
	u := (math.Atan2(dir.Z, dir.X) + math.Pi) / (2 * math.Pi)
	v := (math.Asin(clampUnit(dir.Y)) + math.Pi/2) / math.Pi
	return rtmath.NewV2(u, v)
}

func clampUnit(x rtmath.F) rtmath.F {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}

func (b *Background) sampleSkySphere(ray rtmath.Ray) rtmath.V3 {
	uv := equirectangularUV(ray.Direction.Unit())
	sample, err := b.sphere.GetF(uv)
	if err != nil {
		return rtmath.V3{}
	}
	return sample.XYZ()
}

func (b *Background) sampleCubeMap(ray rtmath.Ray) rtmath.V3 {
	dir := ray.Direction.Unit()
	if b.rotation != 0 {
		_, inv := rtmath.Transform4(rtmath.V3{}, rtmath.V3{Y: b.rotation}, rtmath.V3{X: 1, Y: 1, Z: 1})
		dir = inv.TransformVector(dir).Unit()
	}

	absX, absY, absZ := math.Abs(dir.X), math.Abs(dir.Y), math.Abs(dir.Z)
	var face texture.Surface
	var u, v rtmath.F

	switch {
	case absX >= absY && absX >= absZ:
		if dir.X > 0 {
			face, u, v = b.faces[0], -dir.Z/absX, -dir.Y/absX
		} else {
			face, u, v = b.faces[1], dir.Z/absX, -dir.Y/absX
		}
	case absY >= absX && absY >= absZ:
		if dir.Y > 0 {
			face, u, v = b.faces[2], dir.X/absY, dir.Z/absY
		} else {
			face, u, v = b.faces[3], dir.X/absY, -dir.Z/absY
		}
	default:
		if dir.Z > 0 {
			face, u, v = b.faces[4], dir.X/absZ, -dir.Y/absZ
		} else {
			face, u, v = b.faces[5], -dir.X/absZ, -dir.Y/absZ
		}
	}

	if face == nil {
		return rtmath.V3{}
	}
	uv := rtmath.NewV2((u+1)/2, (v+1)/2)
	sample, err := face.GetF(uv)
	if err != nil {
		return rtmath.V3{}
	}
	return sample.XYZ()
}
