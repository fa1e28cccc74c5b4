package math

import (
	"math"
	"math/rand"
)

// RandomInUnitSphere rejection-samples a point inside the unit sphere using
// the supplied RNG.
func RandomInUnitSphere(rnd *rand.Rand) V3 {
	for {
		p := V3{
			X: rnd.Float64()*2 - 1,
			Y: rnd.Float64()*2 - 1,
			Z: rnd.Float64()*2 - 1,
		}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly distributed unit vector.
func RandomUnitVector(rnd *rand.Rand) V3 {
	return RandomInUnitSphere(rnd).Unit()
}

// RandomInUnitDisk rejection-samples a point inside the unit disk in the XY
// plane (z=0).
func RandomInUnitDisk(rnd *rand.Rand) V3 {
	for {
		p := V3{
			X: rnd.Float64()*2 - 1,
			Y: rnd.Float64()*2 - 1,
		}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// Schlick computes the Schlick approximation to Fresnel reflectance for a
// dielectric with relative index of refraction etaRatio, at the given angle
// cosine.
func Schlick(cosine, etaRatio F) F {
	r0 := (1 - etaRatio) / (1 + etaRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
