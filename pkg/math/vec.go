// Package math provides the vector, matrix and ray primitives shared by
// every other package in the tracer. Everything here is pure and
// allocation-free so it is safe to call from any number of worker
// goroutines without synchronization.
package math

import (
	"fmt"
	"math"
)

// F is the scalar type used throughout the tracer.
type F = float64

// V2 is a 2-element float vector, used for texture coordinates.
type V2 struct {
	X, Y F
}

// NewV2 creates a V2.
func NewV2(x, y F) V2 { return V2{X: x, Y: y} }

// Add returns the sum of two V2 values.
func (v V2) Add(o V2) V2 { return V2{v.X + o.X, v.Y + o.Y} }

// Sub returns the difference of two V2 values.
func (v V2) Sub(o V2) V2 { return V2{v.X - o.X, v.Y - o.Y} }

// Multiply returns the V2 scaled by a scalar.
func (v V2) Multiply(s F) V2 { return V2{v.X * s, v.Y * s} }

func (v V2) String() string { return fmt.Sprintf("{%.3g, %.3g}", v.X, v.Y) }

// V3 is a 3-element float vector used for points, directions and colors.
type V3 struct {
	X, Y, Z F
}

// NewV3 creates a V3.
func NewV3(x, y, z F) V3 { return V3{X: x, Y: y, Z: z} }

func (v V3) String() string { return fmt.Sprintf("{%.3g, %.3g, %.3g}", v.X, v.Y, v.Z) }

// Add returns the sum of two vectors.
func (v V3) Add(o V3) V3 { return V3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference of two vectors.
func (v V3) Sub(o V3) V3 { return V3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Multiply returns the vector scaled by a scalar.
func (v V3) Multiply(s F) V3 { return V3{v.X * s, v.Y * s, v.Z * s} }

// MulV returns the component-wise (Hadamard) product of two vectors.
func (v V3) MulV(o V3) V3 { return V3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Negate returns the additive inverse of the vector.
func (v V3) Negate() V3 { return V3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of two vectors.
func (v V3) Dot(o V3) F { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of two vectors.
func (v V3) Cross(o V3) V3 {
	return V3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the magnitude of the vector.
func (v V3) Length() F { return math.Sqrt(v.LengthSquared()) }

// LengthSquared returns the squared magnitude of the vector.
func (v V3) LengthSquared() F { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Unit returns a unit vector in the same direction. Only meaningful for
// non-zero vectors; the zero vector maps to itself.
func (v V3) Unit() V3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Multiply(1 / l)
}

// Min returns the component-wise minimum of two vectors.
func (v V3) Min(o V3) V3 {
	return V3{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z)}
}

// Max returns the component-wise maximum of two vectors.
func (v V3) Max(o V3) V3 {
	return V3{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z)}
}

// Abs returns the component-wise absolute value of the vector.
func (v V3) Abs() V3 { return V3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)} }

// Powf returns the component-wise power of the vector.
func (v V3) Powf(p F) V3 {
	return V3{math.Pow(v.X, p), math.Pow(v.Y, p), math.Pow(v.Z, p)}
}

// Clamp clamps each component into [lo, hi].
func (v V3) Clamp(lo, hi F) V3 {
	return V3{
		X: math.Max(lo, math.Min(hi, v.X)),
		Y: math.Max(lo, math.Min(hi, v.Y)),
		Z: math.Max(lo, math.Min(hi, v.Z)),
	}
}

// NearZero reports whether every component is within 1e-5 of zero.
func (v V3) NearZero() bool {
	const eps = 1e-5
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

// Reflect reflects v about a normal n (both expected to be roughly unit
// length on the incident side): v - 2*dot(v,n)*n.
func (v V3) Reflect(n V3) V3 {
	return v.Sub(n.Multiply(2 * v.Dot(n)))
}

// Refract bends a unit incident vector v through a surface with normal n
// and relative index of refraction etaRatio (n1/n2).
func (v V3) Refract(n V3, etaRatio F) V3 {
	cosTheta := math.Min(-v.Dot(n), 1.0)
	rOutPerp := v.Add(n.Multiply(cosTheta)).Multiply(etaRatio)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Luminance returns the BT.709 perceptual luminance of an RGB color.
func (v V3) Luminance() F { return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z }

// GammaCorrect raises each channel to 1/gamma.
func (v V3) GammaCorrect(gamma F) V3 { return v.Powf(1.0 / gamma) }

// V4 is a 4-element float vector, used for RGBA texture samples.
type V4 struct {
	X, Y, Z, W F
}

// NewV4 creates a V4.
func NewV4(x, y, z, w F) V4 { return V4{X: x, Y: y, Z: z, W: w} }

// XYZ drops the W component.
func (v V4) XYZ() V3 { return V3{v.X, v.Y, v.Z} }

// Add returns the sum of two V4 values.
func (v V4) Add(o V4) V4 { return V4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W} }

// Multiply returns the V4 scaled by a scalar.
func (v V4) Multiply(s F) V4 { return V4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// Lerp4 linearly interpolates between two V4 values by t in [0,1].
func Lerp4(a, b V4, t F) V4 {
	return a.Multiply(1 - t).Add(b.Multiply(t))
}
