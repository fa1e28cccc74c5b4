// Package material implements the closed sum type of scattering materials
// used by every primitive, plus the background sum type sampled when a ray
// escapes the scene. Every variant implements the same four operations
// (scatter, emit, normal perturbation, alpha test); materials that don't
// need an operation return a neutral result (the zero value, or true for
// the alpha test).
package material

import (
	"math"
	"math/rand"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
	"github.com/ravelin-labs/pathtracer/pkg/texture"
)

// Hit is the minimal intersection context a material needs: point, shading
// normal, UV and front-face flag. Geometry packages build this from their
// own intersection records.
type Hit struct {
	Point     rtmath.V3
	Normal    rtmath.V3
	UV        rtmath.V2
	HasUV     bool
	FrontFace bool
}

// ScatterResult is returned by Material.Scatter on a successful scatter.
type ScatterResult struct {
	Attenuation rtmath.V3
	Scattered   rtmath.Ray
}

// Material is the closed sum type from spec.md §3/§4.3: Lambertian, Metal,
// Dielectric, Specular, DiffuseLight, Isotropic, Mix, None.
type Material struct {
	kind matKind

	// Lambertian / Specular's transmit fallback / Isotropic's albedo
	surface texture.Surface

	// Metal
	fuzz rtmath.F

	// Dielectric / Specular
	eta rtmath.F

	// DiffuseLight
	emit rtmath.V3

	// Mix
	ratio       rtmath.F
	left, right *Material
}

type matKind int

const (
	kindNone matKind = iota
	kindLambertian
	kindMetal
	kindDielectric
	kindSpecular
	kindDiffuseLight
	kindIsotropic
	kindMix
)

// NewLambertian creates a perfectly diffuse material sampling surface for
// its albedo.
func NewLambertian(surface texture.Surface) *Material {
	return &Material{kind: kindLambertian, surface: surface}
}

// NewMetal creates a metallic material with the given fuzziness, clamped to
// [0,1] per spec.md §3.
func NewMetal(surface texture.Surface, fuzz rtmath.F) *Material {
	if fuzz < 0 {
		fuzz = 0
	}
	if fuzz > 1 {
		fuzz = 1
	}
	return &Material{kind: kindMetal, surface: surface, fuzz: fuzz}
}

// NewDielectric creates a transmissive material with refractive index eta.
func NewDielectric(eta rtmath.F) *Material {
	return &Material{kind: kindDielectric, eta: eta}
}

// NewSpecular creates a dielectric-reflect / Lambertian-transmit hybrid:
// the reflection branch behaves like Dielectric, the transmission branch
// delegates to an inner Lambertian using surface as its tinted albedo.
func NewSpecular(eta rtmath.F, surface texture.Surface) *Material {
	return &Material{kind: kindSpecular, eta: eta, surface: surface}
}

// NewDiffuseLight creates an emitter with constant emittance.
func NewDiffuseLight(emit rtmath.V3) *Material {
	return &Material{kind: kindDiffuseLight, emit: emit}
}

// NewIsotropic creates an isotropic participating-medium phase function
// material with constant albedo.
func NewIsotropic(surface texture.Surface) *Material {
	return &Material{kind: kindIsotropic, surface: surface}
}

// NewMix creates a stochastic mix of two materials: with probability ratio
// every operation delegates to left, otherwise to right.
func NewMix(ratio rtmath.F, left, right *Material) *Material {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return &Material{kind: kindMix, ratio: ratio, left: left, right: right}
}

// None absorbs every ray; scatter always fails.
var None = &Material{kind: kindNone}

// Scatter implements spec.md §4.3's per-variant scattering rules.
func (m *Material) Scatter(rayIn rtmath.Ray, hit Hit, rnd *rand.Rand) (ScatterResult, bool) {
	switch m.kind {
	case kindLambertian:
		return m.scatterLambertian(hit, rnd)
	case kindMetal:
		return m.scatterMetal(rayIn, hit, rnd)
	case kindDielectric:
		return m.scatterDielectric(rayIn, hit, rnd)
	case kindSpecular:
		return m.scatterSpecular(rayIn, hit, rnd)
	case kindIsotropic:
		return m.scatterIsotropic(hit, rnd)
	case kindMix:
		return m.pick(rnd).Scatter(rayIn, hit, rnd)
	case kindDiffuseLight, kindNone:
		return ScatterResult{}, false
	default:
		return ScatterResult{}, false
	}
}

func (m *Material) scatterLambertian(hit Hit, rnd *rand.Rand) (ScatterResult, bool) {
	direction := hit.Normal.Add(rtmath.RandomUnitVector(rnd))
	if direction.NearZero() {
		direction = hit.Normal
	}
	attenuation := m.sampleAlbedo(hit)
	return ScatterResult{
		Attenuation: attenuation,
		Scattered:   rtmath.NewRay(hit.Point, direction),
	}, true
}

func (m *Material) scatterMetal(rayIn rtmath.Ray, hit Hit, rnd *rand.Rand) (ScatterResult, bool) {
	reflected := rayIn.Direction.Unit().Reflect(hit.Normal)
	if m.fuzz > 0 {
		reflected = reflected.Add(rtmath.RandomInUnitSphere(rnd).Multiply(m.fuzz))
	}
	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}
	attenuation := m.sampleAlbedo(hit)
	return ScatterResult{
		Attenuation: attenuation,
		Scattered:   rtmath.NewRay(hit.Point, reflected),
	}, true
}

// dielectricDirection implements the shared reflect/refract branch used by
// both Dielectric and Specular's reflection branch.
func dielectricDirection(rayIn rtmath.Ray, hit Hit, eta rtmath.F, rnd *rand.Rand) rtmath.V3 {
	etaRatio := eta
	if hit.FrontFace {
		etaRatio = 1 / eta
	}

	unitDir := rayIn.Direction.Unit()
	cosTheta := minF(-unitDir.Dot(hit.Normal), 1.0)
	sinTheta := sqrtF(1 - cosTheta*cosTheta)

	cannotRefract := etaRatio*sinTheta > 1.0
	if cannotRefract || rtmath.Schlick(cosTheta, etaRatio) > rnd.Float64() {
		return unitDir.Reflect(hit.Normal)
	}
	return unitDir.Refract(hit.Normal, etaRatio)
}

func (m *Material) scatterDielectric(rayIn rtmath.Ray, hit Hit, rnd *rand.Rand) (ScatterResult, bool) {
	direction := dielectricDirection(rayIn, hit, m.eta, rnd)
	return ScatterResult{
		Attenuation: rtmath.NewV3(1, 1, 1),
		Scattered:   rtmath.NewRay(hit.Point, direction),
	}, true
}

// scatterSpecular branches the same way as Dielectric, but when the branch
// would refract it instead delegates to an inner Lambertian using surface
// as the transmitted tint, giving diffuse transmission (spec.md §4.3).
func (m *Material) scatterSpecular(rayIn rtmath.Ray, hit Hit, rnd *rand.Rand) (ScatterResult, bool) {
	etaRatio := m.eta
	if hit.FrontFace {
		etaRatio = 1 / m.eta
	}
	unitDir := rayIn.Direction.Unit()
	cosTheta := minF(-unitDir.Dot(hit.Normal), 1.0)
	sinTheta := sqrtF(1 - cosTheta*cosTheta)
	cannotRefract := etaRatio*sinTheta > 1.0

	if cannotRefract || rtmath.Schlick(cosTheta, etaRatio) > rnd.Float64() {
		reflected := unitDir.Reflect(hit.Normal)
		return ScatterResult{
			Attenuation: rtmath.NewV3(1, 1, 1),
			Scattered:   rtmath.NewRay(hit.Point, reflected),
		}, true
	}

	inner := NewLambertian(m.surface)
	return inner.scatterLambertian(hit, rnd)
}

func (m *Material) scatterIsotropic(hit Hit, rnd *rand.Rand) (ScatterResult, bool) {
	direction := rtmath.RandomInUnitSphere(rnd)
	return ScatterResult{
		Attenuation: m.sampleAlbedo(hit),
		Scattered:   rtmath.NewRay(hit.Point, direction),
	}, true
}

// Emit returns the emittance of DiffuseLight materials and the zero vector
// for everything else, per spec.md §4.3.
func (m *Material) Emit(hit Hit, rnd *rand.Rand) rtmath.V3 {
	switch m.kind {
	case kindDiffuseLight:
		return m.emit
	case kindMix:
		return m.pick(rnd).Emit(hit, rnd)
	default:
		return rtmath.V3{}
	}
}

// Normal returns a tangent-space normal perturbation, or false if this
// material doesn't define one. No variant carries a normal map, so the
// result is always false; Mix delegates to the branch it picks. The
// triangle intersector composes a true result with its tangent frame
// (spec.md §4.4).
func (m *Material) Normal(hit Hit, rnd *rand.Rand) (rtmath.V3, bool) {
	if m.kind == kindMix {
		return m.pick(rnd).Normal(hit, rnd)
	}
	return rtmath.V3{}, false
}

// AlphaTest reports whether a hit at uv should be kept (true) or treated as
// a miss (false, for alpha-cutout triangles). Materials that don't define
// an alpha channel always pass.
func (m *Material) AlphaTest(hit Hit, rnd *rand.Rand) bool {
	if m.kind == kindMix {
		return m.pick(rnd).AlphaTest(hit, rnd)
	}
	if m.surface == nil || !hit.HasUV {
		return true
	}
	sample, err := m.surface.GetF(hit.UV)
	if err != nil {
		return true
	}
	return sample.W > 0
}

// pick resolves a Mix material to one concrete branch using ratio as the
// probability of choosing left.
func (m *Material) pick(rnd *rand.Rand) *Material {
	if rnd.Float64() < m.ratio {
		return m.left
	}
	return m.right
}

func (m *Material) sampleAlbedo(hit Hit) rtmath.V3 {
	if m.surface == nil {
		return rtmath.NewV3(1, 1, 1)
	}
	uv := hit.UV
	sample, err := m.surface.GetF(uv)
	if err != nil {
		return rtmath.NewV3(1, 1, 1)
	}
	return sample.XYZ()
}

func minF(a, b rtmath.F) rtmath.F {
	if a < b {
		return a
	}
	return b
}

func sqrtF(x rtmath.F) rtmath.F {
	if x < 0 {
		x = 0
	}
	return math.Sqrt(x)
}
