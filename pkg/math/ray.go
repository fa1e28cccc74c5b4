package math

// Ray is an origin and a direction. The direction is not normalized in
// general; callers that need to preserve t as a physical distance keep the
// direction's magnitude intact.
type Ray struct {
	Origin    V3
	Direction V3
}

// NewRay creates a ray.
func NewRay(origin, direction V3) Ray { return Ray{Origin: origin, Direction: direction} }

// NewRayTo creates a ray from origin toward target, with a unit direction.
func NewRayTo(origin, target V3) Ray {
	return NewRay(origin, target.Sub(origin).Unit())
}

// At returns the point origin + direction*t.
func (r Ray) At(t F) V3 { return r.Origin.Add(r.Direction.Multiply(t)) }
