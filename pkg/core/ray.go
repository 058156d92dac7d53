package core

// Ray represents a ray with an origin and direction.
// Time places the ray within the camera exposure and is used by
// motion-blurred hittables to interpolate their position.
type Ray struct {
	Origin       Vec3
	Direction    Vec3
	DirectionInv Vec3
	Time         float64
}

// NewRay creates a new ray. The inverted direction is precomputed
// as it is needed for every bounding box test during traversal.
func NewRay(origin, direction Vec3) Ray {
	return NewRayAt(origin, direction, 0)
}

// NewRayAt creates a new ray with the given exposure time
func NewRayAt(origin, direction Vec3, time float64) Ray {
	return Ray{
		Origin:       origin,
		Direction:    direction,
		DirectionInv: Vec3{X: 1 / direction.X, Y: 1 / direction.Y, Z: 1 / direction.Z},
		Time:         time,
	}
}

// At returns the point at the given distance along the ray
func (r Ray) At(distance float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(distance))
}
