package core

import "math"

// ONB is an orthonormal basis built around a single direction,
// used to transform directions from local tangent space to world space
type ONB struct {
	U, V, W Vec3
}

// NewONB creates a new orthonormal basis from the given vector
func NewONB(w Vec3) ONB {
	unitW := w.Normalize()

	var a Vec3
	if math.Abs(unitW.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}
	v := unitW.Cross(a).Normalize()
	u := unitW.Cross(v)

	return ONB{U: u, V: v, W: unitW}
}

// Local translates the given vector to the orthonormal basis
func (o ONB) Local(a Vec3) Vec3 {
	return o.U.Multiply(a.X).Add(o.V.Multiply(a.Y)).Add(o.W.Multiply(a.Z))
}
