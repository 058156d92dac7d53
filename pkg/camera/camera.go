// Package camera provides the thin lens camera that turns image plane
// coordinates into rays through the scene.
package camera

import (
	"math"

	"pgregory.net/rand"

	"github.com/okvist/pathtrace/pkg/core"
)

// Config contains all data needed to construct a camera
type Config struct {
	VerticalFovDegrees float64
	// ApertureSize is the diameter of the lens; 0 gives a pinhole
	// camera with everything in focus
	ApertureSize float64
	// FocusDistance is the distance from the lens to the plane of
	// perfect focus; 0 focuses on the look at point
	FocusDistance float64
	LookFrom      core.Vec3
	LookAt        core.Vec3
	Up            core.Vec3
}

// Camera generates rays for a given image size and viewpoint
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u               core.Vec3
	v               core.Vec3
	lensRadius      float64
}

// New creates a camera for the given image dimensions
func New(imageWidth, imageHeight int, c Config) Camera {
	aspectRatio := float64(imageWidth) / float64(imageHeight)

	theta := c.VerticalFovDegrees * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := aspectRatio * halfHeight

	focusDistance := c.FocusDistance
	if focusDistance == 0 {
		focusDistance = c.LookAt.Subtract(c.LookFrom).Length()
	}

	w := c.LookFrom.Subtract(c.LookAt).Normalize()
	u := c.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := c.LookFrom
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth * focusDistance)).
		Subtract(v.Multiply(halfHeight * focusDistance)).
		Subtract(w.Multiply(focusDistance))

	return Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * focusDistance),
		vertical:        v.Multiply(2 * halfHeight * focusDistance),
		u:               u,
		v:               v,
		lensRadius:      c.ApertureSize / 2,
	}
}

// Ray returns a ray through the image plane point (s,t), both in [0,1]
// with (0,0) at the lower left corner. The ray origin is offset within
// the lens aperture and the ray time is randomized within the frame.
func (c Camera) Ray(s, t float64, rnd *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(rnd).Multiply(c.lensRadius)
	lensOffset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(lensOffset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRayAt(origin, direction, rnd.Float64())
}
