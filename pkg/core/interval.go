package core

import "math"

// Interval defines a closed range between Min and Max
type Interval struct {
	Min, Max float64
}

// EmptyInterval contains nothing
var EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

// UniverseInterval contains everything
var UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

// RayInterval is the standard interval for ray intersection queries.
// The small positive minimum avoids self-intersection acne at hit points.
var RayInterval = Interval{Min: 0.001, Max: math.Inf(1)}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// CombineIntervals returns the union of the two given intervals.
// Any gap between the intervals is included in the result.
func CombineIntervals(a, b Interval) Interval {
	return Interval{
		Min: math.Min(a.Min, b.Min),
		Max: math.Max(a.Max, b.Max),
	}
}

// Contains reports whether the interval contains the given value.
// Both boundaries are included.
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Clamp returns the given value clamped to the interval
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Size returns the size of the interval
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Expand returns an interval larger by the given delta,
// added equally to both sides
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// Add returns an interval of the same size displaced by the given value
func (i Interval) Add(displacement float64) Interval {
	return Interval{Min: i.Min + displacement, Max: i.Max + displacement}
}
