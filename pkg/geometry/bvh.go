package geometry

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"pgregory.net/rand"

	"github.com/okvist/pathtrace/pkg/core"
)

// parallelThreshold is the minimum number of hittables in a partition
// for its two sub-builds to be spawned as separate tasks
const parallelThreshold = 128

// BVHNode is a node in a bounding volume hierarchy: a binary tree of
// nested bounding boxes that makes ray intersection search sub-linear
// in the number of hittables. The tree is immutable once built and is
// shared read-only by all rendering goroutines.
type BVHNode struct {
	left  core.Hittable
	right core.Hittable
	bBox  core.AABB
}

// NewBVH builds a bounding volume hierarchy over the given hittables.
// Returns an error when the list is empty.
func NewBVH(items []core.Hittable) (*BVHNode, error) {
	if len(items) == 0 {
		return nil, errors.New("cannot create a BVH with empty list of hittables")
	}

	// Copy so that partitioning does not reorder the caller's slice
	itemsCopy := make([]core.Hittable, len(items))
	copy(itemsCopy, items)

	return buildBVH(itemsCopy), nil
}

func buildBVH(items []core.Hittable) *BVHNode {
	switch len(items) {
	case 1:
		// A single item is doubled so the node always has two children
		return &BVHNode{
			left:  items[0],
			right: items[0],
			bBox:  items[0].BoundingBox(),
		}
	case 2:
		return &BVHNode{
			left:  items[0],
			right: items[1],
			bBox:  items[0].BoundingBox().Combine(items[1].BoundingBox()),
		}
	}

	mid := partitionByMostSpreadAxis(items)

	var left, right *BVHNode
	if len(items) >= parallelThreshold {
		g := new(errgroup.Group)
		g.Go(func() error {
			left = buildBVH(items[:mid])
			return nil
		})
		g.Go(func() error {
			right = buildBVH(items[mid:])
			return nil
		})
		_ = g.Wait()
	} else {
		left = buildBVH(items[:mid])
		right = buildBVH(items[mid:])
	}

	return &BVHNode{
		left:  left,
		right: right,
		bBox:  left.bBox.Combine(right.bBox),
	}
}

// partitionByMostSpreadAxis reorders the items so that those whose
// bounding box center lies left of the centroid midpoint on the most
// spread axis come first, and returns the partition index. When all
// centroids fall on one side, the numeric midpoint index is used
// instead, which guarantees termination and balance for clustered
// geometry.
func partitionByMostSpreadAxis(items []core.Hittable) int {
	axis, midpoint := mostSpreadAxis(items)

	sorted := make([]core.Hittable, 0, len(items))
	var rightSide []core.Hittable
	for _, item := range items {
		if item.BoundingBox().Center().Axis(axis) < midpoint {
			sorted = append(sorted, item)
		} else {
			rightSide = append(rightSide, item)
		}
	}
	mid := len(sorted)
	sorted = append(sorted, rightSide...)
	copy(items, sorted)

	if mid == 0 || mid == len(items) {
		return len(items) / 2
	}
	return mid
}

// mostSpreadAxis returns the axis with the greatest centroid spread
// and the centroid midpoint on that axis
func mostSpreadAxis(items []core.Hittable) (int, float64) {
	bestAxis := 0
	bestSpread := -1.
	bestMidpoint := 0.

	for axis := 0; axis < 3; axis++ {
		min := items[0].BoundingBox().Center().Axis(axis)
		max := min
		for _, item := range items[1:] {
			c := item.BoundingBox().Center().Axis(axis)
			if c < min {
				min = c
			}
			if c > max {
				max = c
			}
		}
		if spread := max - min; spread > bestSpread {
			bestAxis = axis
			bestSpread = spread
			bestMidpoint = (min + max) / 2
		}
	}
	return bestAxis, bestMidpoint
}

// Hit first tests the node's own bounding box, then queries the left
// child and uses its hit distance to narrow the interval for the right
// child. The narrowing is what gives BVH traversal its sub-linear
// behavior.
func (n *BVHNode) Hit(r core.Ray, rayLength core.Interval, rnd *rand.Rand) (*core.HitRecord, bool) {
	if !n.bBox.Hit(r) {
		return nil, false
	}

	rec, hitLeft := n.left.Hit(r, rayLength, rnd)
	if hitLeft {
		rayLength = core.NewInterval(rayLength.Min, rec.RayLength)
	}
	if recRight, hitRight := n.right.Hit(r, rayLength, rnd); hitRight {
		return recRight, true
	}
	return rec, hitLeft
}

// BoundingBox returns the combined bounding box of both children
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bBox
}

// PDFValue returns 0; a BVH node is never sampled as a light
func (n *BVHNode) PDFValue(origin, direction core.Vec3, rnd *rand.Rand) float64 {
	return 0
}

// RandomDirection returns the zero vector; a BVH node is never sampled as a light
func (n *BVHNode) RandomDirection(origin core.Vec3, rnd *rand.Rand) core.Vec3 {
	return core.Vec3{}
}

// IsLight returns false; lights are discovered through the children
func (n *BVHNode) IsLight() bool {
	return false
}

// Children returns the two child subtrees
func (n *BVHNode) Children() []core.Hittable {
	if n.left == n.right {
		return []core.Hittable{n.left}
	}
	return []core.Hittable{n.left, n.right}
}
