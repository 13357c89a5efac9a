package geometry

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/material"
)

// BVHNode is an internal node of the Bounding Volume Hierarchy. Leaves are the
// scene objects themselves.
type BVHNode struct {
	Box   core.AABB
	Left  Hittable
	Right Hittable
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection
type BVH struct {
	Root    Hittable
	objects []Hittable // flat member list for light sampling
	box     core.AABB
}

// boxedObject caches an object's bounding box during construction
type boxedObject struct {
	object Hittable
	box    core.AABB
}

// NewBVH constructs a BVH over objects bounded on [time0, time1]. The split axis of
// each node is drawn from sampler.
func NewBVH(objects []Hittable, time0, time1 float64, sampler core.Sampler) (*BVH, error) {
	if len(objects) == 0 {
		return nil, fmt.Errorf("building BVH: %w", core.ErrEmptyObjectList)
	}

	// Copy so that sorting never reorders the caller's slice
	boxed := make([]boxedObject, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("building BVH: object %d (%T): %w", i, object, core.ErrUnbounded)
		}
		boxed[i] = boxedObject{object: object, box: box}
	}

	root, box := buildBVH(boxed, sampler)
	return &BVH{
		Root:    root,
		objects: slices.Clone(objects),
		box:     box,
	}, nil
}

// buildBVH recursively partitions objects at the median along a random axis
func buildBVH(objects []boxedObject, sampler core.Sampler) (Hittable, core.AABB) {
	if len(objects) == 1 {
		return objects[0].object, objects[0].box
	}

	axis := core.SampleIndex(sampler, 3)
	byMin := func(a, b boxedObject) int {
		return cmp.Compare(a.box.Min.Axis(axis), b.box.Min.Axis(axis))
	}

	var left, right Hittable
	var leftBox, rightBox core.AABB
	if len(objects) == 2 {
		first, second := objects[0], objects[1]
		if byMin(second, first) < 0 {
			first, second = second, first
		}
		left, leftBox = first.object, first.box
		right, rightBox = second.object, second.box
	} else {
		slices.SortStableFunc(objects, byMin)
		mid := len(objects) / 2
		left, leftBox = buildBVH(objects[:mid], sampler)
		right, rightBox = buildBVH(objects[mid:], sampler)
	}

	box := leftBox.Union(rightBox)
	return &BVHNode{Box: box, Left: left, Right: right}, box
}

// Hit tests the node's box, then both children, returning the closer hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax)
	if hitLeft {
		tMax = leftHit.T
	}
	if rightHit, hitRight := n.Right.Hit(ray, tMin, tMax); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the union of the children's boxes
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// Children returns the node's two subtrees
func (n *BVHNode) Children() []Hittable {
	return []Hittable{n.Left, n.Right}
}

// Prob averages the densities of both subtrees
func (n *BVHNode) Prob(ray core.Ray) float64 {
	return averageProb(n.Children(), ray)
}

// GenerateRayInArea samples one of the subtrees uniformly
func (n *BVHNode) GenerateRayInArea(origin core.Vec3, time float64, sampler core.Sampler) core.RayAreaInfo {
	return generateFromOne(n.Children(), origin, time, sampler)
}

// Hit tests if a ray intersects any object in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return bvh.Root.Hit(ray, tMin, tMax)
}

// BoundingBox returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return bvh.box, true
}

// Children returns the root of the hierarchy
func (bvh *BVH) Children() []Hittable {
	return []Hittable{bvh.Root}
}

// Prob averages the densities of every object, as a list of the same objects would
func (bvh *BVH) Prob(ray core.Ray) float64 {
	return averageProb(bvh.objects, ray)
}

// GenerateRayInArea samples one object uniformly
func (bvh *BVH) GenerateRayInArea(origin core.Vec3, time float64, sampler core.Sampler) core.RayAreaInfo {
	return generateFromOne(bvh.objects, origin, time, sampler)
}

// getStats returns statistics about the BVH structure
func (bvh *BVH) getStats() bvhStats {
	stats := bvhStats{}
	bvh.collectStats(bvh.Root, 0, &stats)

	// Calculate average depth after collecting all data
	if stats.leafNodes > 0 {
		stats.avgDepth = stats.avgDepth / float64(stats.leafNodes)
	}

	return stats
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes int
	leafNodes  int
	maxDepth   int
	avgDepth   float64
}

// collectStats recursively collects statistics about the BVH
func (bvh *BVH) collectStats(node Hittable, depth int, stats *bvhStats) {
	stats.totalNodes++

	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}

	if inner, ok := node.(*BVHNode); ok {
		bvh.collectStats(inner.Left, depth+1, stats)
		bvh.collectStats(inner.Right, depth+1, stats)
		return
	}

	// Leaf object
	stats.leafNodes++
	stats.avgDepth += float64(depth) // Accumulate depth for average calculation
}
