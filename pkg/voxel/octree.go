// Package voxel provides a sparse voxel octree that can be placed in a scene like any
// other object.
package voxel

import (
	"errors"
	"fmt"
	"math"

	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/scifi6546/ray-tracing/pkg/material"
)

// ErrMaterialIndex is returned when a solid voxel refers to a material outside the palette
var ErrMaterialIndex = errors.New("material index outside palette")

// Func decides the content of the voxel at integer coordinates: its palette index
// and whether it is solid.
type Func func(x, y, z int) (index uint16, solid bool)

// node is either an interior node with eight children or a uniform leaf.
// Child i covers the octant with x offset i&1, y offset i&2 and z offset i&4.
type node struct {
	children *[8]*node
	solid    bool
	material uint16
}

func (n *node) isLeaf() bool {
	return n.children == nil
}

// sameLeaf reports whether two leaves hold identical content
func (n *node) sameLeaf(other *node) bool {
	if !n.isLeaf() || !other.isLeaf() || n.solid != other.solid {
		return false
	}
	return !n.solid || n.material == other.material
}

// Octree is a cubic volume of size³ voxels, each voxelSize wide, whose minimum
// corner sits at origin
type Octree struct {
	root      *node
	size      int
	origin    core.Vec3
	voxelSize float64
	palette   material.Palette
}

// New builds an octree by evaluating fn for every voxel of a size³ volume.
// Uniform regions collapse into single leaves.
func New(size int, origin core.Vec3, voxelSize float64, palette material.Palette, fn Func) (*Octree, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("octree size %d is not a power of two: %w", size, core.ErrInvalidSize)
	}
	if voxelSize <= 0 {
		return nil, fmt.Errorf("voxel size %g must be positive: %w", voxelSize, core.ErrInvalidSize)
	}

	b := builder{fn: fn, paletteSize: len(palette)}
	root := b.build(0, 0, 0, size)
	if b.err != nil {
		return nil, b.err
	}

	return &Octree{
		root:      root,
		size:      size,
		origin:    origin,
		voxelSize: voxelSize,
		palette:   palette,
	}, nil
}

// FromFlags builds an octree from explicit solid flags laid out x-fastest
// (index x + y*size + z*size*size). Every solid voxel uses material index.
func FromFlags(size int, origin core.Vec3, voxelSize float64, palette material.Palette, flags []bool, index uint16) (*Octree, error) {
	if len(flags) != size*size*size {
		return nil, fmt.Errorf("%d flags for a volume of size %d: %w", len(flags), size, core.ErrInvalidSize)
	}
	return New(size, origin, voxelSize, palette, func(x, y, z int) (uint16, bool) {
		return index, flags[x+y*size+z*size*size]
	})
}

// Cube fills the whole volume with material index
func Cube(index uint16) Func {
	return func(x, y, z int) (uint16, bool) {
		return index, true
	}
}

// Sphere fills the voxels whose centers lie inside the largest sphere that fits a
// volume of the given size
func Sphere(size int, index uint16) Func {
	c := float64(size) / 2
	radiusSquared := c * c
	return func(x, y, z int) (uint16, bool) {
		dx, dy, dz := float64(x)+0.5-c, float64(y)+0.5-c, float64(z)+0.5-c
		return index, dx*dx+dy*dy+dz*dz <= radiusSquared
	}
}

// builder evaluates the volume function top-down, collapsing uniform octants
type builder struct {
	fn          Func
	paletteSize int
	err         error
}

func (b *builder) build(x, y, z, size int) *node {
	if b.err != nil {
		return nil
	}

	if size == 1 {
		index, solid := b.fn(x, y, z)
		if !solid {
			return &node{}
		}
		if int(index) >= b.paletteSize {
			b.err = fmt.Errorf("voxel (%d, %d, %d) uses index %d with %d materials: %w", x, y, z, index, b.paletteSize, ErrMaterialIndex)
			return nil
		}
		return &node{solid: true, material: index}
	}

	half := size / 2
	var children [8]*node
	for i := range children {
		children[i] = b.build(x+(i&1)*half, y+(i>>1&1)*half, z+(i>>2&1)*half, half)
		if b.err != nil {
			return nil
		}
	}

	for _, child := range children[1:] {
		if !child.sameLeaf(children[0]) {
			return &node{children: &children}
		}
	}
	return children[0]
}

// Size returns the edge length of the volume in voxels
func (o *Octree) Size() int {
	return o.size
}

// Bounds returns the world-space box of the volume
func (o *Octree) Bounds() core.AABB {
	extent := float64(o.size) * o.voxelSize
	return core.NewAABB(o.origin, o.origin.Add(core.NewVec3(extent, extent, extent)))
}

// NodeCount returns the number of nodes in the tree, leaves included
func (o *Octree) NodeCount() int {
	return countNodes(o.root)
}

func countNodes(n *node) int {
	if n.isLeaf() {
		return 1
	}
	count := 1
	for _, child := range n.children {
		count += countNodes(child)
	}
	return count
}

// Get returns the content of the voxel at integer coordinates
func (o *Octree) Get(x, y, z int) (uint16, bool) {
	if x < 0 || y < 0 || z < 0 || x >= o.size || y >= o.size || z >= o.size {
		return 0, false
	}
	n, size := o.root, o.size
	for !n.isLeaf() {
		size /= 2
		i := 0
		if x >= size {
			i, x = i|1, x-size
		}
		if y >= size {
			i, y = i|2, y-size
		}
		if z >= size {
			i, z = i|4, z-size
		}
		n = n.children[i]
	}
	return n.material, n.solid
}

// BoundingBox returns the volume's box
func (o *Octree) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return o.Bounds(), true
}

// Prob is not supported for voxel volumes
func (o *Octree) Prob(ray core.Ray) float64 {
	panic(fmt.Errorf("Octree.Prob: %w", core.ErrUnsupported))
}

// GenerateRayInArea is not supported for voxel volumes
func (o *Octree) GenerateRayInArea(origin core.Vec3, time float64, sampler core.Sampler) core.RayAreaInfo {
	panic(fmt.Errorf("Octree.GenerateRayInArea: %w", core.ErrUnsupported))
}

// Hit walks the tree front to back and returns the first solid voxel face the ray meets
func (o *Octree) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !o.Bounds().Hit(ray, tMin, tMax) {
		return nil, false
	}
	return o.hitNode(o.root, o.Bounds(), ray, tMin, tMax)
}

func (o *Octree) hitNode(n *node, box core.AABB, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if n.isLeaf() {
		if !n.solid {
			return nil, false
		}
		return o.hitLeaf(n, box, ray, tMin, tMax)
	}

	// Order the octants the ray actually crosses by entry distance
	type candidate struct {
		index int
		box   core.AABB
		enter float64
	}
	var candidates [8]candidate
	count := 0
	center := box.Center()
	for i, child := range n.children {
		if child.isLeaf() && !child.solid {
			continue
		}
		childBox := octant(box, center, i)
		enter, _, ok := childBox.Interval(ray, tMin, tMax)
		if !ok {
			continue
		}
		c := candidate{index: i, box: childBox, enter: enter}
		j := count
		for j > 0 && candidates[j-1].enter > c.enter {
			candidates[j] = candidates[j-1]
			j--
		}
		candidates[j] = c
		count++
	}

	for _, c := range candidates[:count] {
		if hit, ok := o.hitNode(n.children[c.index], c.box, ray, tMin, tMax); ok {
			return hit, true
		}
	}
	return nil, false
}

// octant returns the box of child i of a node spanning box
func octant(box core.AABB, center core.Vec3, i int) core.AABB {
	child := box
	if i&1 != 0 {
		child.Min.X = center.X
	} else {
		child.Max.X = center.X
	}
	if i&2 != 0 {
		child.Min.Y = center.Y
	} else {
		child.Max.Y = center.Y
	}
	if i&4 != 0 {
		child.Min.Z = center.Z
	} else {
		child.Max.Z = center.Z
	}
	return child
}

// hitLeaf intersects a solid leaf. The entry face is reported when it lies in range;
// a ray starting inside the leaf reports its exit face instead.
func (o *Octree) hitLeaf(n *node, box core.AABB, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	enter, exit, enterAxis, exitAxis, ok := faces(box, ray)
	if !ok {
		return nil, false
	}

	t, axis, exiting := enter, enterAxis, false
	if t <= tMin {
		t, axis, exiting = exit, exitAxis, true
	}
	if t <= tMin || t >= tMax || axis < 0 {
		return nil, false
	}

	// The outward normal of the crossed face opposes the ray on entry and follows it on exit
	sign := -math.Copysign(1, ray.Direction.Axis(axis))
	if exiting {
		sign = -sign
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: o.palette.At(n.material),
	}
	hit.SetFaceNormal(ray, core.Vec3{}.WithAxis(axis, sign))
	hit.UV = o.faceUV(hit.Point, axis)
	return hit, true
}

// faceUV returns the position of p within its voxel face, along the two axes other than axis
func (o *Octree) faceUV(p core.Vec3, axis int) core.Vec2 {
	local := p.Subtract(o.origin).Multiply(1 / o.voxelSize)
	a, b := (axis+1)%3, (axis+2)%3
	u := local.Axis(a) - math.Floor(local.Axis(a))
	v := local.Axis(b) - math.Floor(local.Axis(b))
	return core.NewVec2(u, v)
}

// faces computes the unclipped slab interval of the ray through box and the axes of
// the entry and exit faces. An axis of -1 means the ray is parallel to every slab it
// is bounded by on that side.
func faces(box core.AABB, ray core.Ray) (enter, exit float64, enterAxis, exitAxis int, ok bool) {
	enter, exit = math.Inf(-1), math.Inf(1)
	enterAxis, exitAxis = -1, -1

	for axis := 0; axis < 3; axis++ {
		lo, hi := box.Min.Axis(axis), box.Max.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		if math.Abs(direction) < 1e-12 {
			if origin < lo || origin > hi {
				return 0, 0, -1, -1, false
			}
			continue
		}

		t1 := (lo - origin) / direction
		t2 := (hi - origin) / direction
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > enter {
			enter, enterAxis = t1, axis
		}
		if t2 < exit {
			exit, exitAxis = t2, axis
		}
	}

	return enter, exit, enterAxis, exitAxis, enter <= exit
}
