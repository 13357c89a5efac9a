package core

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAABB_UnionContainsBoth(t *testing.T) {
	random := rand.New(rand.NewPCG(1, 2))
	randomBox := func() AABB {
		a := NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		b := NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		return NewAABBFromPoints(a, b)
	}

	for i := 0; i < 200; i++ {
		a, b := randomBox(), randomBox()
		u := a.Union(b)
		require.True(t, u.Contains(a), "union %v must contain %v", u, a)
		require.True(t, u.Contains(b), "union %v must contain %v", u, b)

		// Minimality: each face of the union touches one of the inputs
		for axis := 0; axis < 3; axis++ {
			assert.Equal(t, math.Min(a.Min.Axis(axis), b.Min.Axis(axis)), u.Min.Axis(axis))
			assert.Equal(t, math.Max(a.Max.Axis(axis), b.Max.Axis(axis)), u.Max.Axis(axis))
		}
	}
}

func TestAABB_EmptyIsUnionIdentity(t *testing.T) {
	box := NewAABB(NewVec3(-1, 0, 2), NewVec3(3, 4, 5))
	assert.Equal(t, box, EmptyAABB().Union(box))
	assert.Equal(t, box, box.Union(EmptyAABB()))
	assert.True(t, EmptyAABB().IsEmpty())
	assert.False(t, box.IsEmpty())
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		tMin     float64
		tMax     float64
		expected bool
	}{
		{"straight through", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), 0, 100, true},
		{"miss to the side", NewRay(NewVec3(2, 0, -5), NewVec3(0, 0, 1)), 0, 100, false},
		{"parallel inside slab", NewRay(NewVec3(0.5, 0.5, -5), NewVec3(0, 0, 1)), 0, 100, true},
		{"parallel outside slab", NewRay(NewVec3(0.5, 1.5, -5), NewVec3(0, 0, 1)), 0, 100, false},
		{"interval ends before box", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), 0, 3, false},
		{"origin inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 1, 0)), 0, 100, true},
		{"pointing away", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, -1)), 0, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, box.Hit(tt.ray, tt.tMin, tt.tMax))
		})
	}
}

func TestAABB_Interval(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))

	t0, t1, ok := box.Interval(ray, 0, math.Inf(1))
	require.True(t, ok)
	assert.InDelta(t, 4.0, t0, 1e-12)
	assert.InDelta(t, 6.0, t1, 1e-12)
}

func TestAABB_Pad(t *testing.T) {
	flat := NewAABB(NewVec3(0, 1, 0), NewVec3(2, 1, 2))
	padded := flat.Pad(0.0002)
	assert.Less(t, padded.Min.Y, 1.0)
	assert.Greater(t, padded.Max.Y, 1.0)
	assert.Equal(t, flat.Min.X, padded.Min.X)
}
