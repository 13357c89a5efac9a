package material

import (
	"math"
	"testing"

	"github.com/scifi6546/ray-tracing/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDielectric_ReflectsAndRefracts(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0).Normalize())
	hit := &HitRecord{Normal: core.NewVec3(0, 1, 0), T: 1, FrontFace: true, Material: glass}

	hasReflection, hasRefraction := false, false
	for seed := uint64(0); seed < 1000 && !(hasReflection && hasRefraction); seed++ {
		result, ok := glass.Scatter(ray, hit, core.NewSeededSampler(seed, 0))
		require.True(t, ok)
		assert.True(t, result.IsSpecular)
		assert.Equal(t, core.NewVec3(1, 1, 1), result.Attenuation)

		if result.SpecularRay.Direction.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
	}

	assert.True(t, hasReflection, "expected some Fresnel reflection")
	assert.True(t, hasRefraction, "expected some refraction")
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	// Leaving glass at 60 degrees from the normal exceeds the critical angle of ~41.8 degrees
	dir := core.NewVec3(math.Sin(math.Pi/3), math.Cos(math.Pi/3), 0)
	ray := core.NewRay(core.Vec3{}, dir)
	hit := &HitRecord{Normal: core.NewVec3(0, -1, 0), FrontFace: false}

	for seed := uint64(0); seed < 50; seed++ {
		result, ok := glass.Scatter(ray, hit, core.NewSeededSampler(seed, 1))
		require.True(t, ok)
		assert.Less(t, result.SpecularRay.Direction.Y, 0.0, "ray must stay inside the glass")
	}
}

func TestReflectance(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		ratio    float64
		expected float64
	}{
		{"normal incidence", 1.0, 1.0 / 1.5, 0.04},
		{"grazing incidence", 0.0, 1.0 / 1.5, 1.0},
		{"matched media", 0.5, 1.0, 0.03125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Reflectance(tt.cosine, tt.ratio), 1e-9)
		})
	}
}
