package material

import (
	"github.com/sevas/rt1we-go/pkg/core"
	"github.com/sevas/rt1we-go/pkg/geometry"
)

// Material interface for surfaces that can scatter rays.
// Scatter returns the outgoing ray and attenuation, or false when the
// ray is absorbed.
type Material interface {
	Scatter(rayIn core.Ray, hit geometry.HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation along the path
}
