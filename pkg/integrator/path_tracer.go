package integrator

import (
	"math"

	"github.com/sevas/rt1we-go/pkg/core"
	"github.com/sevas/rt1we-go/pkg/geometry"
	"github.com/sevas/rt1we-go/pkg/material"
)

// Scene is what the integrator needs from a scene: intersection, the
// materials table, and the sky colors. Defined here to avoid a circular
// import with the scene package.
type Scene interface {
	Hit(ray core.Ray, tMin, tMax float64) (*geometry.HitRecord, bool)
	MaterialFor(id int) material.Material
	BackgroundColors() (top, bottom core.Vec3)
}

// tMinHit is the lower bound of the hit search interval. A nonzero epsilon
// prevents scattered rays from re-intersecting the surface they left
// (shadow acne).
const tMinHit = 0.001

// PathTracer implements recursive unidirectional path tracing
type PathTracer struct{}

// NewPathTracer creates a new path tracing integrator
func NewPathTracer() *PathTracer {
	return &PathTracer{}
}

// RayColor computes the color for a single ray by walking the scatter chain
// up to depth bounces, multiplying attenuations along the path. Rays that
// escape the scene terminate at the sky gradient; absorbed rays and
// exhausted bounce budgets terminate at black.
func (pt *PathTracer) RayColor(ray core.Ray, scn Scene, sampler core.Sampler, depth int) core.Vec3 {
	// Bounce budget exhausted, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := scn.Hit(ray, tMinHit, math.Inf(1))
	if !isHit {
		return pt.skyGradient(ray, scn)
	}

	mat := scn.MaterialFor(hit.MaterialID)
	if mat == nil {
		// Unknown material behaves like a perfect absorber
		return core.Vec3{}
	}

	scatter, didScatter := mat.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray
		return core.Vec3{}
	}

	incoming := pt.RayColor(scatter.Scattered, scn, sampler, depth-1)
	return scatter.Attenuation.MultiplyVec(incoming)
}

// skyGradient returns the ambient sky color for a ray that missed every
// object: a vertical blend from the bottom color at the horizon to the top
// color overhead.
func (pt *PathTracer) skyGradient(ray core.Ray, scn Scene) core.Vec3 {
	topColor, bottomColor := scn.BackgroundColors()

	unitDirection := ray.Direction.Normalize()

	// Map the y-component from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return core.Lerp(bottomColor, topColor, t)
}
