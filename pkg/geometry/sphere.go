package geometry

import (
	"math"

	"github.com/sevas/rt1we-go/pkg/core"
)

// Sphere represents a sphere shape. A negative radius flips the surface
// normals, which is used for hollow glass shells.
type Sphere struct {
	Center     core.Vec3
	Radius     float64
	MaterialID int
}

// NewSphere creates a new sphere referencing a material by index
func NewSphere(center core.Vec3, radius float64, materialID int) *Sphere {
	return &Sphere{
		Center:     center,
		Radius:     radius,
		MaterialID: materialID,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c

	// No intersection if discriminant is negative
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		// Try the farther intersection point
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			// Both intersections are outside valid range
			return nil, false
		}
	}

	hit := &HitRecord{
		T:          root,
		Point:      ray.At(root),
		MaterialID: s.MaterialID,
	}

	// Outward normal from center to hit point; dividing by the signed
	// radius flips it for negative-radius shells
	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
