package geometry

import "github.com/sevas/rt1we-go/pkg/core"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point      core.Vec3 // Point of intersection
	Normal     core.Vec3 // Unit surface normal, oriented against the incoming ray
	T          float64   // Parameter t along the ray
	FrontFace  bool      // Whether the ray hit the front face
	MaterialID int       // Index into the scene's materials table
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length and point away from the surface.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable interface for objects that can be hit by rays
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
}

// HittableList is an unordered collection of hittable objects
type HittableList struct {
	objects []Hittable
}

// NewHittableList creates an empty hittable list
func NewHittableList() *HittableList {
	return &HittableList{}
}

// Add appends an object to the list
func (hl *HittableList) Add(object Hittable) {
	hl.objects = append(hl.objects, object)
}

// Clear removes all objects from the list
func (hl *HittableList) Clear() {
	hl.objects = nil
}

// Count returns the number of objects in the list
func (hl *HittableList) Count() int {
	return len(hl.objects)
}

// Hit finds the closest intersection among all objects within [tMin, tMax].
// The upper bound shrinks to each accepted hit, so the returned record is
// guaranteed to be the nearest along the ray.
func (hl *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closestHit *HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, object := range hl.objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
