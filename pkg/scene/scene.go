// Package scene provides scene construction and geometry management
package scene

import (
	"github.com/sevas/rt1we-go/pkg/core"
	"github.com/sevas/rt1we-go/pkg/geometry"
	"github.com/sevas/rt1we-go/pkg/material"
	"github.com/sevas/rt1we-go/pkg/renderer"
)

// Scene holds the world geometry, the materials table, the camera and the
// sky colors. Objects reference materials by index into the table.
type Scene struct {
	Camera      *renderer.Camera
	World       *geometry.HittableList
	Materials   []material.Material
	TopColor    core.Vec3
	BottomColor core.Vec3
}

// NewScene creates an empty scene with the given camera and sky gradient
func NewScene(camera *renderer.Camera, topColor, bottomColor core.Vec3) *Scene {
	return &Scene{
		Camera:      camera,
		World:       geometry.NewHittableList(),
		TopColor:    topColor,
		BottomColor: bottomColor,
	}
}

// AddMaterial appends a material to the table and returns its index
func (s *Scene) AddMaterial(mat material.Material) int {
	s.Materials = append(s.Materials, mat)
	return len(s.Materials) - 1
}

// AddSphere adds a sphere referencing a material by index
func (s *Scene) AddSphere(center core.Vec3, radius float64, materialID int) {
	s.World.Add(geometry.NewSphere(center, radius, materialID))
}

// Hit finds the closest intersection in the scene within [tMin, tMax]
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*geometry.HitRecord, bool) {
	return s.World.Hit(ray, tMin, tMax)
}

// MaterialFor resolves a material index, returning nil for indices outside
// the table
func (s *Scene) MaterialFor(id int) material.Material {
	if id < 0 || id >= len(s.Materials) {
		return nil
	}
	return s.Materials[id]
}

// BackgroundColors returns the sky gradient endpoints
func (s *Scene) BackgroundColors() (top, bottom core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}
