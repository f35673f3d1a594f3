package scene

import (
	"github.com/sevas/rt1we-go/pkg/core"
	"github.com/sevas/rt1we-go/pkg/material"
	"github.com/sevas/rt1we-go/pkg/renderer"
)

// NewDefaultScene creates the reference scene: a large matte ground sphere,
// a matte center sphere, a hollow glass sphere on the left and a fuzzy
// metal sphere on the right, under a blue-to-white sky.
func NewDefaultScene(lookFrom core.Vec3, aspectRatio float64) *Scene {
	cameraConfig := renderer.CameraConfig{
		LookFrom:    lookFrom,
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: aspectRatio,
	}

	s := NewScene(
		renderer.NewCamera(cameraConfig),
		core.NewVec3(0.5, 0.7, 1.0),
		core.NewVec3(1.0, 1.0, 1.0),
	)

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	center := s.AddMaterial(material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	glass := s.AddMaterial(material.NewDielectric(1.5))
	metal := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3))

	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, ground)
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, center)
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, glass)
	// Negative radius flips the normals, making a hollow glass shell
	s.AddSphere(core.NewVec3(-1, 0, -1), -0.45, glass)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, metal)

	return s
}
