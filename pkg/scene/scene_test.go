package scene

import (
	"math"
	"testing"

	"github.com/sevas/rt1we-go/pkg/core"
	"github.com/sevas/rt1we-go/pkg/material"
	"github.com/sevas/rt1we-go/pkg/renderer"
)

var _ renderer.Scene = (*Scene)(nil)

func TestScene_MaterialTable(t *testing.T) {
	s := NewScene(renderer.NewCamera(renderer.DefaultCameraConfig()),
		core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))

	first := s.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	second := s.AddMaterial(material.NewDielectric(1.5))

	if first != 0 || second != 1 {
		t.Errorf("Expected indices 0 and 1, got %d and %d", first, second)
	}
	if s.MaterialFor(first) == nil || s.MaterialFor(second) == nil {
		t.Error("Valid indices should resolve to materials")
	}

	for _, id := range []int{-1, 2, 99} {
		if s.MaterialFor(id) != nil {
			t.Errorf("Index %d should resolve to nil", id)
		}
	}
}

func TestScene_HitDelegatesToWorld(t *testing.T) {
	s := NewScene(renderer.NewCamera(renderer.DefaultCameraConfig()),
		core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))
	matID := s.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	s.AddSphere(core.NewVec3(0, 0, -2), 0.5, matID)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := s.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected a hit on the sphere")
	}
	if hit.MaterialID != matID {
		t.Errorf("Expected material id %d, got %d", matID, hit.MaterialID)
	}

	miss := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if _, isHit := s.Hit(miss, 0.001, math.Inf(1)); isHit {
		t.Error("Expected a miss for a ray pointing away")
	}
}

func TestScene_BackgroundColors(t *testing.T) {
	top := core.NewVec3(0.5, 0.7, 1.0)
	bottom := core.NewVec3(1, 1, 1)
	s := NewScene(renderer.NewCamera(renderer.DefaultCameraConfig()), top, bottom)

	gotTop, gotBottom := s.BackgroundColors()
	if !gotTop.Equals(top) || !gotBottom.Equals(bottom) {
		t.Errorf("Got (%v, %v), want (%v, %v)", gotTop, gotBottom, top, bottom)
	}
}

func TestDefaultScene(t *testing.T) {
	s := NewDefaultScene(core.NewVec3(0, 0, 0), 16.0/9.0)

	if s.World.Count() != 5 {
		t.Errorf("Expected 5 spheres, got %d", s.World.Count())
	}
	if len(s.Materials) != 4 {
		t.Errorf("Expected 4 materials, got %d", len(s.Materials))
	}
	if s.GetCamera() == nil {
		t.Fatal("Expected a camera")
	}

	// A forward ray hits the center sphere before the ground
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := s.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected the center sphere to be hit")
	}
	if math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected hit at t=0.5, got %f", hit.T)
	}
	if s.MaterialFor(hit.MaterialID) == nil {
		t.Error("Center sphere should reference a valid material")
	}
}
