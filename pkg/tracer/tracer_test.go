package tracer

import (
	"testing"

	"github.com/sevas/rt1we-go/pkg/core"
	"github.com/sevas/rt1we-go/pkg/raster"
)

func countDiffering(a, b *raster.Image) int {
	count := 0
	for j := 0; j < a.Height; j++ {
		for i := 0; i < a.Width; i++ {
			ar, ag, ab, _ := a.At(i, j)
			br, bg, bb, _ := b.At(i, j)
			if ar != br || ag != bg || ab != bb {
				count++
			}
		}
	}
	return count
}

func TestRender_Dimensions(t *testing.T) {
	img := Render(16, 9, 5, 1, core.NewVec3(0, 0, 0))

	if img.Width != 16 || img.Height != 9 {
		t.Fatalf("Expected 16x9, got %dx%d", img.Width, img.Height)
	}
	if len(img.Pix) != 16*9*4 {
		t.Errorf("Expected %d buffer bytes, got %d", 16*9*4, len(img.Pix))
	}
}

func TestRender_CoversFrame(t *testing.T) {
	width, height := 16, 9
	img := Render(width, height, 5, 1, core.NewVec3(0, 0, 0))

	blank := raster.NewImage(width, height)
	differing := countDiffering(img, blank)
	if differing <= width*height/2 {
		t.Errorf("Only %d of %d pixels differ from a blank image", differing, width*height)
	}
}

func TestRender_Deterministic(t *testing.T) {
	first := Render(12, 8, 4, 2, core.NewVec3(0, 0, 0))
	second := Render(12, 8, 4, 2, core.NewVec3(0, 0, 0))

	if n := countDiffering(first, second); n != 0 {
		t.Errorf("Repeated renders differ in %d pixels", n)
	}
}

func TestRender_CameraPositionMatters(t *testing.T) {
	origin := Render(12, 8, 4, 2, core.NewVec3(0, 0, 0))
	moved := Render(12, 8, 4, 2, core.NewVec3(-2, 2, 1))

	if countDiffering(origin, moved) == 0 {
		t.Error("Moving the camera should change the image")
	}
}

func TestRenderWithOptions_Seeds(t *testing.T) {
	base := Options{
		Width: 12, Height: 8, MaxDepth: 4, SamplesPerPixel: 2,
		Seed: 42, NumWorkers: 1,
	}
	other := base
	other.Seed = 7

	baseImg, _ := RenderWithOptions(base)
	otherImg, _ := RenderWithOptions(other)

	if countDiffering(baseImg, otherImg) == 0 {
		t.Error("Different seeds produced identical images")
	}
}

func TestRenderWithOptions_Stats(t *testing.T) {
	_, stats := RenderWithOptions(Options{
		Width: 10, Height: 5, MaxDepth: 3, SamplesPerPixel: 4,
		Seed: 42,
	})

	if stats.TotalPixels != 50 {
		t.Errorf("Expected 50 total pixels, got %d", stats.TotalPixels)
	}
	if stats.TotalSamples != 200 {
		t.Errorf("Expected 200 total samples, got %d", stats.TotalSamples)
	}
	if stats.SamplesPerPixel != 4 {
		t.Errorf("Expected 4 samples per pixel, got %d", stats.SamplesPerPixel)
	}
}

func TestRender_DegenerateInputs(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"Zero width", 0, 9},
		{"Zero height", 16, 0},
		{"Both zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := Render(tt.width, tt.height, 5, 1, core.NewVec3(0, 0, 0))
			if len(img.Pix) != 0 {
				t.Errorf("Expected empty buffer, got %d bytes", len(img.Pix))
			}
		})
	}
}
