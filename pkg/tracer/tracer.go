// Package tracer is the high-level entry point: it assembles the default
// scene and renders it into a pixel buffer.
package tracer

import (
	"github.com/sevas/rt1we-go/pkg/core"
	"github.com/sevas/rt1we-go/pkg/raster"
	"github.com/sevas/rt1we-go/pkg/renderer"
	"github.com/sevas/rt1we-go/pkg/scene"
)

// DefaultSeed is the base seed used when no seed is given
const DefaultSeed = 42

// Options configures a render of the default scene
type Options struct {
	Width           int
	Height          int
	MaxDepth        int
	SamplesPerPixel int
	CameraPos       core.Vec3
	Seed            int64
	NumWorkers      int // 0 = one worker per CPU
	Logger          core.Logger
}

// Render traces the default scene and returns the pixel buffer. Row 0 is
// the bottom of the frame.
func Render(width, height, maxDepth, samplesPerPixel int, cameraPos core.Vec3) *raster.Image {
	img, _ := RenderWithOptions(Options{
		Width:           width,
		Height:          height,
		MaxDepth:        maxDepth,
		SamplesPerPixel: samplesPerPixel,
		CameraPos:       cameraPos,
		Seed:            DefaultSeed,
	})
	return img
}

// RenderWithOptions traces the default scene with full control over seed,
// worker count and logging
func RenderWithOptions(opts Options) (*raster.Image, renderer.RenderStats) {
	aspectRatio := 1.0
	if opts.Width > 0 && opts.Height > 0 {
		aspectRatio = float64(opts.Width) / float64(opts.Height)
	}

	scn := scene.NewDefaultScene(opts.CameraPos, aspectRatio)

	rt := renderer.NewRaytracer(scn, renderer.Config{
		Width:  opts.Width,
		Height: opts.Height,
		Sampling: renderer.SamplingConfig{
			SamplesPerPixel: opts.SamplesPerPixel,
			MaxDepth:        opts.MaxDepth,
		},
		Seed:       opts.Seed,
		NumWorkers: opts.NumWorkers,
	})
	if opts.Logger != nil {
		rt.SetLogger(opts.Logger)
	}

	return rt.Render()
}
