package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/sevas/rt1we-go/pkg/core"
	"github.com/sevas/rt1we-go/pkg/integrator"
	"github.com/sevas/rt1we-go/pkg/raster"
)

// SamplingConfig contains rendering quality configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Config contains the full frame configuration
type Config struct {
	Width      int
	Height     int
	Sampling   SamplingConfig
	Seed       int64 // Base seed for the per-row random streams
	NumWorkers int   // 0 = one worker per CPU; 1 = sequential
}

// Scene is what the raytracer needs from a scene: everything the
// integrator needs, plus the camera.
type Scene interface {
	integrator.Scene
	GetCamera() *Camera
}

// Raytracer drives the per-pixel sample loop over a scene
type Raytracer struct {
	scene      Scene
	config     Config
	integrator *integrator.PathTracer
	logger     core.Logger
}

// NewRaytracer creates a new raytracer for the given scene
func NewRaytracer(scene Scene, config Config) *Raytracer {
	return &Raytracer{
		scene:      scene,
		config:     config,
		integrator: integrator.NewPathTracer(),
	}
}

// SetLogger installs a logger for render progress messages
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// Render traces the whole frame and returns the pixel buffer. Row 0 of the
// buffer is the bottom of the frame; callers flip before serializing to
// top-down formats.
//
// Rows are distributed over a worker pool. Each row draws from its own
// random stream seeded from the base seed, so the output is pixel-identical
// for any worker count.
func (rt *Raytracer) Render() (*raster.Image, RenderStats) {
	width, height := rt.config.Width, rt.config.Height
	img := raster.NewImage(width, height)
	if width <= 0 || height <= 0 {
		return img, RenderStats{}
	}

	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	start := time.Now()

	rows := make(chan int, height)
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				rt.renderRow(j, img)
			}
		}()
	}
	for j := 0; j < height; j++ {
		rows <- j
	}
	close(rows)
	wg.Wait()

	stats := RenderStats{
		TotalPixels:     width * height,
		TotalSamples:    width * height * rt.config.Sampling.SamplesPerPixel,
		SamplesPerPixel: rt.config.Sampling.SamplesPerPixel,
		Elapsed:         time.Since(start),
	}

	if rt.logger != nil {
		rt.logger.Printf("rendered %dx%d, %d samples/px, depth %d in %v",
			width, height, stats.SamplesPerPixel, rt.config.Sampling.MaxDepth, stats.Elapsed)
	}

	return img, stats
}

// renderRow traces every pixel of row j with its own deterministic
// random stream
func (rt *Raytracer) renderRow(j int, img *raster.Image) {
	width, height := rt.config.Width, rt.config.Height
	sampling := rt.config.Sampling
	camera := rt.scene.GetCamera()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(rt.config.Seed + int64(j))))

	// Jitter denominators per the image-plane mapping; guarded for
	// one-pixel-wide images
	uDenom := float64(max(width-1, 1))
	vDenom := float64(max(height-1, 1))

	for i := 0; i < width; i++ {
		colorAccum := core.Vec3{}

		for s := 0; s < sampling.SamplesPerPixel; s++ {
			u := (float64(i) + sampler.Get1D()) / uDenom
			v := (float64(j) + sampler.Get1D()) / vDenom

			ray := camera.GetRay(u, v)
			colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.scene, sampler, sampling.MaxDepth))
		}

		var colorVec core.Vec3
		if sampling.SamplesPerPixel > 0 {
			colorVec = colorAccum.Multiply(1.0 / float64(sampling.SamplesPerPixel))
		}

		r, g, b, a := quantizeColor(colorVec)
		img.Put(i, j, r, g, b, a)
	}
}

// quantizeColor applies gamma-2 correction and maps the color to 8-bit
// channels. Clamping to 0.999 keeps the scaled value below 256.
func quantizeColor(colorVec core.Vec3) (r, g, b, a uint8) {
	corrected := colorVec.GammaCorrect(2.0).Clamp(0.0, 0.999)
	return uint8(corrected.X * 256),
		uint8(corrected.Y * 256),
		uint8(corrected.Z * 256),
		255
}
