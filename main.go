package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/sevas/rt1we-go/pkg/core"
	"github.com/sevas/rt1we-go/pkg/raster"
	"github.com/sevas/rt1we-go/pkg/tracer"
)

func main() {
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 225, "Image height in pixels")
	depth := flag.Int("depth", 50, "Maximum ray bounce depth")
	samples := flag.Int("samples", 100, "Samples per pixel")
	seed := flag.Int64("seed", tracer.DefaultSeed, "Base seed for the random streams")
	workers := flag.Int("workers", 0, "Number of render workers (0 = one per CPU)")
	cameraFlag := flag.String("camera", "0,0,0", "Camera position as x,y,z")
	out := flag.String("out", "render.ppm", "Output file path")
	format := flag.String("format", "", "Output format: ppm, png or bmp (default: from file extension)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Ray tracer")
		fmt.Println("Usage: rt1we [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	cameraPos, err := parseCameraPos(*cameraFlag)
	if err != nil {
		log.Fatalf("Invalid -camera value: %v", err)
	}

	outFormat := *format
	if outFormat == "" {
		outFormat = formatFromPath(*out)
	}

	fmt.Printf("Rendering %dx%d, %d samples/px, depth %d...\n", *width, *height, *samples, *depth)

	img, stats := tracer.RenderWithOptions(tracer.Options{
		Width:           *width,
		Height:          *height,
		MaxDepth:        *depth,
		SamplesPerPixel: *samples,
		CameraPos:       cameraPos,
		Seed:            *seed,
		NumWorkers:      *workers,
	})

	fmt.Printf("Render completed in %v (%d rays)\n", stats.Elapsed, stats.TotalSamples)

	// The frame buffer is bottom-up; file formats expect the top row first
	img = raster.FlipV(img)

	if err := saveImage(*out, outFormat, img); err != nil {
		log.Fatalf("Error saving image: %v", err)
	}

	fmt.Printf("Render saved as %s\n", *out)
}

// parseCameraPos parses a position given as "x,y,z"
func parseCameraPos(s string) (core.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected x,y,z, got %q", s)
	}

	var coords [3]float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		coords[i] = value
	}

	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}

// formatFromPath guesses the output format from the file extension,
// defaulting to ppm
func formatFromPath(path string) string {
	switch {
	case strings.HasSuffix(path, ".png"):
		return "png"
	case strings.HasSuffix(path, ".bmp"):
		return "bmp"
	default:
		return "ppm"
	}
}

// saveImage writes the image in the requested format
func saveImage(path, format string, img *raster.Image) error {
	switch format {
	case "ppm":
		return raster.WritePPMFile(path, img)
	case "png", "bmp":
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer file.Close()

		if format == "png" {
			return png.Encode(file, img.ToRGBA())
		}
		return bmp.Encode(file, img.ToRGBA())
	default:
		return fmt.Errorf("unknown format %q (want ppm, png or bmp)", format)
	}
}
