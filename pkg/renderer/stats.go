package renderer

import "time"

// RenderStats contains statistics about a completed render pass
type RenderStats struct {
	TotalPixels     int           // Number of pixels rendered
	TotalSamples    int           // Total number of rays traced
	SamplesPerPixel int           // Samples taken for each pixel
	Elapsed         time.Duration // Wall-clock render time
}
