// Package server implements the live-preview web server. Clients open a
// websocket, send one render request and receive a stream of progressively
// refined frames.
package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/image/draw"

	"github.com/sevas/rt1we-go/pkg/core"
	"github.com/sevas/rt1we-go/pkg/raster"
	"github.com/sevas/rt1we-go/pkg/tracer"
)

// Server handles web requests for the raytracer
type Server struct {
	port     int
	upgrader websocket.Upgrader
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{
		port: port,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// RenderRequest is the first message a client sends on the render socket
type RenderRequest struct {
	Width           int        `json:"width"`           // Image width
	Height          int        `json:"height"`          // Image height
	MaxDepth        int        `json:"maxDepth"`        // Maximum ray bounce depth
	SamplesPerPixel int        `json:"samplesPerPixel"` // Final samples per pixel
	Camera          [3]float64 `json:"camera"`          // Camera position
	Seed            int64      `json:"seed"`            // Base seed for the random streams
	PreviewScale    int        `json:"previewScale"`    // Integer upscale factor for the preview
}

// ProgressUpdate is one progressively refined frame sent to the client
type ProgressUpdate struct {
	PassNumber      int    `json:"passNumber"`
	SamplesPerPixel int    `json:"samplesPerPixel"`
	ImageData       string `json:"imageData"` // Base64 encoded PNG
	Stats           Stats  `json:"stats"`
	IsComplete      bool   `json:"isComplete"`
	ElapsedMs       int64  `json:"elapsedMs"`
}

// Stats represents render statistics for a single pass
type Stats struct {
	TotalPixels  int   `json:"totalPixels"`
	TotalSamples int   `json:"totalSamples"`
	PassMs       int64 `json:"passMs"`
}

// errorMessage is sent to the client when a request cannot be served
type errorMessage struct {
	Error string `json:"error"`
}

// Handler returns the server's routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir("static/")))
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/render", s.handleRender)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender upgrades the connection to a websocket, reads one render
// request and streams progressive updates until the final sample count is
// reached or the client goes away.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req RenderRequest
	if err := conn.ReadJSON(&req); err != nil {
		conn.WriteJSON(errorMessage{Error: fmt.Sprintf("Invalid request: %v", err)})
		return
	}
	if err := validateRequest(&req); err != nil {
		conn.WriteJSON(errorMessage{Error: err.Error()})
		return
	}

	startTime := time.Now()
	cameraPos := core.NewVec3(req.Camera[0], req.Camera[1], req.Camera[2])

	// Doubling sample counts per pass gives a fast first frame and roughly
	// constant relative noise reduction per update
	passNumber := 0
	for samples := 1; ; samples *= 2 {
		if samples > req.SamplesPerPixel {
			samples = req.SamplesPerPixel
		}
		passNumber++

		passStart := time.Now()
		img, stats := tracer.RenderWithOptions(tracer.Options{
			Width:           req.Width,
			Height:          req.Height,
			MaxDepth:        req.MaxDepth,
			SamplesPerPixel: samples,
			CameraPos:       cameraPos,
			Seed:            req.Seed,
		})
		imageData, err := encodeBase64PNG(raster.FlipV(img).ToRGBA(), req.PreviewScale)
		if err != nil {
			conn.WriteJSON(errorMessage{Error: fmt.Sprintf("Failed to encode image: %v", err)})
			return
		}

		update := ProgressUpdate{
			PassNumber:      passNumber,
			SamplesPerPixel: samples,
			ImageData:       imageData,
			Stats: Stats{
				TotalPixels:  stats.TotalPixels,
				TotalSamples: stats.TotalSamples,
				PassMs:       time.Since(passStart).Milliseconds(),
			},
			IsComplete: samples == req.SamplesPerPixel,
			ElapsedMs:  time.Since(startTime).Milliseconds(),
		}

		// A write error means the client disconnected
		if err := conn.WriteJSON(update); err != nil {
			return
		}
		if update.IsComplete {
			return
		}
	}
}

// validateRequest applies defaults and bounds to a render request
func validateRequest(req *RenderRequest) error {
	var err error
	if req.Width, err = clampIntParam("width", req.Width, 400, 1, 2000); err != nil {
		return err
	}
	if req.Height, err = clampIntParam("height", req.Height, 225, 1, 2000); err != nil {
		return err
	}
	if req.MaxDepth, err = clampIntParam("maxDepth", req.MaxDepth, 50, 1, 1000); err != nil {
		return err
	}
	if req.SamplesPerPixel, err = clampIntParam("samplesPerPixel", req.SamplesPerPixel, 100, 1, 10000); err != nil {
		return err
	}
	if req.PreviewScale, err = clampIntParam("previewScale", req.PreviewScale, 1, 1, 8); err != nil {
		return err
	}
	if req.Seed == 0 {
		req.Seed = tracer.DefaultSeed
	}

	if req.Width*req.Height > 800*600 && req.SamplesPerPixel > 100 {
		log.Printf("Render warning: large image with high samples may render slowly")
	}
	return nil
}

// clampIntParam substitutes the default for a zero value and rejects values
// outside [min, max]
func clampIntParam(key string, value, defaultValue, min, max int) (int, error) {
	if value == 0 {
		return defaultValue, nil
	}
	if value < min || value > max {
		return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, value)
	}
	return value, nil
}

// encodeBase64PNG encodes the image as a base64 PNG, upscaling it first
// when scale > 1 so small preview renders stay legible in the browser
func encodeBase64PNG(img *image.RGBA, scale int) (string, error) {
	var out image.Image = img
	if scale > 1 {
		bounds := img.Bounds()
		scaled := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*scale, bounds.Dy()*scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, bounds, draw.Src, nil)
		out = scaled
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
