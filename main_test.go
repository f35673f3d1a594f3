package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sevas/rt1we-go/pkg/core"
	"github.com/sevas/rt1we-go/pkg/raster"
)

func TestParseCameraPos(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    core.Vec3
		expectError bool
	}{
		{"origin", "0,0,0", core.NewVec3(0, 0, 0), false},
		{"negative", "-2,2,1", core.NewVec3(-2, 2, 1), false},
		{"fractional", "0.5,-0.25,1.5", core.NewVec3(0.5, -0.25, 1.5), false},
		{"spaces", " 1 , 2 , 3 ", core.NewVec3(1, 2, 3), false},
		{"too few components", "1,2", core.Vec3{}, true},
		{"too many components", "1,2,3,4", core.Vec3{}, true},
		{"not a number", "1,two,3", core.Vec3{}, true},
		{"empty", "", core.Vec3{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCameraPos(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected an error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.input, err)
			}
			if !got.Equals(tt.expected) {
				t.Errorf("Got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"render.ppm", "ppm"},
		{"render.png", "png"},
		{"render.bmp", "bmp"},
		{"render", "ppm"},
		{"out/render.txt", "ppm"},
	}

	for _, tt := range tests {
		if got := formatFromPath(tt.path); got != tt.expected {
			t.Errorf("formatFromPath(%q) = %q, want %q", tt.path, got, tt.expected)
		}
	}
}

func TestSaveImage(t *testing.T) {
	img := raster.NewImage(4, 3)
	img.Put(1, 1, 200, 100, 50, 255)
	dir := t.TempDir()

	tests := []struct {
		name   string
		format string
		magic  []byte
	}{
		{"ppm", "ppm", []byte("P3")},
		{"png", "png", []byte("\x89PNG")},
		{"bmp", "bmp", []byte("BM")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "out."+tt.format)
			if err := saveImage(path, tt.format, img); err != nil {
				t.Fatalf("saveImage failed: %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("Reading output failed: %v", err)
			}
			if len(data) < len(tt.magic) || string(data[:len(tt.magic)]) != string(tt.magic) {
				t.Errorf("Output does not start with %q", tt.magic)
			}
		})
	}
}

func TestSaveImage_UnknownFormat(t *testing.T) {
	img := raster.NewImage(2, 2)
	if err := saveImage(filepath.Join(t.TempDir(), "out.gif"), "gif", img); err == nil {
		t.Error("Expected an error for an unknown format")
	}
}
