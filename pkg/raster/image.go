// Package raster provides the RGBA pixel buffer the renderer writes into
// and codecs for serializing it.
package raster

import "image"

// Pixels start dark gray rather than black so an untouched buffer is
// distinguishable from a rendered black one.
const (
	initGray  = 10
	initAlpha = 255
)

// Image is a width × height buffer of 4-channel 8-bit pixels, row-major.
type Image struct {
	Width  int
	Height int
	Pix    []uint8 // RGBA interleaved, 4 bytes per pixel
}

// NewImage creates an image initialized to opaque dark gray. Zero
// dimensions yield an empty buffer.
func NewImage(width, height int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	pix := make([]uint8, width*height*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i] = initGray
		pix[i+1] = initGray
		pix[i+2] = initGray
		pix[i+3] = initAlpha
	}
	return &Image{Width: width, Height: height, Pix: pix}
}

// At returns the RGBA components of the pixel at (i, j)
func (im *Image) At(i, j int) (r, g, b, a uint8) {
	idx := (j*im.Width + i) * 4
	return im.Pix[idx], im.Pix[idx+1], im.Pix[idx+2], im.Pix[idx+3]
}

// Put sets the pixel at (i, j)
func (im *Image) Put(i, j int, r, g, b, a uint8) {
	idx := (j*im.Width + i) * 4
	im.Pix[idx] = r
	im.Pix[idx+1] = g
	im.Pix[idx+2] = b
	im.Pix[idx+3] = a
}

// AtPacked returns the pixel at (i, j) packed as 0xRRGGBBAA
func (im *Image) AtPacked(i, j int) uint32 {
	r, g, b, a := im.At(i, j)
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

// PutPacked sets the pixel at (i, j) from a 0xRRGGBBAA value
func (im *Image) PutPacked(i, j int, rgba uint32) {
	im.Put(i, j, uint8(rgba>>24), uint8(rgba>>16), uint8(rgba>>8), uint8(rgba))
}

// FlipV returns a copy of the image with its rows in reverse order.
// The renderer stores row 0 at the bottom of the frame; callers flip
// before serializing to top-down formats.
func FlipV(im *Image) *Image {
	flipped := &Image{
		Width:  im.Width,
		Height: im.Height,
		Pix:    make([]uint8, len(im.Pix)),
	}
	rowBytes := im.Width * 4
	for j := 0; j < im.Height; j++ {
		src := j * rowBytes
		dst := (im.Height - 1 - j) * rowBytes
		copy(flipped.Pix[dst:dst+rowBytes], im.Pix[src:src+rowBytes])
	}
	return flipped
}

// ToRGBA converts the buffer to a standard library image for use with the
// image/png and x/image encoders.
func (im *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, im.Width, im.Height))
	for j := 0; j < im.Height; j++ {
		src := j * im.Width * 4
		dst := rgba.PixOffset(0, j)
		copy(rgba.Pix[dst:dst+im.Width*4], im.Pix[src:src+im.Width*4])
	}
	return rgba
}
