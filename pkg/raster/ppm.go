package raster

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// PPM codec for the legacy plain-text 'P3' format. The file is a
// three-line header (magic, dimensions, max channel value) followed by one
// decimal RGB triple per pixel in buffer order. See the netpbm
// documentation: https://netpbm.sourceforge.net/doc/ppm.html

const ppmMagic = "P3"
const ppmMaxValue = 255

// WritePPM serializes an image as plain-text PPM. The alpha channel is
// dropped.
func WritePPM(w io.Writer, im *Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n%d\n", ppmMagic, im.Width, im.Height, ppmMaxValue); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}

	count := im.Width * im.Height
	for i := 0; i < count; i++ {
		r := im.Pix[i*4]
		g := im.Pix[i*4+1]
		b := im.Pix[i*4+2]
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
			return fmt.Errorf("writing pixel %d: %w", i, err)
		}
	}

	return bw.Flush()
}

// ReadPPM parses a plain-text PPM image. Alpha is not stored in the format
// and is reset to fully opaque. Tokens may be separated by any whitespace.
func ReadPPM(r io.Reader) (*Image, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return sc.Text(), nil
	}

	magic, err := next()
	if err != nil {
		return nil, fmt.Errorf("reading ppm magic: %w", err)
	}
	if magic != ppmMagic {
		return nil, fmt.Errorf("unsupported ppm magic %q, want %q", magic, ppmMagic)
	}

	var width, height, maxValue int
	for _, field := range []*int{&width, &height, &maxValue} {
		tok, err := next()
		if err != nil {
			return nil, fmt.Errorf("reading ppm header: %w", err)
		}
		if _, err := fmt.Sscanf(tok, "%d", field); err != nil {
			return nil, fmt.Errorf("parsing ppm header token %q: %w", tok, err)
		}
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid ppm dimensions %dx%d", width, height)
	}
	if maxValue != ppmMaxValue {
		return nil, fmt.Errorf("unsupported ppm max value %d, want %d", maxValue, ppmMaxValue)
	}

	im := NewImage(width, height)
	count := width * height
	for i := 0; i < count; i++ {
		var rgb [3]int
		for c := 0; c < 3; c++ {
			tok, err := next()
			if err != nil {
				return nil, fmt.Errorf("reading pixel %d: %w", i, err)
			}
			if _, err := fmt.Sscanf(tok, "%d", &rgb[c]); err != nil {
				return nil, fmt.Errorf("parsing pixel %d token %q: %w", i, tok, err)
			}
			if rgb[c] < 0 || rgb[c] > ppmMaxValue {
				return nil, fmt.Errorf("pixel %d channel out of range: %d", i, rgb[c])
			}
		}
		im.Pix[i*4] = uint8(rgb[0])
		im.Pix[i*4+1] = uint8(rgb[1])
		im.Pix[i*4+2] = uint8(rgb[2])
		im.Pix[i*4+3] = 255
	}

	return im, nil
}

// WritePPMFile writes an image to a PPM file at the given path
func WritePPMFile(path string, im *Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WritePPM(f, im); err != nil {
		return err
	}
	return f.Close()
}

// ReadPPMFile reads a PPM image from the given path
func ReadPPMFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return ReadPPM(f)
}
