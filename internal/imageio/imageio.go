// Package imageio is the image container: it decodes a PNG into the flat
// RGBA byte buffer plugins operate on, and encodes it back.
package imageio

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
)

// Decode reads the PNG at path and returns its dimensions and pixel bytes,
// row-major, 4 bytes per pixel.
func Decode(path string) (uint32, uint32, []byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to decode PNG '%s': %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Normalize to a zero-origin RGBA image with tight stride so Pix is
	// exactly the width*height*4 buffer contract.
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return uint32(w), uint32(h), rgba.Pix, nil
}

// Encode writes the width*height*4 pixel buffer as a PNG at path.
func Encode(width, height uint32, pixels []byte, path string) error {
	expected := int(width) * int(height) * 4
	if len(pixels) != expected {
		return fmt.Errorf("pixel buffer is %d bytes, want %d (%dx%dx4)",
			len(pixels), expected, width, height)
	}

	img := &image.RGBA{
		Pix:    pixels,
		Stride: int(width) * 4,
		Rect:   image.Rect(0, 0, int(width), int(height)),
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode PNG '%s': %w", path, err)
	}
	return f.Close()
}
