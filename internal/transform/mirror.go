package transform

import (
	"go.uber.org/zap"
)

// MirrorSettings configures the mirror transformation. Both flags default
// to false.
type MirrorSettings struct {
	Horizontal bool `json:"horizontal"`
	Vertical   bool `json:"vertical"`
}

// Mirror flips the width*height*4 pixel buffer in place, horizontally
// and/or vertically depending on params. With both flags false it is a
// no-op; with both true it is equivalent to a 180-degree rotation.
func Mirror(logger *zap.Logger, width, height uint32, pixels []byte, params string) {
	defer recoverGuard(logger, "mirror")

	var s MirrorSettings
	if err := parseSettings(params, &s); err != nil {
		logger.Error("mirror: failed to parse params JSON",
			zap.Error(err),
			zap.String("params", params),
		)
		return
	}

	if !s.Horizontal && !s.Vertical {
		return
	}

	w, h := int(width), int(height)

	if s.Horizontal {
		flipHorizontal(w, h, pixels)
	}
	if s.Vertical {
		flipVertical(w, h, pixels)
	}
}

// flipHorizontal swaps pixel (x, y) with (w-1-x, y) within each row.
// Integer division leaves the middle column untouched on odd widths.
func flipHorizontal(w, h int, pixels []byte) {
	for y := 0; y < h; y++ {
		for x := 0; x < w/2; x++ {
			left := (y*w + x) * 4
			right := (y*w + (w - 1 - x)) * 4
			for i := 0; i < 4; i++ {
				pixels[left+i], pixels[right+i] = pixels[right+i], pixels[left+i]
			}
		}
	}
}

// flipVertical swaps row y with row h-1-y, each row being w*4 contiguous
// bytes. The middle row stays in place on odd heights.
func flipVertical(w, h int, pixels []byte) {
	rowBytes := w * 4
	for y := 0; y < h/2; y++ {
		top := y * rowBytes
		bottom := (h - 1 - y) * rowBytes
		for i := 0; i < rowBytes; i++ {
			pixels[top+i], pixels[bottom+i] = pixels[bottom+i], pixels[top+i]
		}
	}
}
