package transform

import (
	"math"

	"go.uber.org/zap"
)

// BlurSettings configures the weighted blur. Both fields default to 1.
type BlurSettings struct {
	Radius     uint32 `json:"radius"`
	Iterations uint32 `json:"iterations"`
}

func defaultBlurSettings() BlurSettings {
	return BlurSettings{Radius: 1, Iterations: 1}
}

// Blur applies an inverse-distance weighted average over the square
// neighborhood of each pixel, repeated for the configured number of
// iterations. Each pass writes into a scratch buffer and copies it back so
// partially updated neighbors are never read mid-pass. With radius 0 or
// iterations 0 the buffer is left untouched and nothing is allocated.
func Blur(logger *zap.Logger, width, height uint32, pixels []byte, params string) {
	defer recoverGuard(logger, "blur")

	s := defaultBlurSettings()
	if err := parseSettings(params, &s); err != nil {
		logger.Error("blur: failed to parse params JSON",
			zap.Error(err),
			zap.String("params", params),
		)
		return
	}

	if s.Radius == 0 || s.Iterations == 0 {
		return
	}

	w, h := int(width), int(height)
	radius := int(s.Radius)

	scratch := make([]byte, len(pixels))

	for it := uint32(0); it < s.Iterations; it++ {
		blurPass(w, h, radius, pixels, scratch)
		copy(pixels, scratch)
	}
}

// blurPass computes one full weighted-average pass from src into dst.
// Only in-bounds neighbors contribute: no wraparound, no synthetic padding.
func blurPass(w, h, radius int, src, dst []byte) {
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			var weightSum float64
			var acc [4]float64

			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					nx := cx + dx
					ny := cy + dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}

					distance := math.Sqrt(float64(dx*dx + dy*dy))
					weight := 1.0 / (distance + 1.0)
					weightSum += weight

					idx := (ny*w + nx) * 4
					for c := 0; c < 4; c++ {
						acc[c] += weight * float64(src[idx+c])
					}
				}
			}

			// The result is a convex combination of in-range channel
			// values, so rounding stays within [0, 255].
			idx := (cy*w + cx) * 4
			for c := 0; c < 4; c++ {
				dst[idx+c] = uint8(math.Round(acc[c] / weightSum))
			}
		}
	}
}
