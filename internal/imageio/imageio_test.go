package imageio

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	pixels := []byte{
		255, 0, 0, 255,
		0, 255, 0, 255,
		0, 0, 255, 255,
		255, 255, 0, 255,
	}

	require.NoError(t, Encode(2, 2, pixels, path))

	w, h, decoded, err := Decode(path)
	require.NoError(t, err)
	assert.EqualValues(t, 2, w)
	assert.EqualValues(t, 2, h)
	assert.Equal(t, pixels, decoded)
}

func TestDecodeNonZeroOriginImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "offset.png")

	src := image.NewRGBA(image.Rect(3, 5, 5, 7))
	src.SetRGBA(3, 5, color.RGBA{R: 10, A: 255})
	src.SetRGBA(4, 6, color.RGBA{B: 20, A: 255})

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	w, h, pixels, err := Decode(path)
	require.NoError(t, err)
	assert.EqualValues(t, 2, w)
	assert.EqualValues(t, 2, h)
	require.Len(t, pixels, 2*2*4)
	assert.EqualValues(t, 10, pixels[0], "origin pixel lands at index 0")
}

func TestDecodeMissingFile(t *testing.T) {
	_, _, _, err := Decode(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
}

func TestDecodeNotPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))

	_, _, _, err := Decode(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestEncodeLengthMismatch(t *testing.T) {
	err := Encode(4, 4, make([]byte, 8), filepath.Join(t.TempDir(), "short.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "64")
}
