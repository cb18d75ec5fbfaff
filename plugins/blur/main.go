//go:build wasip1

// The blur plugin applies an inverse-distance weighted blur to the host's
// pixel buffer. Parameters: {"radius": uint, "iterations": uint}, both
// optional, default 1.
package main

import (
	"unsafe"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nimec77/image-ffi-project/internal/rawbuf"
	"github.com/nimec77/image-ffi-project/internal/transform"
	"github.com/nimec77/image-ffi-project/plugins/hostlog"
)

var logger = zap.New(hostlog.NewCore(zapcore.DebugLevel)).Named("blur")

//go:wasmexport process_image
func processImage(width, height uint32, pixels, params unsafe.Pointer) {
	transform.Blur(logger, width, height,
		rawbuf.Pixels(pixels, width, height),
		rawbuf.CString(params),
	)
}

// main is never called; the plugin is built as a reactor and driven through
// its process_image export.
func main() {}
