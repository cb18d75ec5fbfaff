package plugin

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/nimec77/image-ffi-project/internal/wasm"
)

// EntryPointName is the single exported function every plugin must provide.
//
// Contract: process_image(width u32, height u32, buffer *mut u8,
// params *const char). The entry point returns nothing; a plugin may report
// an i32 status for diagnosability, which the host logs but otherwise
// ignores, preserving silent-success semantics for void plugins.
const EntryPointName = "process_image"

// Invoker loads a plugin module, runs its entry point once against a pixel
// buffer, and releases the module. One module per call, no caching.
type Invoker struct {
	runtime *wasm.Runtime
	logger  *zap.Logger
}

// NewInvoker creates a new plugin invoker.
func NewInvoker(runtime *wasm.Runtime, logger *zap.Logger) *Invoker {
	return &Invoker{
		runtime: runtime,
		logger:  logger.With(zap.String("component", "plugin-invoker")),
	}
}

// Process invokes the plugin at path against pixels, a width*height*4 RGBA
// buffer mutated in place. params is the plugin-specific configuration text,
// opaque to the invoker beyond null-termination.
//
// The module handle is released on every exit path. The buffer is written
// back only after a successful entry-point call, so on any error the caller
// observes it byte-for-byte unchanged.
func (i *Invoker) Process(ctx context.Context, path string, width, height uint32, pixels []byte, params string) error {
	i.logger.Debug("Invoking plugin",
		zap.String("path", path),
		zap.Uint32("width", width),
		zap.Uint32("height", height),
		zap.String("params", params),
	)

	expected := uint64(width) * uint64(height) * 4
	if uint64(len(pixels)) != expected {
		return fmt.Errorf("pixel buffer is %d bytes, want %d (%dx%dx4)",
			len(pixels), expected, width, height)
	}

	guest, err := i.runtime.OpenGuest(ctx, path)
	if err != nil {
		return err
	}
	defer guest.Close(ctx)

	entry, err := guest.EntryPoint(EntryPointName)
	if err != nil {
		return err
	}

	if strings.IndexByte(params, 0) >= 0 {
		return &wasm.InvalidConfigurationError{Reason: "embedded null byte"}
	}
	cParams := append([]byte(params), 0)

	mem := guest.Memory()

	bufPtr, err := mem.Alloc(ctx, uint32(len(pixels)))
	if err != nil {
		return err
	}
	defer mem.Free(ctx, bufPtr)
	if err := mem.WriteBytes(bufPtr, pixels); err != nil {
		return err
	}

	paramsPtr, err := mem.Alloc(ctx, uint32(len(cParams)))
	if err != nil {
		return err
	}
	defer mem.Free(ctx, paramsPtr)
	if err := mem.WriteBytes(paramsPtr, cParams); err != nil {
		return err
	}

	results, err := entry.Call(ctx,
		uint64(width), uint64(height), uint64(bufPtr), uint64(paramsPtr))
	if err != nil {
		return &wasm.InvocationError{Path: path, Symbol: EntryPointName, Err: err}
	}

	if len(results) > 0 {
		if status := int32(uint32(results[0])); status != 0 {
			i.logger.Warn("Plugin reported non-zero status",
				zap.String("path", path),
				zap.Int32("status", status),
			)
		}
	}

	out, err := mem.ReadBytes(bufPtr, uint32(len(pixels)))
	if err != nil {
		return err
	}
	copy(pixels, out)

	i.logger.Info("Plugin execution complete", zap.String("path", path))
	return nil
}
