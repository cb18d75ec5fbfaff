package wasm

import (
	"context"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"
)

// Runtime wraps the process-wide wazero runtime. It is created once during
// startup and shared by all invocations; the modules it instantiates are
// strictly per-call (see Guest).
type Runtime struct {
	runtime wazero.Runtime
	config  *RuntimeConfig
	logger  *zap.Logger

	closeOnce sync.Once
	closed    chan struct{}
}

// RuntimeConfig holds runtime configuration.
type RuntimeConfig struct {
	// Memory limit per guest module (in pages, 64KB each).
	// Default: 1024 pages = 64MB, enough for the pixel buffer plus guest heap.
	MemoryPages uint32

	// Enable debug logging for Wasm execution.
	DebugEnabled bool
}

// DefaultRuntimeConfig returns sensible defaults.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		MemoryPages:  1024, // 64MB
		DebugEnabled: false,
	}
}

// NewRuntime creates and initializes the wazero runtime, instantiates WASI
// (plugins are built for GOOS=wasip1) and registers the host function module
// that plugins import for logging.
func NewRuntime(ctx context.Context, logger *zap.Logger, config *RuntimeConfig) (*Runtime, error) {
	if config == nil {
		config = DefaultRuntimeConfig()
	}

	rc := wazero.NewRuntimeConfig().
		WithMemoryLimitPages(config.MemoryPages)

	r := wazero.NewRuntimeWithConfig(ctx, rc)

	wasi_snapshot_preview1.MustInstantiate(ctx, r)

	hostFuncs := NewHostFunctions(logger)
	if err := hostFuncs.Instantiate(ctx, r); err != nil {
		_ = r.Close(ctx)
		return nil, err
	}

	runtime := &Runtime{
		runtime: r,
		config:  config,
		logger:  logger.With(zap.String("component", "wasm-runtime")),
		closed:  make(chan struct{}),
	}

	runtime.logger.Info("Wasm runtime initialized",
		zap.Uint32("memory_pages", config.MemoryPages),
		zap.Bool("debug_enabled", config.DebugEnabled),
	)

	return runtime, nil
}

// Close shuts down the runtime and any module still instantiated under it.
// Safe to call multiple times (idempotent).
func (r *Runtime) Close(ctx context.Context) error {
	var err error
	r.closeOnce.Do(func() {
		r.logger.Info("Shutting down Wasm runtime")
		err = r.runtime.Close(ctx)
		close(r.closed)
	})
	return err
}

// IsClosed returns whether the runtime has been closed.
func (r *Runtime) IsClosed() bool {
	select {
	case <-r.closed:
		return true
	default:
		return false
	}
}
