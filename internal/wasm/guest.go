package wasm

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"
)

// Guest is a loaded plugin module scoped to a single invocation: opened
// immediately before the call and closed immediately after, on every exit
// path. Compiled modules are never cached or reused across calls.
type Guest struct {
	path     string
	compiled wazero.CompiledModule
	module   api.Module
	logger   *zap.Logger

	closeOnce sync.Once
}

// OpenGuest reads, compiles and instantiates the loadable unit at path.
// Any failure to turn the path into a running module surfaces as
// ModuleNotFoundError carrying the attempted path.
func (r *Runtime) OpenGuest(ctx context.Context, path string) (*Guest, error) {
	logger := r.logger.With(zap.String("module", path))
	logger.Info("Loading plugin module")

	wasmBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, &ModuleNotFoundError{Path: path, Err: err}
	}

	compiled, err := r.runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		return nil, &ModuleNotFoundError{Path: path, Err: err}
	}

	// WithStartFunctions() suppresses _start: plugins are reactors, not
	// commands. Their _initialize export (if any) runs below.
	moduleConfig := wazero.NewModuleConfig().
		WithName(instanceName(path)).
		WithStartFunctions().
		WithStdout(os.Stdout).
		WithStderr(os.Stderr)

	module, err := r.runtime.InstantiateModule(ctx, compiled, moduleConfig)
	if err != nil {
		_ = compiled.Close(ctx)
		return nil, &ModuleNotFoundError{Path: path, Err: err}
	}

	guest := &Guest{
		path:     path,
		compiled: compiled,
		module:   module,
		logger:   logger,
	}

	if init := module.ExportedFunction("_initialize"); init != nil {
		if _, err := init.Call(ctx); err != nil {
			_ = guest.Close(ctx)
			return nil, &InvocationError{Path: path, Symbol: "_initialize", Err: err}
		}
	}

	logger.Debug("Plugin module instantiated",
		zap.Int("size_bytes", len(wasmBytes)),
	)

	return guest, nil
}

// EntryPoint resolves an exported function by exact name.
func (g *Guest) EntryPoint(symbol string) (api.Function, error) {
	fn := g.module.ExportedFunction(symbol)
	if fn == nil {
		return nil, &EntryPointMissingError{Path: g.path, Symbol: symbol}
	}
	return fn, nil
}

// Memory returns the marshaling helper for this guest's linear memory.
func (g *Guest) Memory() *Memory {
	return NewMemory(g.module)
}

// Path returns the file path the guest was loaded from.
func (g *Guest) Path() string {
	return g.path
}

// Close releases the module instance and its compiled form exactly once.
func (g *Guest) Close(ctx context.Context) error {
	var err error
	g.closeOnce.Do(func() {
		err = g.module.Close(ctx)
		if cerr := g.compiled.Close(ctx); err == nil {
			err = cerr
		}
		g.logger.Debug("Plugin module released")
	})
	return err
}

// instanceName produces a unique instance name so repeated invocations of
// the same file never collide inside the runtime's namespace.
func instanceName(path string) string {
	return fmt.Sprintf("%s-%d", filepath.Base(path), time.Now().UnixNano())
}
