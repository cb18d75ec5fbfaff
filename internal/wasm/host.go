package wasm

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"
)

// HostModuleName is the import namespace plugins use for host functions.
const HostModuleName = "env"

// HostFunctions implements the functions plugins may import from the host.
// The only one in the contract is log_message: plugins report failures via
// logging, never via return values.
type HostFunctions struct {
	logger *zap.Logger
}

// NewHostFunctions creates a new host functions implementation.
func NewHostFunctions(logger *zap.Logger) *HostFunctions {
	return &HostFunctions{
		logger: logger.With(zap.String("component", "wasm-host")),
	}
}

// Instantiate registers the host module under HostModuleName so that guests
// can import its functions. Called once during runtime initialization.
func (h *HostFunctions) Instantiate(ctx context.Context, r wazero.Runtime) error {
	_, err := r.NewHostModuleBuilder(HostModuleName).
		NewFunctionBuilder().
		WithFunc(h.logMessage).
		WithParameterNames("level", "ptr", "length").
		Export("log_message").
		Instantiate(ctx)
	return err
}

// logMessage is called by plugins to log messages.
// Signature: log_message(level, ptr, length)
// level: 0 = debug, 1 = info, 2 = warn, 3 = error
func (h *HostFunctions) logMessage(ctx context.Context, mod api.Module, level uint32, ptr uint32, length uint32) {
	msg, ok := mod.Memory().Read(ptr, length)
	if !ok {
		h.logger.Error("Failed to read log message from Wasm memory",
			zap.Uint32("ptr", ptr),
			zap.Uint32("length", length),
		)
		return
	}

	entry := h.logger.With(zap.String("plugin", mod.Name()))
	switch level {
	case 0:
		entry.Debug(string(msg))
	case 1:
		entry.Info(string(msg))
	case 2:
		entry.Warn(string(msg))
	case 3:
		entry.Error(string(msg))
	default:
		entry.Info(string(msg))
	}
}
