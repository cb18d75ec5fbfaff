package wasm

import (
	"fmt"
)

// ModuleNotFoundError occurs when a path does not resolve to a loadable unit,
// either because the file is missing or because it is not valid Wasm.
type ModuleNotFoundError struct {
	Path string
	Err  error
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("failed to load plugin library '%s': %v", e.Path, e.Err)
}

func (e *ModuleNotFoundError) Unwrap() error {
	return e.Err
}

// EntryPointMissingError occurs when a module loaded but does not export the
// well-known entry point.
type EntryPointMissingError struct {
	Path   string
	Symbol string
}

func (e *EntryPointMissingError) Error() string {
	return fmt.Sprintf("entry point '%s' not found in module '%s'", e.Symbol, e.Path)
}

// InvalidConfigurationError occurs when the configuration text cannot be
// marshaled into null-terminated form. Raised before any call is made.
type InvalidConfigurationError struct {
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration string: %s", e.Reason)
}

// MemoryAccessError occurs when reading or writing guest linear memory fails.
type MemoryAccessError struct {
	Operation string
	Address   uint32
	Length    uint32
}

func (e *MemoryAccessError) Error() string {
	return fmt.Sprintf("guest memory access failed (op=%s, addr=%d, len=%d)",
		e.Operation, e.Address, e.Length)
}

// InvocationError occurs when the entry point traps during execution.
type InvocationError struct {
	Path   string
	Symbol string
	Err    error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("entry point '%s' in module '%s' failed: %v",
		e.Symbol, e.Path, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}
