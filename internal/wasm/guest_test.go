package wasm

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

func newTestRuntime(t *testing.T) (*Runtime, context.Context) {
	t.Helper()
	ctx := context.Background()
	runtime, err := NewRuntime(ctx, zaptest.NewLogger(t), nil)
	if err != nil {
		t.Fatalf("Failed to create runtime: %v", err)
	}
	t.Cleanup(func() { runtime.Close(ctx) })
	return runtime, ctx
}

func TestOpenGuestMissingFile(t *testing.T) {
	runtime, ctx := newTestRuntime(t)

	path := filepath.Join(t.TempDir(), "libnothere.so")

	_, err := runtime.OpenGuest(ctx, path)
	if err == nil {
		t.Fatal("OpenGuest should fail for a nonexistent path")
	}

	var notFound *ModuleNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ModuleNotFoundError, got %T", err)
	}
	if notFound.Path != path {
		t.Errorf("error path = %s, want %s", notFound.Path, path)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error message should contain the attempted path: %s", err.Error())
	}
}

func TestOpenGuestInvalidBinary(t *testing.T) {
	runtime, ctx := newTestRuntime(t)

	path := writeFixture(t, "libgarbage.so", []byte("this is not wasm"))

	_, err := runtime.OpenGuest(ctx, path)
	var notFound *ModuleNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ModuleNotFoundError for invalid binary, got %v", err)
	}
}

func TestGuestEntryPointMissing(t *testing.T) {
	runtime, ctx := newTestRuntime(t)

	path := writeFixture(t, "libempty.so", emptyModuleWasm)

	guest, err := runtime.OpenGuest(ctx, path)
	if err != nil {
		t.Fatalf("OpenGuest failed: %v", err)
	}
	defer guest.Close(ctx)

	_, err = guest.EntryPoint("process_image")
	var missing *EntryPointMissingError
	if !errors.As(err, &missing) {
		t.Fatalf("expected EntryPointMissingError, got %v", err)
	}
	if missing.Path != path || missing.Symbol != "process_image" {
		t.Errorf("error should carry path and symbol, got %+v", missing)
	}
}

func TestGuestEntryPointResolved(t *testing.T) {
	runtime, ctx := newTestRuntime(t)

	path := writeFixture(t, "libnoop.so", noopPluginWasm)

	guest, err := runtime.OpenGuest(ctx, path)
	if err != nil {
		t.Fatalf("OpenGuest failed: %v", err)
	}
	defer guest.Close(ctx)

	fn, err := guest.EntryPoint("process_image")
	if err != nil {
		t.Fatalf("EntryPoint failed: %v", err)
	}
	if fn == nil {
		t.Fatal("resolved entry point is nil")
	}

	if _, err := fn.Call(ctx, 0, 0, 0, 0); err != nil {
		t.Errorf("noop entry point call failed: %v", err)
	}
}

func TestGuestCloseIdempotent(t *testing.T) {
	runtime, ctx := newTestRuntime(t)

	path := writeFixture(t, "libnoop.so", noopPluginWasm)

	guest, err := runtime.OpenGuest(ctx, path)
	if err != nil {
		t.Fatalf("OpenGuest failed: %v", err)
	}

	if err := guest.Close(ctx); err != nil {
		t.Errorf("First close failed: %v", err)
	}
	if err := guest.Close(ctx); err != nil {
		t.Errorf("Second close failed: %v", err)
	}
}

func TestGuestPath(t *testing.T) {
	runtime, ctx := newTestRuntime(t)

	path := writeFixture(t, "libnoop.so", noopPluginWasm)

	guest, err := runtime.OpenGuest(ctx, path)
	if err != nil {
		t.Fatalf("OpenGuest failed: %v", err)
	}
	defer guest.Close(ctx)

	if guest.Path() != path {
		t.Errorf("Path() = %s, want %s", guest.Path(), path)
	}
}
