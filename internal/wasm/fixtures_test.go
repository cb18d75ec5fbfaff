package wasm

import (
	"os"
	"path/filepath"
	"testing"
)

// Hand-encoded Wasm binaries used as loadable fixtures, so tests need no
// compiled plugin artifacts.

// emptyModuleWasm is a valid Wasm 1.0 module with no exports.
var emptyModuleWasm = []byte{
	0x00, 0x61, 0x73, 0x6d, // Magic number: \0asm
	0x01, 0x00, 0x00, 0x00, // Version: 1
}

// memoryModuleWasm exports one page of linear memory and nothing else.
var memoryModuleWasm = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // header
	// Memory section: 1 memory, min 1 page
	0x05, 0x03, 0x01, 0x00, 0x01,
	// Export section: export "memory"
	0x07, 0x0a, 0x01, 0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x02, 0x00,
}

// noopPluginWasm exports memory and a process_image(i32,i32,i32,i32) that
// returns without touching the buffer.
var noopPluginWasm = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // header
	// Type section: (i32, i32, i32, i32) -> ()
	0x01, 0x08, 0x01, 0x60, 0x04, 0x7f, 0x7f, 0x7f, 0x7f, 0x00,
	// Function section: 1 function of type 0
	0x03, 0x02, 0x01, 0x00,
	// Memory section: 1 memory, min 1 page
	0x05, 0x03, 0x01, 0x00, 0x01,
	// Export section: "memory" and "process_image"
	0x07, 0x1a, 0x02,
	0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x02, 0x00,
	0x0d, 0x70, 0x72, 0x6f, 0x63, 0x65, 0x73, 0x73, 0x5f, 0x69, 0x6d, 0x61, 0x67, 0x65, 0x00, 0x00,
	// Code section: empty body
	0x0a, 0x04, 0x01, 0x02, 0x00, 0x0b,
}

// writeFixture writes a Wasm binary into a temp dir and returns its path.
func writeFixture(t *testing.T, name string, wasmBytes []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, wasmBytes, 0o644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", name, err)
	}
	return path
}
