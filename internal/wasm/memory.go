package wasm

import (
	"context"

	"github.com/tetratelabs/wazero/api"
)

const pageSize = 65536

// Memory provides safe marshaling in and out of a guest's linear memory.
//
// Guest modules have their own isolated memory space that is separate from
// Go's memory. Every read and write goes through wazero's api.Memory, which
// bounds-checks against the current memory size, so the host can never
// reach outside the guest's [0, length) range and the guest never sees a
// raw host pointer.
type Memory struct {
	module api.Module
	mem    api.Memory
}

// NewMemory creates a memory helper for a guest module.
func NewMemory(module api.Module) *Memory {
	return &Memory{module: module, mem: module.Memory()}
}

// Alloc reserves size bytes of guest memory and returns the guest address.
//
// If the guest exports a malloc function it is used, so the region is part
// of the guest's own heap. Otherwise the linear memory is grown and the
// fresh pages are used as a host-reserved scratch region; per-call guests
// never observe the difference.
func (m *Memory) Alloc(ctx context.Context, size uint32) (uint32, error) {
	if m.mem == nil {
		return 0, &MemoryAccessError{Operation: "alloc", Length: size}
	}

	if malloc := m.module.ExportedFunction("malloc"); malloc != nil {
		results, err := malloc.Call(ctx, uint64(size))
		if err != nil || len(results) == 0 {
			return 0, &MemoryAccessError{Operation: "malloc", Length: size}
		}
		return uint32(results[0]), nil
	}

	pages := (size + pageSize - 1) / pageSize
	if pages == 0 {
		pages = 1
	}
	prev, ok := m.mem.Grow(pages)
	if !ok {
		return 0, &MemoryAccessError{Operation: "grow", Length: size}
	}
	return prev * pageSize, nil
}

// Free releases a region obtained from Alloc. Grown scratch pages cannot be
// returned, so Free is a no-op unless the guest exports free.
func (m *Memory) Free(ctx context.Context, ptr uint32) {
	if free := m.module.ExportedFunction("free"); free != nil {
		_, _ = free.Call(ctx, uint64(ptr))
	}
}

// WriteBytes copies data into guest memory at ptr.
func (m *Memory) WriteBytes(ptr uint32, data []byte) error {
	if m.mem == nil || !m.mem.Write(ptr, data) {
		return &MemoryAccessError{Operation: "write", Address: ptr, Length: uint32(len(data))}
	}
	return nil
}

// ReadBytes copies length bytes out of guest memory at ptr.
func (m *Memory) ReadBytes(ptr uint32, length uint32) ([]byte, error) {
	if m.mem == nil {
		return nil, &MemoryAccessError{Operation: "read", Address: ptr, Length: length}
	}
	buf, ok := m.mem.Read(ptr, length)
	if !ok {
		return nil, &MemoryAccessError{Operation: "read", Address: ptr, Length: length}
	}
	// api.Memory.Read returns a view of live memory; copy so callers hold a
	// stable snapshot after the module closes.
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}

// ReadString reads a null-terminated string at ptr, scanning at most maxLen
// bytes.
func (m *Memory) ReadString(ptr uint32, maxLen uint32) (string, error) {
	buf, err := m.ReadBytes(ptr, maxLen)
	if err != nil {
		return "", err
	}
	end := len(buf)
	for i, b := range buf {
		if b == 0 {
			end = i
			break
		}
	}
	return string(buf[:end]), nil
}
