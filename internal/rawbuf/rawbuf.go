// Package rawbuf reconstructs bounded views from the raw pointers the host
// passes across the plugin boundary. It is the only package in the module
// that touches package unsafe; everything else works on ordinary slices and
// strings.
package rawbuf

import (
	"unsafe"
)

// Pixels reinterprets the pixel buffer lent by the host as a byte slice of
// exactly width*height*4 bytes. The host guarantees the pointed-to region
// has that many accessible bytes for the whole call; the returned slice must
// not be retained beyond it.
func Pixels(p unsafe.Pointer, width, height uint32) []byte {
	if p == nil || width == 0 || height == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), int(width)*int(height)*4)
}

// CString reads the null-terminated configuration string starting at p.
// The host guarantees a terminator exists within the region it owns.
func CString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// Addr returns the linear-memory address of the first byte of b, for
// handing host imports a (ptr, len) pair. Addresses fit in 32 bits on wasm.
func Addr(b []byte) uint32 {
	if len(b) == 0 {
		return 0
	}
	return uint32(uintptr(unsafe.Pointer(&b[0])))
}
