// Package plugin locates and invokes image-processing plugin modules.
package plugin

import (
	"path/filepath"
	"runtime"
)

// LibraryFilename returns the platform-specific file name for a plugin,
// following the shared-library naming convention of the current platform.
func LibraryFilename(name string) string {
	return libraryFilenameFor(runtime.GOOS, name)
}

// libraryFilenameFor is split out so every platform branch is testable.
func libraryFilenameFor(goos, name string) string {
	switch goos {
	case "darwin":
		return "lib" + name + ".dylib"
	case "windows":
		return name + ".dll"
	case "linux":
		return "lib" + name + ".so"
	default:
		// Unknown platforms fall back to Unix-style naming.
		return "lib" + name + ".so"
	}
}

// LibraryPath builds the candidate path for a plugin inside dir. It is pure
// string construction; existence is validated later by the loader.
func LibraryPath(dir, name string) string {
	return filepath.Join(dir, LibraryFilename(name))
}
