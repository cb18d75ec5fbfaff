// Package transform implements the reference image transformations shared
// by the bundled plugins. Each transformation follows the same contract:
// parse the configuration text into a settings record with documented
// defaults, and on success mutate the pixel buffer in place. Non-empty text
// that fails to parse is logged at error severity and leaves the buffer
// untouched. No failure ever propagates past the entry point.
package transform

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// parseSettings decodes params into settings, which must arrive pre-filled
// with its defaults so missing fields keep them. Text that is not valid
// UTF-8 falls back to empty, and empty text means "all defaults".
func parseSettings(params string, settings any) error {
	if !utf8.ValidString(params) {
		params = ""
	}
	if strings.TrimSpace(params) == "" {
		return nil
	}
	return json.Unmarshal([]byte(params), settings)
}

// recoverGuard converts a panic into an error-severity log line. Plugins
// must never unwind across the host boundary; a panicking transformation
// degrades to a logged no-op (the buffer may be partially written).
func recoverGuard(logger *zap.Logger, name string) {
	if r := recover(); r != nil {
		logger.Error("transformation panicked",
			zap.String("transform", name),
			zap.Any("panic", r),
		)
	}
}
