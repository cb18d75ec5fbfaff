//go:build !wasip1

package hostlog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewCore falls back to a console core on stderr outside Wasm builds, so
// the plugin code paths behave the same under host-side tests.
func NewCore(enab zapcore.LevelEnabler) zapcore.Core {
	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(os.Stderr),
		enab,
	)
}
