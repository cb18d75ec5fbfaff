//go:build wasip1

// Package hostlog routes plugin log entries to the host's log_message
// import, so every loaded module reports through the host's process-wide
// logger.
package hostlog

import (
	"bytes"

	"go.uber.org/zap/zapcore"

	"github.com/nimec77/image-ffi-project/internal/rawbuf"
)

//go:wasmimport env log_message
func logMessage(level, ptr, length uint32)

type hostCore struct {
	zapcore.LevelEnabler
	enc zapcore.Encoder
}

// NewCore returns a zapcore.Core that forwards each entry to the host.
func NewCore(enab zapcore.LevelEnabler) zapcore.Core {
	cfg := zapcore.EncoderConfig{
		MessageKey: "msg",
		LineEnding: "\n",
	}
	return &hostCore{
		LevelEnabler: enab,
		enc:          zapcore.NewConsoleEncoder(cfg),
	}
}

func (c *hostCore) With(fields []zapcore.Field) zapcore.Core {
	clone := &hostCore{LevelEnabler: c.LevelEnabler, enc: c.enc.Clone()}
	for i := range fields {
		fields[i].AddTo(clone.enc)
	}
	return clone
}

func (c *hostCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *hostCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	buf, err := c.enc.EncodeEntry(ent, fields)
	if err != nil {
		return err
	}
	msg := bytes.TrimRight(buf.Bytes(), "\n")
	if len(msg) > 0 {
		logMessage(hostLevel(ent.Level), rawbuf.Addr(msg), uint32(len(msg)))
	}
	buf.Free()
	return nil
}

func (c *hostCore) Sync() error { return nil }

// hostLevel maps zap levels onto the log_message contract:
// 0 = debug, 1 = info, 2 = warn, 3 = error.
func hostLevel(l zapcore.Level) uint32 {
	switch {
	case l <= zapcore.DebugLevel:
		return 0
	case l == zapcore.InfoLevel:
		return 1
	case l == zapcore.WarnLevel:
		return 2
	default:
		return 3
	}
}
