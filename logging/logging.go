// Package logging builds the zap logger, writing to a rolling file only in debug mode
// The terminal owns stdout/stderr while the game runs, so nothing is logged there
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DefaultDir      = "logs"
	DefaultFileName = "dashroom.log"

	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 7
)

// Setup returns a debug-level file logger when debug is set, otherwise a no-op logger
// The returned closer flushes and releases the file
func Setup(debug bool, path string) (*zap.Logger, func(), error) {
	if !debug {
		return zap.NewNop(), func() {}, nil
	}
	if path == "" {
		path = filepath.Join(DefaultDir, DefaultFileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), zapcore.DebugLevel)
	logger := zap.New(core, zap.AddCaller())

	closer := func() {
		_ = logger.Sync()
		_ = lj.Close()
	}
	return logger, closer, nil
}
