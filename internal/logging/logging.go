// Package logging wires the durable run logs: a general log capturing every
// per-file outcome and a failure-only log, both plain-text and append-only
// in the working directory.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// RunLogName receives debug, info and error lines for every file.
	RunLogName = "shrinktune.log"
	// FailureLogName receives error lines only.
	FailureLogName = "shrinktune-failures.log"
)

// New builds the run logger. Workers log through it concurrently; zap
// serializes writes so a single line is never interleaved. When verbose is
// set, every line is mirrored to stderr as well.
func New(verbose bool) *zap.Logger {
	encCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	enc := zapcore.NewConsoleEncoder(encCfg)

	runSink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   RunLogName,
		MaxSize:    50, // MiB
		MaxBackups: 3,
	})
	failSink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   FailureLogName,
		MaxSize:    10,
		MaxBackups: 3,
	})

	errorsOnly := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.ErrorLevel
	})

	cores := []zapcore.Core{
		zapcore.NewCore(enc, runSink, zapcore.DebugLevel),
		zapcore.NewCore(enc, failSink, errorsOnly),
	}
	if verbose {
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(os.Stderr), zapcore.DebugLevel))
	}

	return zap.New(zapcore.NewTee(cores...))
}
