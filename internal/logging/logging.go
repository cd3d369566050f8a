/*
NAME
  logging.go

DESCRIPTION
  logging.go provides a small structured Logger built on zap, exposing
  a Debug/Info/Warning/Error/Fatal(msg, kv...) call shape for levelled,
  structured log lines across the sender and receiver CLIs.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package logging provides structured, leveled logging for the sender
// and receiver CLIs and the modem pipeline they drive.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface passed down into the modem pipeline.
// Methods take a message followed by alternating key/value pairs.
type Logger interface {
	Debug(msg string, kv ...interface{})
	Info(msg string, kv ...interface{})
	Warning(msg string, kv ...interface{})
	Error(msg string, kv ...interface{})
	Fatal(msg string, kv ...interface{})
}

// Level mirrors the verbosity levels used to configure a Logger.
type Level int8

const (
	Debug Level = iota
	Info
	Warning
	Error
)

// zapLogger adapts a zap.SugaredLogger to the Logger interface.
type zapLogger struct {
	s *zap.SugaredLogger
}

// New creates a Logger that writes to w at minimum severity lvl.
func New(lvl Level, w io.Writer) Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "time"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(enc),
		zapcore.AddSync(w),
		zapLevel(lvl),
	)
	l := zap.New(core, zap.AddCaller())
	return &zapLogger{s: l.Sugar()}
}

func zapLevel(lvl Level) zapcore.Level {
	switch lvl {
	case Debug:
		return zapcore.DebugLevel
	case Info:
		return zapcore.InfoLevel
	case Warning:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func (l *zapLogger) Debug(msg string, kv ...interface{})   { l.s.Debugw(msg, kv...) }
func (l *zapLogger) Info(msg string, kv ...interface{})    { l.s.Infow(msg, kv...) }
func (l *zapLogger) Warning(msg string, kv ...interface{}) { l.s.Warnw(msg, kv...) }
func (l *zapLogger) Error(msg string, kv ...interface{})   { l.s.Errorw(msg, kv...) }
func (l *zapLogger) Fatal(msg string, kv ...interface{})   { l.s.Fatalw(msg, kv...) }
