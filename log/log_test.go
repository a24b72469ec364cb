//
// Copyright (C) 2026 fmbench authors.  All rights reserved.
//
// fmbench is licensed under the Apache License Version 2.0.
//
//

package log

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

// TestSetLevel verifies that SetLevel correctly updates the underlying zap
// atomic level according to the provided level string.
func TestSetLevel(t *testing.T) {
	cases := []struct {
		in       string
		expected zapcore.Level
	}{
		{LevelDebug, zapcore.DebugLevel},
		{LevelInfo, zapcore.InfoLevel},
		{LevelWarn, zapcore.WarnLevel},
		{LevelError, zapcore.ErrorLevel},
		{LevelFatal, zapcore.FatalLevel},
		{"unknown", zapcore.InfoLevel}, // default branch
	}

	for _, c := range cases {
		SetLevel(c.in)
		if got := zapLevel.Level(); got != c.expected {
			t.Fatalf("SetLevel(%q) = %v; want %v", c.in, got, c.expected)
		}
	}
}

func TestPackageHelpersDelegateToDefault(t *testing.T) {
	stub := &stubLogger{}
	old := Default
	Default = stub
	t.Cleanup(func() { Default = old })

	Debug("test")
	Debugf("test %d", 1)
	Info("test")
	Infof("test %d", 1)
	Warn("test")
	Warnf("test %d", 1)
	Error("test")
	Errorf("test %d", 1)
	Fatal("test")
	Fatalf("test %d", 1)

	if stub.calls != 10 {
		t.Fatalf("expected 10 delegated calls, got %d", stub.calls)
	}
}

// stubLogger counts delegated calls to verify the package helpers.
type stubLogger struct {
	calls int
}

func (s *stubLogger) Debug(args ...any)                 { s.calls++ }
func (s *stubLogger) Debugf(format string, args ...any) { s.calls++ }
func (s *stubLogger) Info(args ...any)                  { s.calls++ }
func (s *stubLogger) Infof(format string, args ...any)  { s.calls++ }
func (s *stubLogger) Warn(args ...any)                  { s.calls++ }
func (s *stubLogger) Warnf(format string, args ...any)  { s.calls++ }
func (s *stubLogger) Error(args ...any)                 { s.calls++ }
func (s *stubLogger) Errorf(format string, args ...any) { s.calls++ }
func (s *stubLogger) Fatal(args ...any)                 { s.calls++ }
func (s *stubLogger) Fatalf(format string, args ...any) { s.calls++ }
