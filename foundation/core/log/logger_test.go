// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, formatters, context fields,
//              error integration and timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test suite
// - 2026-10-15 v0.2.0: Adapted to the synchronous logger

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	adocerror "github.com/msto63/adoc/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf, Name: "test"}), buf
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")
	logger.Error("also visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below the level were written:\n%s", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "also visible") {
		t.Errorf("expected warn and error messages:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("expected 2 lines, got %d", got)
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger.WithField("component", "markup-parser").
		WithRequestID("req-7").
		Debug("block parsed", Fields{"kind": "heading"})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	checks := map[string]interface{}{
		"level":      "debug",
		"message":    "block parsed",
		"logger":     "test",
		"request_id": "req-7",
		"component":  "markup-parser",
		"kind":       "heading",
	}
	for k, want := range checks {
		if data[k] != want {
			t.Errorf("%s = %v, want %v", k, data[k], want)
		}
	}
}

func TestLogger_TextFormatSortsFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	logger.Info("done", Fields{"zeta": 1, "alpha": 2})

	line := buf.String()
	if !strings.Contains(line, "[INF]") {
		t.Errorf("missing level marker: %q", line)
	}
	if !strings.Contains(line, "[alpha=2 zeta=1]") {
		t.Errorf("fields not sorted: %q", line)
	}
}

func TestLogger_WithIsImmutable(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo, FormatText)
	derived := base.WithField("component", "engine").WithLevel(LevelDebug)

	base.Debug("base debug")
	derived.Debug("derived debug")
	base.Info("base info")

	out := buf.String()
	if strings.Contains(out, "base debug") {
		t.Error("WithLevel changed the original logger")
	}
	if !strings.Contains(out, "derived debug") {
		t.Error("derived logger should log at debug")
	}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if strings.Contains(line, "base info") && strings.Contains(line, "component=engine") {
			t.Error("WithField leaked into the original logger")
		}
	}
}

func TestLogger_LogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"low severity", adocerror.New("bad markup").WithCode(adocerror.CodeMarkupSyntax), "info"},
		{"high severity", adocerror.New("no config").WithCode(adocerror.CodeConfigError), "error"},
		{"medium severity", adocerror.New("odd"), "warn"},
		{"plain error", errors.New("plain"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			var data map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
		})
	}

	logger, buf := newBufferLogger(LevelTrace, FormatJSON)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not write")
	}
}

func TestLogger_ConcurrentWrites(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(l *Logger) {
			defer wg.Done()
			l.Info("line")
		}(logger.WithField("worker", i))
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "\n"); got != 20 {
		t.Errorf("expected 20 lines, got %d", got)
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	timer := logger.StartTimer("parse").WithField("bytes", 12)
	if !timer.IsRunning() {
		t.Error("timer should be running")
	}
	timer.Stop()
	if timer.Stop() != 0 {
		t.Error("second Stop should return 0")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if data["message"] != "parse completed" {
		t.Errorf("message = %v", data["message"])
	}
	if data["operation"] != "parse" || data["bytes"] != float64(12) {
		t.Errorf("unexpected fields: %v", data)
	}
	if _, ok := data["duration_ms"]; !ok {
		t.Error("duration_ms missing")
	}
}

func TestTimer_StopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)
	logger.StartTimer("parse").StopWithError(errors.New("boom"))

	out := buf.String()
	if !strings.Contains(out, "parse failed") || !strings.Contains(out, `error="boom"`) {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	levels := map[string]Level{
		"trace": LevelTrace, "DEBUG": LevelDebug, " info ": LevelInfo,
		"warning": LevelWarn, "err": LevelError, "fatal": LevelFatal,
	}
	for in, want := range levels {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel should reject unknown levels")
	}

	formats := map[string]Format{"json": FormatJSON, "Text": FormatText, "console": FormatConsole}
	for in, want := range formats {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat should reject unknown formats")
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	entry := NewEntry(LevelWarn, "careful")

	colored, _ := f.Format(entry)
	if !strings.HasPrefix(string(colored), "\033[") || !strings.Contains(string(colored), "careful") {
		t.Errorf("expected colored line, got %q", colored)
	}

	f.DisableColors = true
	plain, _ := f.Format(entry)
	if strings.Contains(string(plain), "\033[") {
		t.Errorf("colors not disabled: %q", plain)
	}
}
