package utils

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLogLevelFromString(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for input, expected := range tests {
		if got := logLevelFromString(input); got != expected {
			t.Errorf("logLevelFromString(%q) = %v, want %v", input, got, expected)
		}
	}
}

func TestGetBuildInfoMode(t *testing.T) {
	if getBuildInfoMode("once") != BuildInfoOnce || getBuildInfoMode("always") != BuildInfoAlways {
		t.Error("unexpected build info mode")
	}
	if getBuildInfoMode("") != BuildInfoNever || getBuildInfoMode("sometimes") != BuildInfoNever {
		t.Error("unknown modes must fall back to never")
	}
}

func TestJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newJSONHandler(&buf, "warn", false))

	logger.Info("dropped")
	logger.Warn("kept", slog.String("field", "email"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a single json line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "kept" || entry["field"] != "email" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestCustomHandlerAddsBuildInfo(t *testing.T) {
	var buf bytes.Buffer
	handler := &CustomHandler{
		Handler:        newJSONHandler(&buf, "info", false),
		buildInfoAttrs: []slog.Attr{slog.String("build.version", "1.2.3")},
	}
	slog.New(handler).Info("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["build.version"] != "1.2.3" {
		t.Errorf("missing build info: %v", entry)
	}
}

func TestLoadBuildInfoAsSlogAttrs(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "build-info.yaml")
	if err := os.WriteFile(filename, []byte("version: 1.2.3\ncommit: abc\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	attrs, err := loadBuildInfoAsSlogAttrs(filename, buildInfoPrefix)
	if err != nil {
		t.Fatal(err)
	}
	if len(attrs) != 2 || attrs[0].Key != "build.commit" || attrs[1].Key != "build.version" {
		t.Errorf("unexpected attrs: %v", attrs)
	}

	if _, err := loadBuildInfoAsSlogAttrs(filepath.Join(t.TempDir(), "missing.yaml"), buildInfoPrefix); err == nil {
		t.Error("expected error for missing file")
	}
}
