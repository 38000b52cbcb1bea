package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

// logOne writes a single record through a SecureHandler over a JSON
// handler and decodes the output line.
func logOne(t *testing.T, msg string, args ...any) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewJSONHandler(&buf, nil)))
	logger.Info(msg, args...)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode log output %q: %v", buf.String(), err)
	}
	return record
}

// TestSanitizeSubmitterIdentity tests that submitter network attributes
// are masked by key name.
func TestSanitizeSubmitterIdentity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"ip key", "ip", "203.0.113.7"},
		{"remote_addr key", "remote_addr", "203.0.113.7:51442"},
		{"client_ip key", "client_ip", "198.51.100.23"},
		{"ua key", "ua", "Mozilla/5.0 (X11; Linux x86_64)"},
		{"user_agent key", "user_agent", "curl/8.5.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			record := logOne(t, "report accepted", tt.key, tt.value)
			if got := record[tt.key]; got != MaskValue {
				t.Errorf("expected %q masked, got %v", tt.key, got)
			}
		})
	}
}

// TestSanitizeIPValues tests that IP literals are masked regardless of
// the attribute key.
func TestSanitizeIPValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{"bare IPv4", "192.168.1.10"},
		{"IPv4 with port", "10.0.0.5:8080"},
		{"IPv6", "2001:db8::1"},
		{"bracketed IPv6 with port", "[::1]:9090"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			record := logOne(t, "peer seen", "peer", tt.value)
			if got := record["peer"]; got != MaskValue {
				t.Errorf("expected %q masked, got %v", tt.value, got)
			}
		})
	}
}

// TestSanitizeCredentials tests credential key and value masking.
func TestSanitizeCredentials(t *testing.T) {
	t.Parallel()

	record := logOne(t, "upstream call",
		"authorization", "Bearer abc123",
		"api_key", "whatever",
		"session_token", "s3cret",
	)

	for _, key := range []string{"authorization", "api_key", "session_token"} {
		if got := record[key]; got != MaskValue {
			t.Errorf("expected %q masked, got %v", key, got)
		}
	}
}

// TestNonSensitivePassthrough tests that ordinary attributes survive.
func TestNonSensitivePassthrough(t *testing.T) {
	t.Parallel()

	record := logOne(t, "scan complete",
		"open", 3,
		"total", 246,
		"country", "unknown",
	)

	if record["open"] != float64(3) || record["total"] != float64(246) {
		t.Errorf("numeric attributes altered: %v", record)
	}
	if record["country"] != "unknown" {
		t.Errorf("country attribute altered: %v", record["country"])
	}
	if record["msg"] != "scan complete" {
		t.Errorf("message altered: %v", record["msg"])
	}
}

// TestSanitizeGroups tests recursive masking inside attribute groups.
func TestSanitizeGroups(t *testing.T) {
	t.Parallel()

	record := logOne(t, "report accepted",
		slog.Group("submitter",
			"ip", "203.0.113.7",
			"total", 246,
		),
	)

	group, ok := record["submitter"].(map[string]any)
	if !ok {
		t.Fatalf("expected submitter group, got %v", record)
	}
	if group["ip"] != MaskValue {
		t.Errorf("expected ip masked inside group, got %v", group["ip"])
	}
	if group["total"] != float64(246) {
		t.Errorf("expected total untouched inside group, got %v", group["total"])
	}
}

// TestWithAttrs tests that pre-bound attributes are sanitized too.
func TestWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewJSONHandler(&buf, nil))).
		With("remote_addr", "203.0.113.7")
	logger.Info("bound")

	if !strings.Contains(buf.String(), MaskValue) {
		t.Errorf("expected bound remote_addr masked, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "203.0.113.7") {
		t.Errorf("raw address leaked: %q", buf.String())
	}
}

// TestEnabledDelegates tests level delegation to the wrapped handler.
func TestEnabledDelegates(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := NewSecureHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

// TestNewSecureLoggerLevels tests the verbose switch.
func TestNewSecureLoggerLevels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := NewSecureLogger(&buf, false)
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug output at default level: %q", buf.String())
	}

	logger = NewSecureLogger(&buf, true)
	logger.Debug("visible")
	if buf.Len() == 0 {
		t.Error("expected debug output in verbose mode")
	}
}
