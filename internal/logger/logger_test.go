package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestJSONLogging(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}

	InitWithWriter(config, &buf)
	Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	assert.Equal(t, "test-service", logEntry["service"])
	assert.Equal(t, "1.0.0", logEntry["version"])
	assert.Equal(t, "test", logEntry["environment"])
	assert.Equal(t, "test message", logEntry["msg"])
	assert.Equal(t, "INFO", logEntry["level"])
	assert.Equal(t, "value", logEntry["key"])
	assert.Equal(t, float64(42), logEntry["number"])
}

func TestTextLogging_RespectsLevel(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	InitWithWriter(Config{Level: "warn", Format: "text", ServiceName: "svc"}, &buf)
	Info("hidden")
	Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "service=svc")
}

func TestScopeContext(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	InitWithWriter(Config{Level: "debug", Format: "json"}, &buf)

	ctx := WithScope(context.Background(), Scope{SessionID: "session-123", Platform: "console"})

	scope, ok := ScopeFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "session-123", scope.SessionID)

	FromContext(ctx).Info("with session")
	assert.Contains(t, buf.String(), `"session_id":"session-123"`)
	assert.Contains(t, buf.String(), `"platform":"console"`)
}

func TestScopeContext_Missing(t *testing.T) {
	_, ok := ScopeFromContext(context.Background())
	assert.False(t, ok)

	_, ok = ScopeFromContext(WithScope(context.Background(), Scope{Platform: "discord"}))
	assert.False(t, ok)
	assert.NotNil(t, FromContext(context.Background()))
}

func TestConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Config{Level: tt.level}.LogLevel(), tt.level)
	}
}

func TestConfig_Defaults(t *testing.T) {
	assert.False(t, DefaultConfig().IsJSON())
	assert.Equal(t, slog.LevelInfo, DefaultConfig().LogLevel())
	assert.Equal(t, DefaultServiceName, DefaultConfig().ServiceName)
	assert.True(t, NewConfig("info", "JSON", "svc", "v", "prod", false).IsJSON())
}

func TestConfig_BaseAttributesSkipEmpty(t *testing.T) {
	attrs := Config{ServiceName: "svc"}.BaseAttributes()
	require.Len(t, attrs, 1)
	assert.Equal(t, AttrKeyService, attrs[0].Key)
}
