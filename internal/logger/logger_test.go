package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/deppfellow/club-feedback/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ProductionJSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	l := newLogger(cfg, NewLoggerService(cfg), &buf)

	l.Info().Msg("dropped")
	l.Warn().Str("club", "Robotics Club").Msg("kept")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "kept", line["message"])
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, config.ServiceName, line["service"])
	assert.Equal(t, "production", line["environment"])
	assert.Equal(t, "Robotics Club", line["club"])
}

func TestNewLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "nonsense"

	l := newLogger(cfg, nil, &bytes.Buffer{})
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestLoggerService_DisabledWithoutLicense(t *testing.T) {
	ls := NewLoggerService(config.DefaultObservabilityConfig())
	assert.Nil(t, ls.GetApplication())
	ls.Shutdown()

	var nilService *LoggerService
	assert.Nil(t, nilService.GetApplication())
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	tl := WithTraceContext(l, nil)
	tl.Info().Msg("x")
	assert.NotContains(t, buf.String(), "trace.id")
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	testCases := []struct {
		in   zerolog.Level
		want tracelog.LogLevel
	}{
		{zerolog.TraceLevel, tracelog.LogLevelTrace},
		{zerolog.DebugLevel, tracelog.LogLevelDebug},
		{zerolog.InfoLevel, tracelog.LogLevelInfo},
		{zerolog.WarnLevel, tracelog.LogLevelWarn},
		{zerolog.ErrorLevel, tracelog.LogLevelError},
		{zerolog.Disabled, tracelog.LogLevelNone},
	}
	for _, tc := range testCases {
		t.Run(tc.in.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, GetPgxTraceLogLevel(tc.in))
		})
	}
}
