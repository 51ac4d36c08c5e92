package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/deppfellow/calculator-api/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerService_Disabled(t *testing.T) {
	ls := NewLoggerService(config.DefaultObservabilityConfig())
	assert.Nil(t, ls.GetApplication())

	// no-op without an application
	ls.Shutdown()

	var nilService *LoggerService
	assert.Nil(t, nilService.GetApplication())
}

func TestNewLoggerService_InvalidLicense(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.NewRelic.LicenseKey = "not-a-valid-key"

	ls := NewLoggerService(cfg)
	require.NotNil(t, ls)
	assert.Nil(t, ls.GetApplication())
}

func TestNewLogger_JSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "test"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)
	log.Info().Str("operation", "add").Msg("calculated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "calculated", entry["message"])
	assert.Equal(t, "add", entry["operation"])
	assert.Equal(t, config.ServiceName, entry["service"])
	assert.Equal(t, "test", entry["environment"])
}

func TestNewLogger_Level(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())

	log.Info().Msg("dropped")
	assert.Zero(t, buf.Len())
}

func TestNewLogger_Stack(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)
	log.Error().Stack().Err(errors.New("boom")).Msg("failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom", entry["error"])
	assert.NotEmpty(t, entry["stack"])
}

func TestNewLogger_Console(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Format = "console"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)
	log.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	log := zerolog.Nop()
	assert.Equal(t, log, WithTraceContext(log, nil))
}
