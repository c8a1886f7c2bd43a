package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/costflow/costflow/internal/adapters/outbound/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "json", "debug")

	logger.Debug().Str("category", "invoice").Str("variant", "inv3").Msg("stage_executed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "stage_executed", entry["message"])
	assert.Equal(t, "inv3", entry["variant"])
	assert.Contains(t, entry, "time")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "console", "info")

	logger.Info().Str("variant", "sd2").Msg("hello")
	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "variant=sd2")
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "json", "warn")

	logger.Debug().Msg("hidden")
	logger.Info().Msg("hidden too")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logging.ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.Disabled, logging.ParseLevel("disabled"))
	assert.Equal(t, logging.DefaultLevel, logging.ParseLevel(""))
	assert.Equal(t, logging.DefaultLevel, logging.ParseLevel("verbose"))
}
