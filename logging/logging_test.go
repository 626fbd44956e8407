package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("warn", false, &buf)
	require.NoError(t, err)

	log.Info().Msg("hidden")
	require.Zero(t, buf.Len())

	log.Warn().Str("kind", "bar").Msg("rejected chart input")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "warn", line["level"])
	require.Equal(t, "bar", line["kind"])
	require.Equal(t, "rejected chart input", line["message"])
	require.Contains(t, line, "time")
}

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("debug", true, &buf)
	require.NoError(t, err)

	log.Debug().Msg("chart drawn")
	require.Contains(t, buf.String(), "chart drawn")
	require.NotContains(t, buf.String(), `"message"`)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, lvl)

	lvl, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, lvl)

	_, err = ParseLevel("loud")
	require.Error(t, err)

	_, err = New("loud", false, nil)
	require.Error(t, err)
}
