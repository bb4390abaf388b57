package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, zerolog.InfoLevel, parseLevel("info"))
	require.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	require.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	// Unknown values fall back to info instead of silencing the app.
	require.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
	require.Equal(t, zerolog.InfoLevel, parseLevel(""))
}

func TestNewProducesUsableLogger(t *testing.T) {
	log := New(Config{Env: "production", Level: "warn"})
	require.NotNil(t, log)
	require.NotNil(t, log.Warn())
	require.NotNil(t, log.Error())
}
