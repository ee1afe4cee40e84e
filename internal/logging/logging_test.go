package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		want      zerolog.Level
	}{
		{"negative defaults to warn", -1, zerolog.WarnLevel},
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 7, zerolog.TraceLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFor(tt.verbosity))
		})
	}
}

func TestSetupLogger(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	SetupLogger(2, &buf)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	logger := GetLogger("script")
	logger.Debug().Str("call", "getFoo").Msg("dispatch")
	assert.Contains(t, buf.String(), "dispatch")
	assert.Contains(t, buf.String(), "script")
	assert.Contains(t, buf.String(), "getFoo")
}

func TestSetupLogger_QuietAtWarn(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	SetupLogger(0, &buf)

	logger := GetLogger("script")
	logger.Info().Msg("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
