package logging

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		want      zerolog.Level
	}{
		{"default is warn", 0, zerolog.WarnLevel},
		{"single v is info", 1, zerolog.InfoLevel},
		{"double v is debug", 2, zerolog.DebugLevel},
		{"triple v is trace", 3, zerolog.TraceLevel},
		{"beyond triple is trace", 7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetupLogger(tt.verbosity)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestGetLogger(t *testing.T) {
	SetupLogger(0)
	logger := GetLogger("resolver")
	// Logger must be usable without panicking
	logger.Debug().Msg("component logger works")
}

func TestGetLogFilePath(t *testing.T) {
	path := getLogFilePath()

	assert.True(t, strings.HasSuffix(path, "jlman.log"), "log file should be jlman.log, got %s", path)
	assert.Contains(t, path, "jlman")
}
