package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/marcodamonte/exercises/internal/logging"
)

func TestNewLevels(t *testing.T) {
	t.Parallel()

	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			l, err := logging.New(name)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(want))
			if want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(want-1))
			}
		})
	}
}

func TestNewInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := logging.New("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging:")

	assert.Panics(t, func() { logging.Must("loud") })
}
