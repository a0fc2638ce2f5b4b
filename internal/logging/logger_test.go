package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("loud"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
}

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"production", "development"} {
		l, err := New(mode, "error")
		require.NoError(t, err)
		assert.False(t, l.SugaredLogger.Desugar().Core().Enabled(zapcore.WarnLevel))
		assert.True(t, l.SugaredLogger.Desugar().Core().Enabled(zapcore.ErrorLevel))
	}
}

func TestWithKeepsFields(t *testing.T) {
	l := NewNop().With("component", "test")
	require.NotNil(t, l)
	l.Info("discarded", "k", "v")
}
