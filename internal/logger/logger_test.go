package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultLoggerIsUsable(t *testing.T) {
	require.NotNil(t, Log)
	assert.NotPanics(t, func() { Log.Info("before init") })
}

func TestInitLevels(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	require.NoError(t, Init("debug", true))
	assert.True(t, Log.Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Init("warn", false))
	assert.False(t, Log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Log.Core().Enabled(zapcore.WarnLevel))
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	err := Init("loud", false)
	assert.Error(t, err)
	assert.Same(t, prev, Log)
}
