// SPDX-License-Identifier: MIT

package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/votegraph/internal/logger"
)

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "production", ""} {
		l, err := logger.New(mode, "warn")
		require.NoError(t, err, mode)
		assert.False(t, l.Zap().Core().Enabled(zapcore.InfoLevel), mode)
		assert.True(t, l.Zap().Core().Enabled(zapcore.ErrorLevel), mode)
	}
}

func TestNew_DefaultLevelIsInfo(t *testing.T) {
	l, err := logger.New("dev", "")
	require.NoError(t, err)
	assert.True(t, l.Zap().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Zap().Core().Enabled(zapcore.DebugLevel))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logger.New("dev", "loud")
	require.Error(t, err)
}

func TestWith_KeyValues(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := (&logger.Logger{SugaredLogger: zap.New(core).Sugar()}).With("year", 2023)

	l.Info("graph built", "nodes", 3)
	l.Debug("detail")

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "graph built", entry.Message)
	assert.Equal(t, int64(2023), entry.ContextMap()["year"])
	assert.Equal(t, int64(3), entry.ContextMap()["nodes"])

	logger.NewNop().Warn("dropped")
}
