package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestReplaceRoutesStructuredAndSugaredCalls(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := Replace(zap.New(core))
	defer restore()

	Info("weather fetched", zap.String("city", "London"))
	Warnf("suggestions failed for %q", "Lo")
	Errorw("reverse geocode failed", "error", errors.New("boom"))
	Debug("sequence discarded", zap.Uint64("seq", 3))

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "London", entries[0].ContextMap()["city"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, `suggestions failed for "Lo"`, entries[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
	assert.Equal(t, zapcore.DebugLevel, entries[3].Level)
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	assert.Equal(t, zapcore.WarnLevel, levelFromEnv())

	t.Setenv("LOG_LEVEL", "verbose")
	assert.Equal(t, zapcore.InfoLevel, levelFromEnv())
}
