package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_FormatsAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Infof("post %s created", "p1")
	l.Warningf("cache error: %v", "timeout")
	l.Errorf("failed: %d", 3)

	entries := logs.All()
	assert.Len(t, entries, 3)
	assert.Equal(t, "post p1 created", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestNewZapLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	l := NewZapLogger("chatty")
	assert.True(t, l.Zap().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Zap().Core().Enabled(zapcore.DebugLevel))
}
