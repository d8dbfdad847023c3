package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zap.DebugLevel},
		{"WARN", zap.WarnLevel},
		{"error", zap.ErrorLevel},
		{"", zap.InfoLevel},
		{"chatty", zap.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestLeveler(t *testing.T) {
	l := &levelSetter{levelers: make(map[string]zap.AtomicLevel), defaultLevel: zap.InfoLevel}

	assert.Equal(t, zap.InfoLevel, l.GetLevel("unknown"))

	l.SetLevel("a", zap.DebugLevel)
	assert.Equal(t, zap.DebugLevel, l.GetLevel("a"))

	b := l.register("b")
	assert.Equal(t, zap.InfoLevel, b.Level())

	l.SetAllLevels(zap.ErrorLevel)
	assert.Equal(t, zap.ErrorLevel, l.GetLevel("a"))
	assert.Equal(t, zap.ErrorLevel, b.Level())
	assert.Equal(t, zap.ErrorLevel, l.register("c").Level())
}

func TestNewReturnsNamedLogger(t *testing.T) {
	logger := New("logging-test")
	assert.NotNil(t, logger)
	assert.Equal(t, "logging-test", logger.Desugar().Name())
}
