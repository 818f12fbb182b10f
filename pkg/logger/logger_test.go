package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		format string
		level  string
		check  func(t *testing.T, l Logger)
	}{
		{
			name:   "text info",
			format: "text",
			level:  "info",
			check: func(t *testing.T, l Logger) {
				require.IsType(t, &Std{}, l)
				assert.False(t, l.(*Std).Debug)
			},
		},
		{
			name:   "text debug",
			format: "",
			level:  "DEBUG",
			check: func(t *testing.T, l Logger) {
				require.IsType(t, &Std{}, l)
				assert.True(t, l.(*Std).Debug)
			},
		},
		{
			name:   "json",
			format: "JSON",
			level:  "warn",
			check: func(t *testing.T, l Logger) {
				assert.IsType(t, &Zap{}, l)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.format, tt.level)
			require.NoError(t, err)
			tt.check(t, l)
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("Error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestZapLevels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := WrapZap(zap.New(core))

	l.Debugf("hidden %d", 1)
	l.Infof("running on %s", "localhost:8080")
	l.Errorf("failed to read body: %v", "EOF")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "running on localhost:8080", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "failed to read body: EOF", entries[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}
