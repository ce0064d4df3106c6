package logger

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBuildConfigByEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		env              string
		wantLevel        zapcore.Level
		wantDisableStack bool
		wantCaller       bool
		wantCallerKey    string
	}{
		{"development", "development", zap.DebugLevel, true, false, zapcore.OmitKey},
		{"debug", " DEBUG ", zap.DebugLevel, false, true, "caller"},
		{"production", "production", zap.InfoLevel, true, false, zapcore.OmitKey},
		{"fallback", "unknown", zap.InfoLevel, true, false, zapcore.OmitKey},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, withCaller := buildConfig(tc.env)

			require.Equal(t, tc.wantLevel, cfg.Level.Level())
			require.Equal(t, tc.wantDisableStack, cfg.DisableStacktrace)
			require.Equal(t, tc.wantCaller, withCaller)
			require.Equal(t, tc.wantCallerKey, cfg.EncoderConfig.CallerKey)
			require.Equal(t, "timestamp", cfg.EncoderConfig.TimeKey)
			require.Equal(t, "msg", cfg.EncoderConfig.MessageKey)
			require.Equal(t, []string{"stderr"}, cfg.ErrorOutputPaths)
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	l, err := New("test", Options{Env: "production", Level: "warn", Output: filepath.Join(t.TempDir(), "bot.log")})
	require.NoError(t, err)
	require.NotNil(t, l)
	require.False(t, l.Desugar().Core().Enabled(zap.InfoLevel))
	require.True(t, l.Desugar().Core().Enabled(zap.WarnLevel))

	l.Warnw("startup", "component", "logger")
	l.SafeSync()
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New("test", Options{Env: "production", Level: "loud"})
	require.Error(t, err)
}

func TestNewNop(t *testing.T) {
	t.Parallel()

	l := NewNop()
	l.Infow("nothing", "k", "v")
	l.SafeSync()
}

func TestIsIgnorableSyncError(t *testing.T) {
	t.Parallel()

	require.False(t, isIgnorableSyncError(nil))
	require.True(t, isIgnorableSyncError(errors.New("sync /dev/stderr: invalid argument")))
	require.True(t, isIgnorableSyncError(errors.New("sync /dev/stdout: inappropriate ioctl for device")))
	require.False(t, isIgnorableSyncError(errors.New("disk write failed")))
}
