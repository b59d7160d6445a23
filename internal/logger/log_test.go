package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConfigureSetsLevel(t *testing.T) {
	t.Cleanup(func() {
		cfg := Config{Format: "console", Level: "info"}
		require.NoError(t, cfg.Configure())
	})

	cfg := Config{Format: "json", Level: "warn"}
	require.NoError(t, cfg.Configure())

	core := L().Core()
	require.False(t, core.Enabled(zap.DebugLevel))
	require.False(t, core.Enabled(zap.InfoLevel))
	require.True(t, core.Enabled(zap.WarnLevel))
	require.True(t, core.Enabled(zap.ErrorLevel))

	Infof("dropped %d", 1)
	Warnf("kept %d", 2)
	Errorf("kept %s", "three")
}

func TestConfigureRejectsBadInput(t *testing.T) {
	cfg := Config{Format: "console", Level: "loud"}
	require.Error(t, cfg.Configure())

	cfg = Config{Format: "xml", Level: "info"}
	require.Error(t, cfg.Configure())
}

func TestNamedLoggerSharesCore(t *testing.T) {
	l := Named("panic")
	require.NotNil(t, l)
	require.Equal(t, L().Core().Enabled(zap.InfoLevel), l.Core().Enabled(zap.InfoLevel))
}
