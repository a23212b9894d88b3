package testutil

import (
	"testing"

	"github.com/MGTheTrain/rsa-toolkit/internal/pkg/config"
	"github.com/MGTheTrain/rsa-toolkit/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger returns the process-wide logger, initialising it at debug level
// so engine retry counters show up in verbose test output.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	err := logger.InitLogger(&config.LoggerSettings{
		LogLevel: config.LogLevelDebug,
		LogType:  config.LogTypeConsole,
	})
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}
