package commands

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/rsa-toolkit/internal/app"
	"github.com/MGTheTrain/rsa-toolkit/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-toolkit/internal/pkg/config"
	"github.com/MGTheTrain/rsa-toolkit/internal/pkg/logger"
)

// ConfigPathEnv names the environment variable holding the optional YAML config path.
const ConfigPathEnv = "RSA_TOOLKIT_CONFIG"

// Config is the configuration shared by all command handlers.
type Config = config.CLIConfig

// LoadConfig reads the CLI configuration from the file named by RSA_TOOLKIT_CONFIG,
// falling back to defaults when the variable is unset.
func LoadConfig() (*Config, error) {
	return config.InitializeCLIConfig(os.Getenv(ConfigPathEnv))
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

func setupKeyPairService(loggerInstance logger.Logger) (app.KeyPairService, error) {
	primes, err := cryptography.NewPrimeGenerator(nil, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create prime generator: %w", err)
	}

	keys, err := cryptography.NewKeyFactory(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key factory: %w", err)
	}

	return app.NewKeyPairService(primes, keys, loggerInstance)
}
