package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. RSA_TOOLKIT_ENGINE_ROUNDS=10.
const EnvPrefix = "RSA_TOOLKIT"

// CLIConfig is the configuration of the rsa-toolkit-cli application.
type CLIConfig struct {
	Logger LoggerSettings `mapstructure:"logger"`
	Engine EngineSettings `mapstructure:"engine"`
}

// Validate validates every section of the configuration.
func (c *CLIConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Engine.Validate()
}

// InitializeCLIConfig loads the configuration from the YAML file at path.
// An empty path yields the defaults, still subject to environment overrides.
func InitializeCLIConfig(path string) (*CLIConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	logger := DefaultLoggerSettings()
	v.SetDefault("logger.log_level", logger.LogLevel)
	v.SetDefault("logger.log_type", logger.LogType)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)

	engine := DefaultEngineSettings()
	v.SetDefault("engine.prime_bits", engine.PrimeBits)
	v.SetDefault("engine.rounds", engine.Rounds)
	v.SetDefault("engine.hash_algorithm", engine.HashAlgorithm)
}
