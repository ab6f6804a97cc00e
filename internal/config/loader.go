package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".lvpart"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for lvpart settings.
const envPrefix = "LVPART"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// FlagKeys maps command-line flag names to configuration keys.
var FlagKeys = map[string]string{
	"objective":    "solve.objective",
	"query":        "solve.query_mode",
	"equal-slopes": "solve.equal_slopes",
	"format":       "output.format",
	"verify":       "verify.enabled",
	"verify-max-n": "verify.max_n",
	"log-level":    "logging.level",
	"log-format":   "logging.format",
}

// Load loads configuration from defaults, file, env vars and flags.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, .lvpart.yaml is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
// flags may be nil; flags listed in FlagKeys override every other source
// when they were set on the command line.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}

		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := viperCfg.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("solve.objective", DefaultObjective)
	viperCfg.SetDefault("solve.query_mode", DefaultQueryMode)
	viperCfg.SetDefault("solve.equal_slopes", DefaultEqualSlopes)

	viperCfg.SetDefault("output.format", DefaultFormat)

	viperCfg.SetDefault("verify.enabled", DefaultVerify)
	viperCfg.SetDefault("verify.max_n", DefaultVerifyMaxN)

	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.format", DefaultLogFormat)
}
