package am

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/papyrus-typegen/errors"
	"github.com/teranos/papyrus-typegen/logger"
)

// EnvPrefix prefixes every environment override, e.g. TYPEGEN_OUTPUT_PATH
const EnvPrefix = "TYPEGEN"

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the typegen configuration from all layered sources
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	config, err := LoadWithViper(initViper())
	if err != nil {
		return nil, err
	}

	globalConfig = config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path. The user and
// project files are skipped; defaults and TYPEGEN_* variables still apply.
func LoadFromFile(configPath string) (*Config, error) {
	v := newViper()

	if err := mergeFile(v, configPath, SourceFile); err != nil {
		return nil, err
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config from %s", configPath)
	}

	viperInstance = v
	globalConfig = config
	return config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
	ConfigSources = make(map[string]SourceInfo)
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	ConfigSources = make(map[string]SourceInfo)
	return v
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := newViper()
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// findProjectConfig searches for typegen.toml by walking up the directory tree.
// Returns the path to the first file found, or empty string if none found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ProjectConfigName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// UserConfigPath returns the per-user config file, or "" when the platform
// has no user config directory
func UserConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "typegen", ProjectConfigName)
}

// mergeConfigFiles merges configuration files in precedence order
// (lowest to highest): user < project. Environment variables win over both.
func mergeConfigFiles(v *viper.Viper) {
	sources := []struct {
		path   string
		source ConfigSource
	}{
		{UserConfigPath(), SourceUser},
		{findProjectConfig(), SourceProject},
	}

	for _, s := range sources {
		if s.path == "" {
			continue
		}
		if _, err := os.Stat(s.path); err != nil {
			continue
		}
		if err := mergeFile(v, s.path, s.source); err != nil {
			logger.Warnw("skipping unreadable config file",
				logger.FieldFile, s.path, logger.FieldError, err)
		}
	}
}

// mergeFile reads one TOML file into v and records the keys it set
func mergeFile(v *viper.Viper, path string, source ConfigSource) error {
	fileViper := viper.New()
	fileViper.SetConfigFile(path)
	fileViper.SetConfigType("toml")

	if err := fileViper.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}

	settings := fileViper.AllSettings()
	if err := v.MergeConfigMap(settings); err != nil {
		return errors.Wrapf(err, "failed to merge config file %s", path)
	}
	trackSources(settings, "", SourceInfo{Source: source, Path: path})

	if unknown, err := UnknownKeys(path); err == nil && len(unknown) > 0 {
		logger.Warnw("config file has unknown keys", logger.FieldFile, path, "keys", unknown)
	}

	logger.Debugw("config file merged", logger.FieldFile, path, "source", string(source))
	return nil
}

// Get returns a configuration value using dot notation
func Get(key string) interface{} {
	return initViper().Get(key)
}

// GetString returns a configuration value as string using dot notation
func GetString(key string) string {
	return initViper().GetString(key)
}

// GetBool returns a configuration value as bool using dot notation
func GetBool(key string) bool {
	return initViper().GetBool(key)
}

// GetInt returns a configuration value as int using dot notation
func GetInt(key string) int {
	return initViper().GetInt(key)
}

// ProjectConfigPath returns the nearest typegen.toml above the working
// directory, or "" when there is none
func ProjectConfigPath() string {
	return findProjectConfig()
}
