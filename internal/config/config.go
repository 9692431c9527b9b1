// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvConfigJSON names the environment variable holding a JSON document that
// overrides the file configuration.
const EnvConfigJSON = "GO_ARTIFACT_DEPOT_CONFIG_JSON"

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var c Config

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	v := viper.New()
	v.SetConfigName("main")
	v.SetConfigType("toml")
	v.AddConfigPath(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	// override it from env
	if jsonConfigEnv := os.Getenv(EnvConfigJSON); jsonConfigEnv != "" {
		var err error
		if c, err = decodeAndMergeConfig(c, jsonConfigEnv); err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to merge json config from environment")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal config settings for the daemon.
// Unset values fall back to their defaults where one exists.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.DB.GormEngine == "" {
		c.DB.GormEngine = EngineMySQL // default engine
	}

	switch c.DB.GormEngine {
	case EngineMySQL, EnginePostgres, EngineSQLite:
	default:
		return errors.Wrap(ErrUnknownGormEngine, invalidErrMessage)
	}

	if c.Settings.Provider == "" {
		c.Settings.Provider = SettingsProviderFile
	}

	if c.Settings.Provider == SettingsProviderFile && c.Settings.Path == "" {
		c.Settings.Path = "./etc/shared.configuration.json" // default document location
	}

	switch c.Settings.Provider {
	case SettingsProviderFile, SettingsProviderDatabase:
	default:
		return errors.Wrap(ErrUnknownSettingsProvider, invalidErrMessage)
	}

	return nil
}
