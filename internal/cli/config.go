package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "AETHER"

	// Config keys. Each may also be set through AETHER_<KEY>.
	cfgKeyOutput    = "output"
	cfgKeyKeepGoing = "keep_going"
	cfgKeyVerbosity = "verbosity"

	defaultOutput = "text"
)

// loadConfig reads config.yaml from configDir into v. Flags bound to v
// take precedence, then AETHER_* environment variables, then the file,
// then defaults. A missing config.yaml is not an error.
func loadConfig(v *viper.Viper, configDir string) error {
	v.SetDefault(cfgKeyOutput, defaultOutput)
	v.SetDefault(cfgKeyKeepGoing, false)
	v.SetDefault(cfgKeyVerbosity, 0)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
