// Package config centralizes Viper access for the CLI. Values resolve in
// the usual order: flags, then environment, then config file.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Keys understood by the CLI configuration file and TAPETRAIL_* env vars.
const (
	KeyShowsDir       = "shows_dir"
	KeyRecordingsDir  = "recordings_dir"
	KeyCollections    = "collections"
	KeyOutputDir      = "output_dir"
	KeyVenueThreshold = "venue_threshold"
	KeyLogLevel       = "log_level"
)

// EnvPrefix namespaces environment variables, e.g. TAPETRAIL_SHOWS_DIR.
const EnvPrefix = "TAPETRAIL"

// Init wires Viper to the optional config file and the environment.
// A missing config file is fine; a malformed one is not.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tapetrail")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// GetString is a helper to get string values from Viper. It checks both
// OS environment variables and Viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(EnvPrefix + "_" + strings.ToUpper(key))
	viperValue := viper.GetString(key)
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// GetFloat64 returns a float value from Viper.
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}
