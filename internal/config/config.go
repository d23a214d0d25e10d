package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Configuration struct {
	// DbUrl is the path to the snapshot database file.
	DbUrl string
	// MigrationsFolder is the directory holding the sql migration files,
	// applied when the binary runs with --setup.
	MigrationsFolder string
	// Addr is the listen address of the HTTP dispatch layer.
	Addr string
	// SessionCookieKey is the secret used by the cookie session manager.
	SessionCookieKey string
	// Debug, if true, will make the application log all HTTP requests and other events.
	Debug bool
	// Name of the instance.
	Name string
}

// ReadConfig loads the configuration file, falling back to defaults for
// anything unset. Every key can also come from a FLOCK_ prefixed environment
// variable.
func ReadConfig(path string) (Configuration, error) {
	v := viper.New()
	v.SetDefault("dburl", "flock.db")
	v.SetDefault("migrationsfolder", "migrations")
	v.SetDefault("addr", ":8080")
	v.SetDefault("name", "flock")
	v.SetDefault("sessioncookiekey", "u46IpCV9y5Vlur8YvODJEhgOY8m9JVE4")
	v.SetDefault("debug", false)

	v.SetEnvPrefix("FLOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Configuration{}, err
		}
	}

	var c Configuration
	err := v.Unmarshal(&c)
	return c, err
}
