package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DirName is the per-user directory holding the store and the optional config file.
const DirName = ".bookie"

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	Log struct {
		Level  string
		Format string
	}
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"db-driver":  "db.driver",
	"db-dsn":     "db.dsn",
	"log-level":  "log.level",
	"log-format": "log.format",
	"addr":       "http.addr",
}

// Load reads config from flags, environment (BOOKIE_ prefix) and an optional
// bookie.yaml in the working directory or ~/.bookie, in that order of precedence.
func Load(flags *pflag.FlagSet) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	return load(viper.New(), flags, home)
}

func load(v *viper.Viper, flags *pflag.FlagSet, home string) (*Config, error) {
	dir := filepath.Join(home, DirName)

	v.SetEnvPrefix("BOOKIE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("bookie")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("http.addr", "127.0.0.1:8484")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "pretty")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")

	switch cfg.DB.Driver {
	case "sqlite3":
		if cfg.DB.DSN == "" {
			cfg.DB.DSN = filepath.Join(dir, "bookie.db")
		}
	case "mysql", "postgres":
		if cfg.DB.DSN == "" {
			return nil, fmt.Errorf("BOOKIE_DB_DSN is required for driver %q", cfg.DB.Driver)
		}
	default:
		return nil, fmt.Errorf("BOOKIE_DB_DRIVER must be sqlite3, mysql, or postgres, got %q", cfg.DB.Driver)
	}

	switch cfg.Log.Format {
	case "pretty", "json":
	default:
		return nil, fmt.Errorf("BOOKIE_LOG_FORMAT must be pretty or json, got %q", cfg.Log.Format)
	}

	return cfg, nil
}
