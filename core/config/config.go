package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"armory/core/database"
	"armory/core/logger"
	"armory/core/server"
	"armory/core/storage"
	"armory/feature/equipment"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the complete application configuration. Every key can be set
// through the environment or a .env file, e.g. CATALOG_SOURCE=storage.
type Config struct {
	Server   server.Config   `mapstructure:"server"`
	Storage  storage.Config  `mapstructure:"storage"`
	Log      logger.Config   `mapstructure:"log"`
	Database database.Config `mapstructure:"database"`
	// Catalog selects where the item catalog is loaded from.
	Catalog equipment.CatalogConfig `mapstructure:"catalog"`
	// Session controls equipment session persistence.
	Session equipment.SessionConfig `mapstructure:"session"`
}

// LoadConfig reads path/.env (when present) and the environment on top of
// the struct tag defaults, then validates the result.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()
	bindValues(v, Config{}, "")

	// SERVER_PORT -> server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate reports every setting that has no meaning.
func (c *Config) Validate() error {
	var errs []error
	if !c.Catalog.IsValidSource() {
		errs = append(errs, fmt.Errorf("invalid catalog source: %q", c.Catalog.Source))
	}
	if c.Catalog.CacheTTLSeconds < 0 {
		errs = append(errs, fmt.Errorf("catalog cache ttl must not be negative: %d", c.Catalog.CacheTTLSeconds))
	}
	switch c.Database.Driver {
	case database.DriverMySQL, database.DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unsupported database driver: %q", c.Database.Driver))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log format: %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// bindValues registers the 'default' tag of every 'mapstructure' field,
// recursing into nested structs. Registering each key, even with an empty
// default, is what lets AutomaticEnv find it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
