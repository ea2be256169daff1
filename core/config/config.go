package config

import (
	"reflect"
	"strings"

	"bulk-seeder/core/database"
	"bulk-seeder/core/logger"
	"bulk-seeder/core/seed"
	"bulk-seeder/core/server"
	"bulk-seeder/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage holding sources and reports.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds the default database connection.
	Database database.Config `mapstructure:"database"`
	// Seed holds the seeding run settings.
	Seed seed.Config `mapstructure:"seed"`
}

// LoadConfig loads configuration from environment variables and the .env
// file found in path.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is fine, the environment may carry everything.
	_ = godotenv.Overload(envPath)

	v := viper.New()
	bindValues(v, Config{}, "")

	// SEED_PLAN -> seed.plan
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues registers every mapstructure key with its `default` tag value so
// AutomaticEnv can resolve it.
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
