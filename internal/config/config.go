package config

import (
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/youruser/outfitapp/internal/logger"
	"github.com/youruser/outfitapp/internal/outfit"
	"github.com/youruser/outfitapp/internal/profile"
	"github.com/youruser/outfitapp/internal/storage"
)

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// Mode is the gin mode: debug, release or test.
	Mode string `mapstructure:"mode" default:"release"`
}

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig        `mapstructure:"server"`
	Log     logger.Config       `mapstructure:"log"`
	Profile profile.Config      `mapstructure:"profile"`
	Assets  outfit.AssetsConfig `mapstructure:"assets"`
	Share   outfit.ShareConfig  `mapstructure:"share"`
	Storage storage.Config      `mapstructure:"storage"`
}

// Outfit returns the render configuration built from the assets and share sections.
func (c *Config) Outfit() outfit.Config {
	return outfit.DefaultConfig(c.Assets, c.Share)
}

// LoadConfig loads configuration from environment variables and an optional .env file in path.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." || path == "" {
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
		return nil, err
	}

	return &config, nil
}

// bindValues registers every mapstructure key with its `default` tag so AutomaticEnv can see it.
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
