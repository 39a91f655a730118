package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPConfig struct {
	Address string        `yaml:"address" env:"API_ADDRESS" env-default:":8080"`
	Timeout time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"5s"`
}

type DBConfig struct {
	// Driver is "sqlite" (embedded, default) or "pgx" (PostgreSQL).
	Driver  string `yaml:"driver" env:"DB_DRIVER" env-default:"sqlite"`
	Address string `yaml:"address" env:"DB_ADDRESS" env-default:"notes.db"`
}

type UIConfig struct {
	Enabled bool   `yaml:"enabled" env:"UI_ENABLED" env-default:"true"`
	APIURL  string `yaml:"api_url" env:"UI_API_URL" env-default:"http://localhost:8080/api"`
}

type Config struct {
	LogLevel string     `yaml:"log_level" env:"LOG_LEVEL" env-default:"DEBUG"`
	HTTP     HTTPConfig `yaml:"api_server"`
	DB       DBConfig   `yaml:"db"`
	UI       UIConfig   `yaml:"ui"`
}

// Load reads the config file, falling back to the environment when the
// file is missing or the path is empty.
func Load(configPath string) (Config, error) {
	var cfg Config

	if configPath == "" {
		err := cleanenv.ReadEnv(&cfg)
		return cfg, err
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			err := cleanenv.ReadEnv(&cfg)
			return cfg, err
		}
		return cfg, err
	}

	return cfg, nil
}

func MustLoad(configPath string) Config {
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config %q: %s", configPath, err)
	}
	return cfg
}
