package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config carries every server knob. Values come from an optional
// server.yaml next to the binary, overridden by EMBERWILD_* environment
// variables (EMBERWILD_DB_DSN, EMBERWILD_HTTP_ADDR, ...).
type Config struct {
	HTTPAddr       string  `mapstructure:"http_addr"`
	DBDSN          string  `mapstructure:"db_dsn"`
	CatalogDir     string  `mapstructure:"catalog_dir"`
	PopulationFile string  `mapstructure:"population_file"`
	DaySeconds     float64 `mapstructure:"day_seconds"`
	Seed           int64   `mapstructure:"seed"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("server")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("EMBERWILD")
	v.AutomaticEnv()

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("db_dsn", "")
	v.SetDefault("catalog_dir", "./catalog")
	v.SetDefault("population_file", "./catalog/population.yaml")
	v.SetDefault("day_seconds", 600.0)
	v.SetDefault("seed", 0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
