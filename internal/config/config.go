package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mkarag/pubhouse/internal/dataset"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	Path       string
	SchemaPath string
}

type SeedConfig struct {
	DatasetsDir     string
	ScaleFactor     float64
	PaidProbability float64
}

type AuthConfig struct {
	AccessSecret string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Seed        SeedConfig
	Auth        AuthConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	v.SetDefault("SEED_SCALE_FACTOR", 1.0)
	v.SetDefault("SEED_PAID_PROBABILITY", 0.5)

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			Path:       v.GetString("DB_PATH"),
			SchemaPath: v.GetString("SCHEMA_PATH"),
		},
		Seed: SeedConfig{
			DatasetsDir:     v.GetString("DATASETS_DIR"),
			ScaleFactor:     v.GetFloat64("SEED_SCALE_FACTOR"),
			PaidProbability: v.GetFloat64("SEED_PAID_PROBABILITY"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("API_ACCESS_SECRET"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7810
	}
	if cfg.DB.Path == "" {
		cfg.DB.Path = "publishing_house.db"
	}
	if cfg.Seed.DatasetsDir == "" {
		cfg.Seed.DatasetsDir = "datasets"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Seed.ScaleFactor <= 0 {
		return fmt.Errorf("%w: SEED_SCALE_FACTOR must be positive, got %v",
			dataset.ErrConfiguration, cfg.Seed.ScaleFactor)
	}
	if cfg.Seed.PaidProbability < 0 || cfg.Seed.PaidProbability > 1 {
		return fmt.Errorf("%w: SEED_PAID_PROBABILITY must be within [0, 1], got %v",
			dataset.ErrConfiguration, cfg.Seed.PaidProbability)
	}
	return nil
}
