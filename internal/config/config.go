package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// DatabaseConfig holds the PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns the keyword/value connection string used by GORM.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// URL returns the connection string in URL form, as expected by golang-migrate.
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// JWTConfig holds token signing settings. The original deployment declares
// these but no handler enforces them; they are loaded for parity with the
// existing environment files.
type JWTConfig struct {
	Secret    string
	MaxAgeMin int
}

// CountryAPIConfig holds the settings for the external country-data API
// consumed by the startup sync job. URL is the API base; the job appends
// the /all path and is skipped when Key is empty.
type CountryAPIConfig struct {
	URL string
	Key string
}

// Config is the full service configuration.
type Config struct {
	Port       string
	AppEnv     string
	DB         DatabaseConfig
	JWT        JWTConfig
	CountryAPI CountryAPIConfig
}

// Load reads configuration from environment variables, falling back to a
// local .env file when present.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	// A missing .env is fine; real environments set variables directly.
	_ = v.ReadInConfig()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "route_manager")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("JWT_MAXAGE", 60)
	v.SetDefault("COUNTRYAPI_URL", "https://countryapi.io/api")

	cfg := &Config{
		Port:   v.GetString("PORT"),
		AppEnv: v.GetString("APP_ENV"),
		DB: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		JWT: JWTConfig{
			Secret:    v.GetString("JWT_SECRET_KEY"),
			MaxAgeMin: v.GetInt("JWT_MAXAGE"),
		},
		CountryAPI: CountryAPIConfig{
			URL: v.GetString("COUNTRYAPI_URL"),
			Key: v.GetString("COUNTRYAPI_KEY"),
		},
	}

	if cfg.DB.Name == "" {
		return nil, fmt.Errorf("DB_NAME must be set")
	}
	return cfg, nil
}
