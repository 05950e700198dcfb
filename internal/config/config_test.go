package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Port)
	assert.Equal(t, "route_manager", cfg.DB.Name)
	assert.Equal(t, "disable", cfg.DB.SSLMode)

	// The sync job appends /all to this base, so the default must not
	// already carry the path.
	assert.Equal(t, "https://countryapi.io/api", cfg.CountryAPI.URL)
	assert.NotContains(t, cfg.CountryAPI.URL+"/all", "/all/all")
	assert.Empty(t, cfg.CountryAPI.Key)
}

func TestDatabaseConfig_ConnectionStrings(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "app",
		Password: "secret",
		Name:     "routes",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db port=5432 user=app password=secret dbname=routes sslmode=disable",
		db.DSN())
	assert.Equal(t,
		"postgres://app:secret@db:5432/routes?sslmode=disable",
		db.URL())
}
