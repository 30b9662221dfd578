package postgres

import (
	"testing"

	"car-customizer/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host: "db", Port: "5432", User: "shop", Password: "secret", DBName: "car_customizer", SSLMode: "disable",
	}

	dsn := DSN(cfg)
	assert.Equal(t, "host=db port=5432 user=shop password=secret dbname=car_customizer sslmode=disable", dsn)

	parsed, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	assert.Equal(t, "db", parsed.ConnConfig.Host)
	assert.Equal(t, uint16(5432), parsed.ConnConfig.Port)
	assert.Equal(t, "car_customizer", parsed.ConnConfig.Database)
}
