package postgres_test

import (
	"testing"
	"worldclock/config"
	"worldclock/infras/postgres"
	"worldclock/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SkipsWhenRosterIsInRedis(t *testing.T) {
	cfg := &config.Config{}
	cfg.Roster.Store = constant.RosterStoreRedis

	conn := postgres.New(cfg)

	assert.False(t, conn.Ready())
	assert.NoError(t, conn.Close())
}

func TestConnection_Close(t *testing.T) {
	// sqlx.Open does not dial, so the pools exist without a server.
	read, err := sqlx.Open("postgres", "postgres://reader@127.0.0.1:1/worldclock?sslmode=disable")
	require.NoError(t, err)

	write, err := sqlx.Open("postgres", "postgres://writer@127.0.0.1:1/worldclock?sslmode=disable")
	require.NoError(t, err)

	conn := &postgres.Connection{Read: read, Write: write}
	require.True(t, conn.Ready())

	require.NoError(t, conn.Close())

	assert.Error(t, read.Ping())
	assert.Error(t, write.Ping())
}
