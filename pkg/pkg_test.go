package pkg

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/drive-schedule-service/internal/config"
)

func TestInitDatabase_SQLiteMigratesSchema(t *testing.T) {
	cfg := &config.Config{
		DBDriver:       config.DriverSQLite,
		DatabaseURL:    "file:pkg_init?mode=memory&cache=shared",
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
	}

	db, err := InitDatabase(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	for _, table := range []string{"users", "vehicles", "sessions", "session_learners", "notifications"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(&config.Config{RedisURL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	_, err = NewRedisClient(&config.Config{RedisURL: "not a url"})
	assert.Error(t, err)
}
