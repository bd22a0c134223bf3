package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SAP-F-2025/drive-schedule-service/internal/events"
	"github.com/SAP-F-2025/drive-schedule-service/internal/models"
	"github.com/SAP-F-2025/drive-schedule-service/internal/repositories"
	"github.com/SAP-F-2025/drive-schedule-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/drive-schedule-service/internal/validator"
)

type testEnv struct {
	db        *gorm.DB
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher *events.MockEventPublisher
	emitter   *EventEmitter
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db := openTestDB(t, fmt.Sprintf("file:svc_%s?mode=memory&cache=shared&_foreign_keys=on", name))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return buildTestEnv(db, nil)
}

// newCachedTestEnv backs the services with a file database, so reads outside
// a transaction run on their own connection, and a miniredis cache.
func newCachedTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "schedule.db") + "?_foreign_keys=on&_busy_timeout=5000"
	mr := miniredis.RunT(t)
	return buildTestEnv(openTestDB(t, dsn), redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func openTestDB(t *testing.T, dsn string) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func buildTestEnv(db *gorm.DB, redisClient *redis.Client) *testEnv {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := events.NewMockEventPublisher(log)

	return &testEnv{
		db:        db,
		repo:      postgres.NewPostgreSQLRepository(postgres.RepositoryConfig{DB: db, RedisClient: redisClient}),
		logger:    log,
		validator: validator.New(),
		publisher: publisher,
		emitter:   NewEventEmitter(publisher, "drive-schedule-service", log),
	}
}

// afterInsert runs fn once, right after the first row is inserted into table
// and before the surrounding transaction commits.
func (e *testEnv) afterInsert(t *testing.T, table string, fn func()) {
	t.Helper()

	done := false
	err := e.db.Callback().Create().After("gorm:create").Register("test:after_insert_"+table, func(d *gorm.DB) {
		if done || d.Error != nil || d.Statement.Table != table {
			return
		}
		done = true
		fn()
	})
	require.NoError(t, err)
}

func (e *testEnv) auth() AuthService {
	return NewAuthService(e.repo, e.db, e.logger, e.validator, e.emitter)
}

func (e *testEnv) sessions() SessionService {
	return NewSessionService(e.repo, e.db, e.logger, e.validator, e.emitter)
}

// seedUser inserts a user with an explicit role, bypassing registration
func (e *testEnv) seedUser(t *testing.T, name string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Name:     name,
		Email:    strings.ToLower(name) + "@school.test",
		Password: "pw",
		Role:     role,
	}
	require.NoError(t, e.repo.User().Create(context.Background(), nil, user))
	return user
}

func (e *testEnv) countUsers(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&models.User{}).Count(&count).Error)
	return count
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
