package testutils

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"xgrowth-backend/internal/database"
	"xgrowth-backend/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for the readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	pgUser     = "xgrowth"
	pgPassword = "xgrowth"
	pgDatabase = "xgrowth_test"
)

// One Postgres container serves every integration suite of a test binary.
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedTables   []string
)

// BaseTestSuite hands a migrated database to repository suites and wipes it
// between tests.
type BaseTestSuite struct {
	DB *gorm.DB
}

// SetupTestSuite starts the shared container on first use.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = startPostgres() })
	if sharedInitErr != nil {
		t.Fatalf("failed to start test database: %v", sharedInitErr)
	}
	return &BaseTestSuite{DB: sharedDB}
}

// CleanupSharedContainer purges the container. RunMain calls it.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if sharedPool == nil || sharedResource == nil {
		return
	}
	log := logger.New().WithField("container", sharedResource.Container.Name)
	if err := sharedPool.Purge(sharedResource); err != nil {
		log.WithError(err).Warn("Could not purge test database container")
	} else {
		log.Info("Purged test database container")
	}
	sharedResource = nil
	sharedPool = nil
}

func (s *BaseTestSuite) SetupTest()         { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest()      { s.CleanTestDB() }
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every table backing a registered model.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil || len(sharedTables) == 0 {
		return
	}
	quoted := make([]string, len(sharedTables))
	for i, t := range sharedTables {
		quoted[i] = `"` + t + `"`
	}
	s.DB.Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE")
}

// modelTables resolves table names through gorm's naming so the truncate list
// follows AllModels.
func modelTables(db *gorm.DB) ([]string, error) {
	models := database.AllModels()
	tables := make([]string, 0, len(models))
	for _, m := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return nil, fmt.Errorf("parse %T: %w", m, err)
		}
		tables = append(tables, stmt.Schema.Table)
	}
	return tables, nil
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	sharedPool = pool

	tag := os.Getenv("TEST_POSTGRES_TAG")
	if tag == "" {
		tag = "15-alpine"
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        tag,
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource
	// Reaped by docker if the test binary dies before CleanupSharedContainer.
	_ = resource.Expire(600)

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	if err := pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		return std.Ping()
	}); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, &database.Options{LogLevel: gormlogger.Silent})
	if err != nil {
		return err
	}
	tables, err := modelTables(db)
	if err != nil {
		return err
	}
	sharedDB = db
	sharedTables = tables

	logger.New().WithFields(map[string]interface{}{
		"port":   resource.GetPort("5432/tcp"),
		"tables": len(tables),
	}).Info("Test database ready")
	return nil
}
