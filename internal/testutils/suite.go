package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"teampro-backend/internal/config"
	"teampro-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "teampro"
	pgPassword = "teampro-test"
	pgDatabase = "teampro_test"
)

// postgresContainer is the Postgres instance shared by every integration suite of one test binary
type postgresContainer struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	cfg      *config.Config
	tables   []string
}

var shared postgresContainer

// BaseTestSuite gives integration suites a migrated Postgres database
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
	tables []string
}

// SetupTestSuite starts the shared Postgres container on first use and returns a suite bound to it.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	shared.once.Do(func() { shared.err = shared.start() })
	if shared.err != nil {
		t.Fatalf("failed to initialize shared test container: %v", shared.err)
	}
	return &BaseTestSuite{
		DB:     shared.db,
		Config: shared.cfg,
		tables: shared.tables,
	}
}

// RunWithContainerCleanup runs the package's tests and removes the shared container afterwards,
// also on SIGINT or SIGTERM. Call it from TestMain.
func RunWithContainerCleanup(m *testing.M, name string) int {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Printf("🛑 %s tests interrupted, cleaning up Docker containers...", name)
		CleanupSharedContainer()
		os.Exit(1)
	}()

	log.Printf("🧪 Starting %s tests...", name)
	code := m.Run()
	log.Printf("✅ %s tests completed, cleaning up Docker containers...", name)
	CleanupSharedContainer()
	return code
}

// CleanupSharedContainer closes the shared connection and purges the container.
func CleanupSharedContainer() {
	if shared.db != nil {
		if sqlDB, err := shared.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		shared.db = nil
	}
	if shared.pool == nil || shared.resource == nil {
		return
	}
	log.Printf("Purging Docker container: %s", shared.resource.Container.Name)
	if err := shared.pool.Purge(shared.resource); err != nil {
		log.Printf("WARN: could not purge shared resource: %v", err)
	}
	shared.resource = nil
	shared.pool = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite cleans the database; the container lives until the process ends.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every migrated table in one statement.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil || len(s.tables) == 0 {
		return
	}
	quoted := make([]string, len(s.tables))
	for i, t := range s.tables {
		quoted[i] = `"` + t + `"`
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		log.Printf("WARN: could not truncate test tables: %v", err)
	}
}

// tableNames resolves the table of every model known to the migrator
func tableNames(db *gorm.DB) ([]string, error) {
	var names []string
	for _, model := range database.AllModels() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse %T: %w", model, err)
		}
		if !db.Migrator().HasTable(stmt.Schema.Table) {
			return nil, fmt.Errorf("table %s missing after migration", stmt.Schema.Table)
		}
		names = append(names, stmt.Schema.Table)
	}
	return names, nil
}

func (c *postgresContainer) start() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	c.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
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
	c.resource = resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	// Ping through pgx first; gorm migrations only run once the server accepts connections
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

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("could not initialize database: %w", err)
	}
	tables, err := tableNames(db)
	if err != nil {
		return err
	}
	c.db = db
	c.tables = tables

	c.cfg = &config.Config{
		DatabaseURL:          dsn,
		Port:                 "8080",
		LogLevel:             "debug",
		Environment:          "test",
		CompletionPolicy:     config.CompletionNonDecreasing,
		InvitationStaleAfter: 24 * time.Hour,
		ProofMaxBytes:        5 << 20,
	}

	log.Printf("Shared Postgres ready with tables %v", tables)
	return nil
}
