//go:build integration
// +build integration

package tests

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	dbadapter "github.com/sabique2003/Tasklite/internal/adapter/db"
	"github.com/sabique2003/Tasklite/internal/config"
)

const tasksMigration = "20261018000000_create_tasks_table.up.sql"

// IntegrationSuiteBase owns a throwaway <database>_test schema on the MySQL
// server described by the usual MYSQL_* variables.
type IntegrationSuiteBase struct {
	suite.Suite

	adminDB *sqlx.DB
	DB      *sqlx.DB
	dbName  string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	cfg := config.LoadConfig()
	cfg.DbHost = envOrDefault("MYSQL_HOST", "127.0.0.1")
	cfg.DbUser = envOrDefault("MYSQL_ROOT_USER", "root")
	cfg.DbPassword = envOrDefault("MYSQL_ROOT_PASSWORD", "root")
	s.dbName = envOrDefault("MYSQL_TEST_DATABASE", cfg.DbName+"_test")

	admin := *cfg
	admin.DbName = ""
	adminDB, err := dbadapter.ConnectDB(&admin)
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	s.adminDB = adminDB

	_, err = s.adminDB.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", s.dbName))
	s.Require().NoError(err)

	cfg.DbName = s.dbName
	s.DB, err = dbadapter.ConnectDB(cfg)
	s.Require().NoError(err)
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
	if s.adminDB == nil {
		return
	}
	if strings.HasSuffix(s.dbName, "_test") {
		_, err := s.adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.dbName))
		s.Require().NoError(err)
	}
	s.Require().NoError(s.adminDB.Close())
}

// ResetDatabase recreates the tasks table from the shipped migration.
func (s *IntegrationSuiteBase) ResetDatabase() {
	t := s.T()
	t.Helper()

	_, err := s.DB.Exec("DROP TABLE IF EXISTS tasks")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(projectRoot(t), "db", "migrations", tasksMigration))
	require.NoError(t, err)
	_, err = s.DB.Exec(string(content))
	require.NoError(t, err)
}

// seedTask inserts a row directly so store reads can be checked without
// going through POST.
func (s *IntegrationSuiteBase) seedTask(id, title, priority, dueDate, status string) {
	_, err := s.DB.Exec(
		"INSERT INTO tasks (id, title, description, priority, due_date, status) VALUES (?, ?, NULL, ?, ?, ?)",
		id, title, priority, dueDate, status,
	)
	s.Require().NoError(err)
}

func projectRoot(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", ".."))
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
