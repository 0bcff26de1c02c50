package integration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Tehl/bank-api/internal/sqlite"
)

type TestSuite struct {
	DB       *sql.DB
	Client   *sqlite.Client
	teardown func()
}

func NewTestSuite(t *testing.T) *TestSuite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test_bank.db")

	config := sqlite.Config{
		DatabasePath: dbPath,
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		BusyTimeout:  30 * time.Second,
		EnableWAL:    true,
	}

	client, err := sqlite.NewClient(config)
	require.NoError(t, err, "failed to create test client")

	suite := &TestSuite{
		DB:     client.DB(),
		Client: client,
		teardown: func() {
			client.Close()
		},
	}

	return suite
}

func (s *TestSuite) Teardown() {
	s.teardown()
}

func (s *TestSuite) CountUsers(t *testing.T) int {
	t.Helper()

	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
	require.NoError(t, err, "failed to count users")

	return count
}

func (s *TestSuite) CountAccounts(t *testing.T) int {
	t.Helper()

	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM bank_accounts").Scan(&count)
	require.NoError(t, err, "failed to count accounts")

	return count
}
