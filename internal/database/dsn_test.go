package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMySQLDSN(t *testing.T) {
	dsn, err := mysqlDSN(Config{
		User:     "svc",
		Password: "hunter2",
		Host:     "db.internal",
		Name:     "ews",
		Options:  map[string]string{"tls": "skip-verify"},
	})
	require.NoError(t, err)
	require.Contains(t, dsn, "svc:hunter2@tcp(db.internal:3306)/ews?")
	require.Contains(t, dsn, "parseTime=true")
	require.Contains(t, dsn, "loc=Local")
	require.Contains(t, dsn, "charset=utf8mb4")
	require.Contains(t, dsn, "tls=skip-verify")
}

func TestMySQLDSNOverrideAndValidation(t *testing.T) {
	dsn, err := mysqlDSN(Config{DSN: "raw-dsn"})
	require.NoError(t, err)
	require.Equal(t, "raw-dsn", dsn)

	_, err = mysqlDSN(Config{User: "svc"})
	require.Error(t, err, "database name is required")

	_, err = mysqlDSN(Config{Name: "ews"})
	require.Error(t, err, "user is required")
}

func TestPostgresDSN(t *testing.T) {
	dsn, err := buildPostgresDSN(Config{
		User:     "svc",
		Password: "hunter2",
		Host:     "db.internal",
		Port:     5433,
		Name:     "ews",
	})
	require.NoError(t, err)
	require.Contains(t, dsn, "host=db.internal")
	require.Contains(t, dsn, "port=5433")
	require.Contains(t, dsn, "dbname=ews")
	require.Contains(t, dsn, "sslmode=disable")

	_, err = buildPostgresDSN(Config{User: "svc"})
	require.Error(t, err)
}
