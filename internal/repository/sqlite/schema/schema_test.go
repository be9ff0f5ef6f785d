package schema

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "schema.db")
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func columnNames(t *testing.T, db *sql.DB) map[string]string {
	rows, err := db.Query("PRAGMA table_info(tasks)")
	require.NoError(t, err)
	defer rows.Close()

	columns := make(map[string]string)
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		require.NoError(t, rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk))
		columns[name] = colType
	}
	require.NoError(t, rows.Err())
	return columns
}

func TestLoad(t *testing.T) {
	statements, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, statements)
	assert.Equal(t, "001_tasks.sql", statements[0].Name)
	assert.Contains(t, statements[0].SQL, "CREATE TABLE IF NOT EXISTS tasks")
}

func TestApply_CreatesTasksTable(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Apply(context.Background(), db))

	columns := columnNames(t, db)
	assert.Equal(t, map[string]string{
		"id":     "INTEGER",
		"name":   "TEXT",
		"status": "INTEGER",
	}, columns)
}

func TestApply_IsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, Apply(ctx, db))
	_, err := db.Exec("INSERT INTO tasks (name) VALUES ('Buy milk')")
	require.NoError(t, err)

	require.NoError(t, Apply(ctx, db))

	var count, status int
	require.NoError(t, db.QueryRow("SELECT COUNT(*), MAX(status) FROM tasks").Scan(&count, &status))
	assert.Equal(t, 1, count, "re-applying must keep existing rows")
	assert.Equal(t, 0, status, "status defaults to open")
}

func TestApply_NoBookkeepingTables(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Apply(context.Background(), db))

	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type = 'table'")
	require.NoError(t, err)
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		tables = append(tables, name)
	}
	assert.Equal(t, []string{"tasks"}, tables)
}
