// Package schema creates the task table on an opened database.
//
// Statements live in embedded *.sql files and are applied in file name order.
// Every statement must be idempotent (CREATE ... IF NOT EXISTS): there is no
// version bookkeeping table, so the files run on every open.
package schema

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.sql
var schemaFS embed.FS

// Statement is one embedded schema file
type Statement struct {
	Name string
	SQL  string
}

// Apply executes all schema statements against db
func Apply(ctx context.Context, db *sql.DB) error {
	statements, err := Load()
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt.SQL); err != nil {
			return fmt.Errorf("failed to apply schema %s: %w", stmt.Name, err)
		}
	}

	return nil
}

// Load returns the embedded schema statements sorted by file name
func Load() ([]Statement, error) {
	entries, err := schemaFS.ReadDir(".")
	if err != nil {
		return nil, err
	}

	var statements []Statement
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		data, err := schemaFS.ReadFile(entry.Name())
		if err != nil {
			return nil, err
		}

		statements = append(statements, Statement{
			Name: entry.Name(),
			SQL:  string(data),
		})
	}

	sort.Slice(statements, func(i, j int) bool {
		return statements[i].Name < statements[j].Name
	})

	return statements, nil
}
