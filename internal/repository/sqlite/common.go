package sqlite

import (
	"context"
	"database/sql"

	"todo-app/internal/errors"
)

// HandleReadError converts a failed query into a structured storage read error
func HandleReadError(operation string, err error) error {
	return errors.NewStorageReadError(operation, err)
}

// HandleWriteError converts a failed statement into a structured storage write error
func HandleWriteError(operation string, err error) error {
	return errors.NewStorageWriteError(operation, err)
}

// ValidateRowsAffected checks if a database operation affected at least one row
func ValidateRowsAffected(result sql.Result, entityType string, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return HandleWriteError("get rows affected", err)
	}
	if rows == 0 {
		return errors.NewNotFoundError(entityType, id)
	}
	return nil
}

// ExecuteWithLastInsertID executes a query and returns the last insert ID
func ExecuteWithLastInsertID(ctx context.Context, db *sql.DB, operation string, query string, args ...interface{}) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, HandleWriteError(operation, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, HandleWriteError("get last insert ID", err)
	}

	return id, nil
}

// ExecuteStatement executes a statement and returns how many rows it touched.
// Touching zero rows is not an error.
func ExecuteStatement(ctx context.Context, db *sql.DB, operation string, query string, args ...interface{}) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, HandleWriteError(operation, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, HandleWriteError("get rows affected", err)
	}

	return rows, nil
}

// ExecuteWithRowsAffected executes a query and validates that rows were affected
func ExecuteWithRowsAffected(ctx context.Context, db *sql.DB, operation string, query string, entityType string, id string, args ...interface{}) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return HandleWriteError(operation, err)
	}

	return ValidateRowsAffected(result, entityType, id)
}

// QueryMultiple executes a query that returns multiple rows and scans them
func QueryMultiple[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Rows) ([]*T, error), entityType string, args ...interface{}) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandleReadError("query "+entityType, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, HandleReadError("scan "+entityType, err)
	}

	return results, nil
}
