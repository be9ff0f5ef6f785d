package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"todo-app/internal/errors"
	"todo-app/internal/logging"
	"todo-app/internal/repository/sqlite/schema"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

const (
	// DriverModernc is the pure Go driver registered by modernc.org/sqlite
	DriverModernc = "sqlite"
	// DriverCGO is the cgo driver registered by github.com/mattn/go-sqlite3
	DriverCGO = "sqlite3"
)

// Options controls how the repository opens and talks to the database
type Options struct {
	Driver       string
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// DefaultOptions returns the options used by New
func DefaultOptions() Options {
	return Options{
		Driver:       DriverModernc,
		QueryTimeout: 10 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}

// Repository defines the interface for task persistence
type Repository interface {
	// Create operations
	CreateTask(ctx context.Context, task *Task) error

	// Read operations
	ListTasks(ctx context.Context) ([]*Task, error)

	// Update operations
	CompleteTasksByName(ctx context.Context, name string) error
	CompleteTask(ctx context.Context, id int64) error

	// Delete operations
	DeleteTasksByName(ctx context.Context, name string) error
	DeleteTask(ctx context.Context, id int64) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
}

// New creates a new SQLite repository instance with default options
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, DefaultOptions())
}

// NewWithOptions opens dbPath with the configured driver and applies the schema.
// Every failure is reported as a storage unavailable error.
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	if opts.Driver == "" {
		opts.Driver = DriverModernc
	}
	if opts.Driver != DriverModernc && opts.Driver != DriverCGO {
		return nil, errors.NewStorageUnavailableError("open database",
			fmt.Errorf("unsupported driver %q", opts.Driver))
	}

	db, err := sql.Open(opts.Driver, dbPath)
	if err != nil {
		return nil, errors.NewStorageUnavailableError("open database", err)
	}

	// One writer, one reader, never concurrent. A single connection also keeps
	// ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), opts.writeTimeout())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.NewStorageUnavailableError("connect database", err)
	}

	if err := schema.Apply(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewStorageUnavailableError("apply schema", err)
	}

	logging.Debugf("opened task store %s (driver %s)\n", dbPath, opts.Driver)
	return &SQLiteRepository{db: db, opts: opts}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask inserts a task row. Duplicate names are accepted.
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `INSERT INTO tasks (name, status) VALUES (?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, "create task", query, task.Name, task.Status)
	if err != nil {
		return err
	}
	task.ID = id
	logging.Debugf("created task %d %q\n", id, task.Name)
	return nil
}

// ListTasks retrieves all tasks in insertion order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `SELECT id, name, status FROM tasks ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// DeleteTasksByName deletes every task whose name matches exactly.
// No match is a no-op.
func (r *SQLiteRepository) DeleteTasksByName(ctx context.Context, name string) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `DELETE FROM tasks WHERE name = ?`
	n, err := ExecuteStatement(ctx, r.db, "delete tasks by name", query, name)
	if err != nil {
		return err
	}
	logging.Debugf("deleted %d task(s) named %q\n", n, name)
	return nil
}

// CompleteTasksByName marks every task whose name matches exactly as complete.
// No match is a no-op.
func (r *SQLiteRepository) CompleteTasksByName(ctx context.Context, name string) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `UPDATE tasks SET status = ? WHERE name = ?`
	n, err := ExecuteStatement(ctx, r.db, "complete tasks by name", query, StatusComplete, name)
	if err != nil {
		return err
	}
	logging.Debugf("completed %d task(s) named %q\n", n, name)
	return nil
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, "delete task", query, "task", fmt.Sprintf("%d", id), id)
}

// CompleteTask marks a task complete by ID. Completing a completed task
// still counts as a match.
func (r *SQLiteRepository) CompleteTask(ctx context.Context, id int64) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `UPDATE tasks SET status = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, "complete task", query, "task", fmt.Sprintf("%d", id), StatusComplete, id)
}

func (r *SQLiteRepository) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opts.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.opts.QueryTimeout)
}

func (r *SQLiteRepository) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opts.WriteTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.opts.WriteTimeout)
}

func (o Options) writeTimeout() time.Duration {
	if o.WriteTimeout <= 0 {
		return DefaultOptions().WriteTimeout
	}
	return o.WriteTimeout
}
