package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"todo-app/internal/errors"
	"todo-app/internal/repository/sqlite"
)

func TestCreateRepository(t *testing.T) {
	// Nested directory that does not exist yet
	tmpDir := filepath.Join(t.TempDir(), "nested", "data")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TODO_DB_DIR", tmpDir)

	// Load configuration
	loader := NewLoader().WithEnvFile("")
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	// Test repository creation
	repo, err := CreateRepository(cfg)
	if err != nil {
		t.Fatalf("CreateRepository() error = %v", err)
	}
	defer repo.Close()

	if _, err := os.Stat(filepath.Join(tmpDir, "tasks.db")); err != nil {
		t.Errorf("expected database file to exist: %v", err)
	}

	// Test that we can use the repository
	err = repo.CreateTask(context.Background(), &sqlite.Task{Name: "Test Task"})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	tasks, err := repo.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("ListTasks() returned %d tasks, expected 1", len(tasks))
	}
}

func TestCreateRepository_UnwritableDirectory(t *testing.T) {
	// A regular file where the directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	cfg.Database.Dir = filepath.Join(blocker, "data")

	_, err := CreateRepository(cfg)
	if err == nil {
		t.Fatal("CreateRepository() expected error, got nil")
	}
	if !errors.IsErrorType(err, errors.ErrorTypeStorageUnavailable) {
		t.Errorf("expected storage unavailable error, got %v", err)
	}
}

func TestCreateRepository_CGODriverOption(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Driver = DriverCGO

	opts := cfg.StoreOptions()
	if opts.Driver != sqlite.DriverCGO {
		t.Errorf("StoreOptions().Driver = %q, expected %q", opts.Driver, sqlite.DriverCGO)
	}
	if opts.QueryTimeout != cfg.Database.QueryTimeout || opts.WriteTimeout != cfg.Database.WriteTimeout {
		t.Errorf("StoreOptions() timeouts = %v/%v, expected %v/%v", opts.QueryTimeout, opts.WriteTimeout,
			cfg.Database.QueryTimeout, cfg.Database.WriteTimeout)
	}
}

func TestCreateTestRepository(t *testing.T) {
	repo, err := CreateTestRepository()
	if err != nil {
		t.Fatalf("CreateTestRepository() error = %v", err)
	}
	defer repo.Close()

	// Test that we can use the repository
	err = repo.CreateTask(context.Background(), &sqlite.Task{Name: "Test Task"})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	tasks, err := repo.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("ListTasks() returned %d tasks, expected 1", len(tasks))
	}
}
