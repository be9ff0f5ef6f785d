package config

import (
	"os"

	"todo-app/internal/errors"
	"todo-app/internal/repository/sqlite"
)

// StoreOptions converts the database section into repository options
func (c *Config) StoreOptions() sqlite.Options {
	return sqlite.Options{
		Driver:       c.Database.Driver,
		QueryTimeout: c.Database.QueryTimeout,
		WriteTimeout: c.Database.WriteTimeout,
	}
}

// CreateRepository creates the database directory if needed and opens the task store
func CreateRepository(config *Config) (*sqlite.SQLiteRepository, error) {
	dbPath := config.GetDatabasePath()

	if dbPath != ":memory:" {
		if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
			return nil, errors.NewStorageUnavailableError("create database directory", err)
		}
	}

	return sqlite.NewWithOptions(dbPath, config.StoreOptions())
}

// CreateTestRepository opens an in-memory store with the default settings
func CreateTestRepository() (*sqlite.SQLiteRepository, error) {
	cfg := NewConfig()
	cfg.Database.Filename = ":memory:"
	return CreateRepository(cfg)
}
