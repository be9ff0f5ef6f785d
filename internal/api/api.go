package api

import (
	"context"

	"todo-app/internal/config"
	"todo-app/internal/domain"
	"todo-app/internal/errors"
	"todo-app/internal/logging"
	"todo-app/internal/repository/sqlite"
	"todo-app/internal/validation"
)

// API defines the task operations used by the shell and the CLI.
type API interface {
	// AddTask validates and trims name, then stores it as a new open task.
	AddTask(ctx context.Context, name string) (*domain.Task, error)
	// ListTasks returns every task in insertion order.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// RemoveTask deletes every task named exactly name. No match is not an error.
	RemoveTask(ctx context.Context, name string) error
	// CompleteTask marks every task named exactly name as complete. No match is not an error.
	CompleteTask(ctx context.Context, name string) error

	// RemoveTaskByID deletes a single task.
	RemoveTaskByID(ctx context.Context, id int64) error
	// CompleteTaskByID marks a single task complete.
	CompleteTaskByID(ctx context.Context, id int64) error
}

type apiImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// New creates a new API instance with default validation limits.
func New(repo sqlite.Repository) API {
	return &apiImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

// NewWithConfig creates a new API instance using the configured validation limits.
func NewWithConfig(repo sqlite.Repository, cfg *config.Config) API {
	return &apiImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
	}
}

func (a *apiImpl) AddTask(ctx context.Context, name string) (*domain.Task, error) {
	cleanedName, err := a.taskValidator.GetValidTaskName(name)
	if err != nil {
		return nil, errors.NewValidationError("invalid task name", err)
	}

	dbTask := a.mapper.Task.ToDatabase(domain.NewTask(cleanedName))
	if err := a.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	domainTask := a.mapper.Task.FromDatabase(dbTask)
	return &domainTask, nil
}

func (a *apiImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := a.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return a.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

func (a *apiImpl) RemoveTask(ctx context.Context, name string) error {
	if err := a.taskValidator.ValidateTaskLookupName(name); err != nil {
		return errors.NewValidationError("invalid task name", err)
	}
	logging.Debugf("removing tasks named %q\n", name)
	return a.repo.DeleteTasksByName(ctx, name)
}

func (a *apiImpl) CompleteTask(ctx context.Context, name string) error {
	if err := a.taskValidator.ValidateTaskLookupName(name); err != nil {
		return errors.NewValidationError("invalid task name", err)
	}
	logging.Debugf("completing tasks named %q\n", name)
	return a.repo.CompleteTasksByName(ctx, name)
}

func (a *apiImpl) RemoveTaskByID(ctx context.Context, id int64) error {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return errors.NewValidationError("invalid task ID", err)
	}
	return a.repo.DeleteTask(ctx, id)
}

func (a *apiImpl) CompleteTaskByID(ctx context.Context, id int64) error {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return errors.NewValidationError("invalid task ID", err)
	}
	return a.repo.CompleteTask(ctx, id)
}
