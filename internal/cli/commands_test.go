package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "todo-app/internal/errors"
)

func TestAddCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("joins arguments into one name", func(t *testing.T) {
		app, out := setupTestApp(t)

		err := NewAddCommand(app).Execute(ctx, []string{"Multi", "Word", "Task"})
		require.NoError(t, err)
		assert.Equal(t, "Added task: Multi Word Task\n", out.String())

		tasks, err := app.api.ListTasks(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Multi Word Task", tasks[0].Name)
		assert.False(t, tasks[0].Completed)
	})

	t.Run("prints the trimmed name", func(t *testing.T) {
		app, out := setupTestApp(t)

		require.NoError(t, NewAddCommand(app).Execute(ctx, []string{"  Buy milk  "}))
		assert.Equal(t, "Added task: Buy milk\n", out.String())
	})

	t.Run("requires a task name", func(t *testing.T) {
		app, _ := setupTestApp(t)

		err := NewAddCommand(app).Execute(ctx, nil)
		require.Error(t, err)
		assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))
	})

	t.Run("whitespace-only name never reaches the store", func(t *testing.T) {
		app, out := setupTestApp(t)

		err := NewAddCommand(app).Execute(ctx, []string{"   "})
		require.Error(t, err)
		assert.Equal(t, "failed to add task: Task should have a name", err.Error())
		assert.Empty(t, out.String())

		tasks, err := app.api.ListTasks(ctx)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("long names and tabs are stored as given", func(t *testing.T) {
		app, _ := setupTestApp(t)
		long := strings.Repeat("a", 300)

		require.NoError(t, NewAddCommand(app).Execute(ctx, []string{long}))
		require.NoError(t, NewAddCommand(app).Execute(ctx, []string{"Buy\tmilk"}))

		tasks, err := app.api.ListTasks(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, long, tasks[0].Name)
		assert.Equal(t, "Buy\tmilk", tasks[1].Name)
	})

	t.Run("store failure", func(t *testing.T) {
		app, _ := setupTestApp(t)
		app.api = &failingAPI{err: apperrors.NewStorageWriteError("create task", errors.New("disk full"))}

		err := NewAddCommand(app).Execute(ctx, []string{"x"})
		assert.EqualError(t, err, "failed to add task: Could not save changes. Please try again.")
		assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeStorageWrite))
	})
}

func TestListCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		app, out := setupTestApp(t)

		require.NoError(t, NewListCommand(app).Execute(ctx, nil))
		assert.Equal(t, "No tasks!\n", out.String())
	})

	t.Run("numbers tasks and marks status", func(t *testing.T) {
		app, out := setupTestApp(t)
		for _, name := range []string{"Buy milk", "Write report", "Call mum"} {
			_, err := app.api.AddTask(ctx, name)
			require.NoError(t, err)
		}
		require.NoError(t, app.api.CompleteTask(ctx, "Write report"))

		require.NoError(t, NewListCommand(app).Execute(ctx, nil))
		assert.Equal(t, "1. [ ] Buy milk\n2. [x] Write report\n3. [ ] Call mum\n", out.String())
	})

	t.Run("uses configured markers", func(t *testing.T) {
		app, out := setupTestApp(t)
		app.config.Display.CompletedMarker = "DONE"
		app.config.Display.OpenMarker = "TODO"
		_, err := app.api.AddTask(ctx, "a")
		require.NoError(t, err)
		_, err = app.api.AddTask(ctx, "b")
		require.NoError(t, err)
		require.NoError(t, app.api.CompleteTask(ctx, "b"))

		require.NoError(t, NewListCommand(app).Execute(ctx, nil))
		assert.Equal(t, "1. TODO a\n2. DONE b\n", out.String())
	})

	t.Run("store failure", func(t *testing.T) {
		app, out := setupTestApp(t)
		app.api = &failingAPI{err: apperrors.NewStorageReadError("list tasks", errors.New("malformed"))}

		err := NewListCommand(app).Execute(ctx, nil)
		assert.EqualError(t, err, "failed to list tasks: Could not read tasks. Please try again.")
		assert.Empty(t, out.String())
	})
}

func TestRemoveCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("removes every task with the name", func(t *testing.T) {
		app, out := setupTestApp(t)
		for _, name := range []string{"dup", "keep", "dup"} {
			_, err := app.api.AddTask(ctx, name)
			require.NoError(t, err)
		}

		require.NoError(t, NewRemoveCommand(app).Execute(ctx, []string{"dup"}))
		assert.Equal(t, "Removed task: dup\n", out.String())

		tasks, err := app.api.ListTasks(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "keep", tasks[0].Name)
	})

	t.Run("missing name is not an error", func(t *testing.T) {
		app, out := setupTestApp(t)

		require.NoError(t, NewRemoveCommand(app).Execute(ctx, []string{"Nope"}))
		assert.Equal(t, "Removed task: Nope\n", out.String())
	})

	t.Run("requires a task name", func(t *testing.T) {
		app, _ := setupTestApp(t)
		assert.Error(t, NewRemoveCommand(app).Execute(ctx, nil))
	})

	t.Run("store failure", func(t *testing.T) {
		app, _ := setupTestApp(t)
		app.api = &failingAPI{err: apperrors.NewStorageWriteError("delete", errors.New("locked"))}

		err := NewRemoveCommand(app).Execute(ctx, []string{"x"})
		assert.True(t, strings.HasPrefix(err.Error(), "failed to remove task:"))
	})
}

func TestCompleteCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("marks every task with the name", func(t *testing.T) {
		app, out := setupTestApp(t)
		for _, name := range []string{"dup", "other", "dup"} {
			_, err := app.api.AddTask(ctx, name)
			require.NoError(t, err)
		}

		require.NoError(t, NewCompleteCommand(app).Execute(ctx, []string{"dup"}))
		assert.Equal(t, "Completed task: dup\n", out.String())

		tasks, err := app.api.ListTasks(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.True(t, tasks[0].Completed)
		assert.False(t, tasks[1].Completed)
		assert.True(t, tasks[2].Completed)
	})

	t.Run("completing twice is the same as once", func(t *testing.T) {
		app, _ := setupTestApp(t)
		_, err := app.api.AddTask(ctx, "Buy milk")
		require.NoError(t, err)

		cmd := NewCompleteCommand(app)
		require.NoError(t, cmd.Execute(ctx, []string{"Buy", "milk"}))
		require.NoError(t, cmd.Execute(ctx, []string{"Buy", "milk"}))

		tasks, err := app.api.ListTasks(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.True(t, tasks[0].Completed)
	})

	t.Run("matching is case-sensitive", func(t *testing.T) {
		app, _ := setupTestApp(t)
		_, err := app.api.AddTask(ctx, "Buy milk")
		require.NoError(t, err)

		require.NoError(t, NewCompleteCommand(app).Execute(ctx, []string{"buy milk"}))

		tasks, err := app.api.ListTasks(ctx)
		require.NoError(t, err)
		assert.False(t, tasks[0].Completed)
	})

	t.Run("requires a task name", func(t *testing.T) {
		app, _ := setupTestApp(t)
		assert.Error(t, NewCompleteCommand(app).Execute(ctx, nil))
	})
}
