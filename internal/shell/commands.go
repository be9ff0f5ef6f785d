package shell

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"todo-app/internal/api"
	"todo-app/internal/domain"
)

// tasksLoadedMsg carries a fresh task list back to the model.
type tasksLoadedMsg struct {
	tasks []*domain.Task
	err   error
}

// taskAddedMsg reports the outcome of an add.
type taskAddedMsg struct {
	task *domain.Task
	err  error
}

// actionDoneMsg reports the outcome of a remove or complete.
type actionDoneMsg struct {
	status string
	err    error
}

func loadTasks(ctx context.Context, a api.API) tea.Cmd {
	return func() tea.Msg {
		tasks, err := a.ListTasks(ctx)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func addTask(ctx context.Context, a api.API, name string) tea.Cmd {
	return func() tea.Msg {
		task, err := a.AddTask(ctx, name)
		return taskAddedMsg{task: task, err: err}
	}
}

func removeTask(ctx context.Context, a api.API, task *domain.Task) tea.Cmd {
	return func() tea.Msg {
		if err := a.RemoveTaskByID(ctx, task.ID); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Removed task: " + task.Name}
	}
}

func completeTask(ctx context.Context, a api.API, task *domain.Task) tea.Cmd {
	return func() tea.Msg {
		if err := a.CompleteTaskByID(ctx, task.ID); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Completed task: " + task.Name}
	}
}
