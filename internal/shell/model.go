package shell

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"todo-app/internal/api"
	"todo-app/internal/domain"
	"todo-app/internal/errors"
	"todo-app/internal/logging"
)

type screen int

const (
	screenMenu screen = iota
	screenAdd
	screenView
	screenRemove
	screenComplete
)

// Main menu entries, numbered from 1 on screen.
var menuItems = []string{
	"Add a task",
	"View tasks",
	"Remove tasks",
	"Mark as complete",
	"Exit",
}

const (
	choiceAdd = iota + 1
	choiceView
	choiceRemove
	choiceComplete
	choiceExit
)

const (
	welcomeText     = "Welcome to the Todo App!"
	promptText      = "Enter task name:"
	tasksHeader     = "Todo tasks:"
	noTasksText     = "No tasks!"
	continueText    = "Continue"
	invalidChoice   = "Invalid choice!"
	indexOutOfRange = "Index out of range."
)

// Model is the bubbletea model for the interactive shell.
type Model struct {
	ctx  context.Context
	api  api.API
	opts Options

	screen  screen
	cursor  int
	input   []rune
	tasks   []*domain.Task
	loading bool

	status string
	errMsg string

	// fatal ends the program; Run returns it
	fatal error
}

// New creates a shell model starting at the main menu.
func New(ctx context.Context, a api.API, opts Options) Model {
	return Model{
		ctx:    ctx,
		api:    a,
		opts:   opts,
		screen: screenMenu,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.fatal
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		// Store calls run one at a time.
		if m.loading {
			return m, nil
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenAdd:
			return m.updateAdd(msg)
		default:
			return m.updateSelector(msg)
		}

	case tasksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.tasks = msg.tasks
		m.cursor = 0
		return m, nil

	case taskAddedMsg:
		m.loading = false
		if msg.err != nil {
			if errors.IsErrorType(msg.err, errors.ErrorTypeValidation) {
				// Stay on the prompt so the user can retry.
				m.errMsg = errors.GetUserMessage(msg.err)
				return m, nil
			}
			return m.failed(msg.err)
		}
		m.input = nil
		return m.toMenu("Added task: "+msg.task.Name, ""), nil

	case actionDoneMsg:
		m.loading = false
		if msg.err != nil {
			return m.failed(msg.err)
		}
		return m.toMenu(msg.status, ""), nil
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		return m.choose(m.cursor + 1)
	default:
		if d, ok := digit(key); ok {
			return m.choose(d)
		}
	}
	return m, nil
}

func (m Model) choose(choice int) (tea.Model, tea.Cmd) {
	m.status, m.errMsg = "", ""
	switch choice {
	case choiceAdd:
		m.screen = screenAdd
		m.input = nil
		return m, nil
	case choiceView:
		return m.enterSelector(screenView)
	case choiceRemove:
		return m.enterSelector(screenRemove)
	case choiceComplete:
		return m.enterSelector(screenComplete)
	case choiceExit:
		return m, tea.Quit
	default:
		m.errMsg = invalidChoice
		return m, nil
	}
}

func (m Model) enterSelector(s screen) (tea.Model, tea.Cmd) {
	m.screen = s
	m.tasks = nil
	m.cursor = 0
	m.loading = true
	return m, loadTasks(m.ctx, m.api)
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.input = nil
		return m.toMenu("", ""), nil
	case tea.KeyEnter:
		m.errMsg = ""
		m.loading = true
		return m, addTask(m.ctx, m.api, string(m.input))
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	case tea.KeySpace:
		m.input = append(m.input, ' ')
		return m, nil
	case tea.KeyRunes:
		m.input = append(m.input, msg.Runes...)
		return m, nil
	}
	return m, nil
}

func (m Model) updateSelector(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := len(m.tasks) + 1
	switch key := msg.String(); key {
	case "esc", "q":
		return m.toMenu("", ""), nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < options-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		return m.pick(m.cursor)
	default:
		if d, ok := digit(key); ok {
			if d >= options {
				m.errMsg = indexOutOfRange
				return m, nil
			}
			return m.pick(d)
		}
	}
	return m, nil
}

// pick acts on option i of the selector. Option 0 is Continue.
func (m Model) pick(i int) (tea.Model, tea.Cmd) {
	if i == 0 || m.screen == screenView {
		return m.toMenu("", ""), nil
	}

	task := m.tasks[i-1]
	m.errMsg = ""
	m.loading = true
	logging.Debugf("shell: selected task %d %q\n", task.ID, task.Name)
	if m.screen == screenRemove {
		return m, removeTask(m.ctx, m.api, task)
	}
	return m, completeTask(m.ctx, m.api, task)
}

func (m Model) toMenu(status, errMsg string) Model {
	m.screen = screenMenu
	m.cursor = 0
	m.tasks = nil
	m.status = status
	m.errMsg = errMsg
	return m
}

// failed reports a store error on the main menu. Unavailable storage ends the program.
func (m Model) failed(err error) (tea.Model, tea.Cmd) {
	logging.Debugf("shell: %v\n", err)
	if errors.IsFatal(err) {
		m.fatal = err
		return m, tea.Quit
	}
	return m.toMenu("", errors.GetUserMessage(err)), nil
}

func digit(key string) (int, bool) {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '0'), true
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(welcomeText))
	b.WriteString("\n\n")

	switch m.screen {
	case screenMenu:
		m.renderMenu(&b)
	case screenAdd:
		m.renderAdd(&b)
	default:
		m.renderSelector(&b)
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help()))
	return b.String()
}

func (m Model) renderMenu(b *strings.Builder) {
	for i, item := range menuItems {
		b.WriteString(m.line(i, fmt.Sprintf("%d. %s", i+1, item)))
	}
}

func (m Model) renderAdd(b *strings.Builder) {
	b.WriteString(headerStyle.Render(promptText))
	b.WriteString("\n> ")
	b.WriteString(string(m.input))
	if !m.loading {
		b.WriteString(cursorStyle.Render("_"))
	}
	b.WriteString("\n")
}

func (m Model) renderSelector(b *strings.Builder) {
	b.WriteString(headerStyle.Render(tasksHeader))
	b.WriteString("\n")

	if m.loading {
		b.WriteString("  Loading...\n")
		return
	}

	if len(m.tasks) == 0 {
		b.WriteString(emptyStyle.Render("  " + noTasksText))
		b.WriteString("\n")
	}

	b.WriteString(m.line(0, "0. "+continueText))
	for i, task := range m.tasks {
		label := task.Label(m.opts.Strikethrough)
		if task.Completed {
			label = completeStyle.Render(label)
		}
		b.WriteString(m.line(i+1, fmt.Sprintf("%d. %s", i+1, label)))
	}
}

func (m Model) line(i int, text string) string {
	if i == m.cursor {
		return cursorStyle.Render("> ") + text + "\n"
	}
	return "  " + text + "\n"
}

func (m Model) help() string {
	switch m.screen {
	case screenMenu:
		return "↑/↓: move • enter or 1-5: choose • q: quit"
	case screenAdd:
		return "enter: save • esc: cancel"
	case screenView:
		return "enter or digit: back • esc: back"
	case screenRemove:
		return "enter or digit: remove task • 0: continue • esc: back"
	default:
		return "enter or digit: mark complete • 0: continue • esc: back"
	}
}
