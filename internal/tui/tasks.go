package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ViditGupta0401/todo-with-backend-sub000/internal/tracker"
)

// tasksModel renders and mutates the live task list. All state lives in the
// tracker; this model only keeps the cursor and form plumbing.
type tasksModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	cursor int

	formActive bool
	form       *huh.Form
	formType   string // "new", "edit"

	formText      *string
	formPriority  *string
	formRepeating *bool

	editingID string
}

func newTasksModel(tr *tracker.Tracker) tasksModel {
	text, priority := "", tracker.PriorityMedium
	repeating := false
	return tasksModel{
		tracker:       tr,
		formText:      &text,
		formPriority:  &priority,
		formRepeating: &repeating,
	}
}

func (t *tasksModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t *tasksModel) clampCursor() {
	if n := len(t.tracker.Tasks()); t.cursor >= n {
		t.cursor = max(0, n-1)
	}
}

func (t tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if t.formActive && t.form != nil {
		return t.updateForm(msg)
	}

	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	tasks := t.tracker.Tasks()

	switch {
	case key.Matches(msgKey, keys.Up):
		if t.cursor > 0 {
			t.cursor--
		}
	case key.Matches(msgKey, keys.Down):
		if t.cursor < len(tasks)-1 {
			t.cursor++
		}
	case key.Matches(msgKey, keys.MoveUp):
		if t.cursor > 0 {
			if err := t.tracker.Move(t.cursor, t.cursor-1); err != nil {
				return t, errorCmd(err)
			}
			t.cursor--
		}
	case key.Matches(msgKey, keys.MoveDown):
		if t.cursor < len(tasks)-1 {
			if err := t.tracker.Move(t.cursor, t.cursor+1); err != nil {
				return t, errorCmd(err)
			}
			t.cursor++
		}
	case key.Matches(msgKey, keys.Toggle), key.Matches(msgKey, keys.Enter):
		if t.cursor < len(tasks) {
			if err := t.tracker.Toggle(tasks[t.cursor].ID, time.Now()); err != nil {
				return t, errorCmd(err)
			}
		}
	case key.Matches(msgKey, keys.Delete):
		if t.cursor < len(tasks) {
			if err := t.tracker.Delete(tasks[t.cursor].ID, time.Now()); err != nil {
				return t, errorCmd(err)
			}
			t.clampCursor()
		}
	case key.Matches(msgKey, keys.New):
		return t.showNewForm()
	case key.Matches(msgKey, keys.Edit):
		if t.cursor < len(tasks) {
			return t.showEditForm(tasks[t.cursor].ID, tasks[t.cursor].Text)
		}
	}
	return t, nil
}

func (t tasksModel) showNewForm() (tasksModel, tea.Cmd) {
	*t.formText = ""
	*t.formPriority = tracker.PriorityMedium
	*t.formRepeating = false
	t.formType = "new"

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Task").Value(t.formText),
			huh.NewSelect[string]().Title("Priority").
				Options(
					huh.NewOption("High", tracker.PriorityHigh),
					huh.NewOption("Medium", tracker.PriorityMedium),
					huh.NewOption("Low", tracker.PriorityLow),
				).Value(t.formPriority),
			huh.NewConfirm().Title("Repeats daily?").Value(t.formRepeating),
		),
	).WithShowHelp(true).WithShowErrors(true)

	t.formActive = true
	return t, t.form.Init()
}

func (t tasksModel) showEditForm(id, text string) (tasksModel, tea.Cmd) {
	*t.formText = text
	t.formType = "edit"
	t.editingID = id

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Task").Value(t.formText),
		),
	).WithShowHelp(true).WithShowErrors(true)

	t.formActive = true
	return t, t.form.Init()
}

func (t tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			t.formActive = false
			t.form = nil
			return t, nil
		}
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	if t.form.State == huh.StateCompleted {
		t.formActive = false
		switch t.formType {
		case "new":
			if err := t.tracker.Add(*t.formText, *t.formPriority, *t.formRepeating, time.Now()); err != nil {
				return t, errorCmd(err)
			}
			t.cursor = 0
		case "edit":
			if err := t.tracker.UpdateText(t.editingID, *t.formText); err != nil {
				return t, errorCmd(err)
			}
		}
		return t, nil
	}

	return t, cmd
}

func (t tasksModel) view() string {
	w := t.width - 4

	if t.formActive && t.form != nil {
		title := titleStyle.Render("New Task")
		if t.formType == "edit" {
			title = titleStyle.Render("Edit Task")
		}
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", t.form.View()),
		)
	}

	tasks := t.tracker.Tasks()
	rec := t.tracker.TodayRecord()

	header := fmt.Sprintf("%s  %s",
		titleStyle.Render("Tasks · "+t.tracker.Today()),
		mutedStyle.Render(fmt.Sprintf("%d done of %d", rec.CompletedTasks, rec.TotalTasks)),
	)

	if len(tasks) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			mutedStyle.Render("No tasks. Press n to add one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, header)
	rows = append(rows, "")

	for i, task := range tasks {
		cursor := "  "
		style := normalItemStyle
		if i == t.cursor {
			cursor = "> "
			style = selectedItemStyle
		}

		check := "☐"
		text := style.Render(task.Text)
		if task.Completed {
			check = successStyle.Render("☑")
			text = doneStyle.Render(task.Text)
			if i == t.cursor {
				text = selectedItemStyle.Strikethrough(true).Render(task.Text)
			}
		}

		repeat := " "
		if task.IsRepeating {
			repeat = highlightStyle.Render("↻")
		}

		rows = append(rows, fmt.Sprintf("%s%s %s %s %s", cursor, check, priorityDot(task.Priority), repeat, text))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  space: toggle  n: new  e: edit  d: delete  J/K: reorder"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
