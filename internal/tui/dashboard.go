package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/ViditGupta0401/todo-with-backend-sub000/internal/store"
	"github.com/ViditGupta0401/todo-with-backend-sub000/internal/tracker"
)

// dashboardModel is the landing view: clock, today's progress, streaks, and
// the upcoming-events and quick-links widgets. Events and links share the kv
// store with the tracker but are otherwise independent of it.
type dashboardModel struct {
	store   *store.Store
	tracker *tracker.Tracker
	width   int
	height  int

	now    time.Time
	events []store.Event
	links  []store.Link
	cursor int // over events then links

	formActive bool
	form       *huh.Form
	formType   string // "event", "link"

	formTitle *string
	formDate  *string
	formURL   *string
}

func newDashboardModel(s *store.Store, tr *tracker.Tracker) dashboardModel {
	title, date, url := "", "", ""
	return dashboardModel{
		store:     s,
		tracker:   tr,
		now:       time.Now(),
		formTitle: &title,
		formDate:  &date,
		formURL:   &url,
	}
}

func (d dashboardModel) Init() tea.Cmd {
	return d.loadData()
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d dashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		events, _ := d.store.LoadEvents()
		links, _ := d.store.LoadLinks()
		sort.Slice(events, func(i, j int) bool { return events[i].Date < events[j].Date })
		return widgetsDataMsg{events: events, links: links}
	}
}

func (d dashboardModel) itemCount() int {
	return len(d.events) + len(d.links)
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if d.formActive && d.form != nil {
		return d.updateForm(msg)
	}

	switch msg := msg.(type) {
	case widgetsDataMsg:
		d.events = msg.events
		d.links = msg.links
		if d.cursor >= d.itemCount() {
			d.cursor = max(0, d.itemCount()-1)
		}
		return d, nil

	case tickMsg:
		d.now = time.Time(msg)
		return d, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if d.cursor > 0 {
				d.cursor--
			}
		case key.Matches(msg, keys.Down):
			if d.cursor < d.itemCount()-1 {
				d.cursor++
			}
		case key.Matches(msg, keys.New):
			return d.showEventForm()
		case key.Matches(msg, keys.NewLink):
			return d.showLinkForm()
		case key.Matches(msg, keys.Delete):
			return d.deleteSelected()
		}
	}
	return d, nil
}

func (d dashboardModel) deleteSelected() (dashboardModel, tea.Cmd) {
	if d.cursor < len(d.events) {
		e := d.events[d.cursor]
		d.events = append(d.events[:d.cursor], d.events[d.cursor+1:]...)
		if err := d.store.SaveEvents(d.events); err != nil {
			return d, errorCmd(err)
		}
		return d, noticeCmd("Removed event: " + e.Title)
	}
	i := d.cursor - len(d.events)
	if i < len(d.links) {
		l := d.links[i]
		d.links = append(d.links[:i], d.links[i+1:]...)
		if err := d.store.SaveLinks(d.links); err != nil {
			return d, errorCmd(err)
		}
		return d, noticeCmd("Removed link: " + l.Title)
	}
	return d, nil
}

func (d dashboardModel) showEventForm() (dashboardModel, tea.Cmd) {
	*d.formTitle = ""
	*d.formDate = time.Now().Format(tracker.DateLayout)
	d.formType = "event"

	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Event").Value(d.formTitle),
			huh.NewInput().Title("Date (YYYY-MM-DD)").Value(d.formDate).
				Validate(func(s string) error {
					_, err := time.Parse(tracker.DateLayout, strings.TrimSpace(s))
					return err
				}),
		),
	).WithShowHelp(true).WithShowErrors(true)

	d.formActive = true
	return d, d.form.Init()
}

func (d dashboardModel) showLinkForm() (dashboardModel, tea.Cmd) {
	*d.formTitle = ""
	*d.formURL = ""
	d.formType = "link"

	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(d.formTitle),
			huh.NewInput().Title("URL").Value(d.formURL),
		),
	).WithShowHelp(true).WithShowErrors(true)

	d.formActive = true
	return d, d.form.Init()
}

func (d dashboardModel) updateForm(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			d.formActive = false
			d.form = nil
			return d, nil
		}
	}

	form, cmd := d.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.form = f
	}

	if d.form.State == huh.StateCompleted {
		d.formActive = false
		switch d.formType {
		case "event":
			if strings.TrimSpace(*d.formTitle) != "" {
				d.events = append(d.events, store.Event{
					ID:    uuid.NewString(),
					Title: strings.TrimSpace(*d.formTitle),
					Date:  strings.TrimSpace(*d.formDate),
				})
				if err := d.store.SaveEvents(d.events); err != nil {
					return d, errorCmd(err)
				}
			}
		case "link":
			if strings.TrimSpace(*d.formTitle) != "" {
				d.links = append(d.links, store.Link{
					ID:    uuid.NewString(),
					Title: strings.TrimSpace(*d.formTitle),
					URL:   strings.TrimSpace(*d.formURL),
				})
				if err := d.store.SaveLinks(d.links); err != nil {
					return d, errorCmd(err)
				}
			}
		}
		return d, d.loadData()
	}

	return d, cmd
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	contentWidth := d.width - 4

	if d.formActive && d.form != nil {
		title := titleStyle.Render("New Event")
		if d.formType == "link" {
			title = titleStyle.Render("New Link")
		}
		return panelStyle.Width(contentWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", d.form.View()),
		)
	}

	clockPanel := d.renderClockPanel(contentWidth)
	todayPanel := d.renderTodayPanel(contentWidth)
	widgetPanel := d.renderWidgetPanel(contentWidth)

	return lipgloss.JoinVertical(lipgloss.Left, clockPanel, todayPanel, widgetPanel)
}

func (d dashboardModel) renderClockPanel(w int) string {
	timeStr := d.now.Format("15:04:05")
	dateStr := d.now.Format("Monday, Jan 02 2006")

	effective := d.tracker.Today()
	dayNote := mutedStyle.Render("tracking day " + effective)
	if effective != d.now.Format(tracker.DateLayout) {
		dayNote = warningStyle.Render("still tracking " + effective)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		clockStyle.Width(w-6).Render(timeStr),
		mutedStyle.Render(dateStr),
		dayNote,
	)
	return panelStyle.Width(w).Render(content)
}

func (d dashboardModel) renderTodayPanel(w int) string {
	rec := d.tracker.TodayRecord()
	current, longest := d.tracker.Streak()

	title := titleStyle.Render("Today")
	progress := fmt.Sprintf("%d / %d done", rec.CompletedTasks, rec.TotalTasks)
	if rec.TotalTasks == 0 {
		progress = "no tasks yet"
	}

	stats := fmt.Sprintf("  streak %s   longest %s   all-time %s",
		highlightStyle.Render(fmt.Sprintf("%d", current)),
		highlightStyle.Render(fmt.Sprintf("%d", longest)),
		highlightStyle.Render(fmt.Sprintf("%d%%", d.tracker.Rate())),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("%s  %s", title, successStyle.Render(progress)),
		stats,
	)
	return panelStyle.Width(w).Render(content)
}

func (d dashboardModel) renderWidgetPanel(w int) string {
	var rows []string
	rows = append(rows, titleStyle.Render("Upcoming"))

	today := d.now.Format(tracker.DateLayout)
	shown := 0
	for i, e := range d.events {
		cursor := "  "
		style := normalItemStyle
		if i == d.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		label := e.Date
		if e.Date < today {
			label = errorStyle.Render(e.Date)
		} else if e.Date == today {
			label = warningStyle.Render("today")
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%-12s", cursor, e.Title))+"  "+label)
		shown++
	}
	if shown == 0 {
		rows = append(rows, mutedStyle.Render("  No events. Press n to add one."))
	}

	rows = append(rows, "")
	rows = append(rows, titleStyle.Render("Quick Links"))
	if len(d.links) == 0 {
		rows = append(rows, mutedStyle.Render("  No links. Press b to add one."))
	}
	for i, l := range d.links {
		idx := len(d.events) + i
		cursor := "  "
		style := normalItemStyle
		if idx == d.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+l.Title)+"  "+mutedStyle.Render(l.URL))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new event  b: new link  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
