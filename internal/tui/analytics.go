package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ViditGupta0401/todo-with-backend-sub000/internal/tracker"
)

const heatmapWeeks = 16

// analyticsModel is the read-only derivation view: completion heatmap,
// last-week barchart, streaks and the all-time rate, plus the remark editor
// for a selected day.
type analyticsModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	// selected is a day offset back from today; 0 = today.
	selected int

	chart barchart.Model

	formActive bool
	form       *huh.Form
	formRemark *string
}

func newAnalyticsModel(tr *tracker.Tracker) analyticsModel {
	remark := ""
	return analyticsModel{
		tracker:    tr,
		chart:      barchart.New(60, 10),
		formRemark: &remark,
	}
}

func (a *analyticsModel) setSize(w, h int) {
	a.width = w
	a.height = h
	a.rebuild()
}

// selectedDate maps the offset to an effective date string.
func (a analyticsModel) selectedDate() string {
	date := a.tracker.Today()
	for i := 0; i < a.selected; i++ {
		date = tracker.PrevDate(date)
	}
	return date
}

// rebuild regenerates the barchart for the 7 days ending today.
func (a *analyticsModel) rebuild() {
	chartWidth := a.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if a.height > 30 {
		chartHeight = 14
	}

	a.chart = barchart.New(chartWidth, chartHeight)

	days := a.tracker.Days()
	today := a.tracker.Today()

	dates := make([]string, 7)
	dates[6] = today
	for i := 5; i >= 0; i-- {
		dates[i] = tracker.PrevDate(dates[i+1])
	}

	var bars []barchart.BarData
	for _, date := range dates {
		value := float64(tracker.HeatmapValue(days, date))
		label := date[5:] // MM-DD
		style := lipgloss.NewStyle().Foreground(colorSuccess)
		if value == 0 {
			style = lipgloss.NewStyle().Foreground(colorSubtle)
		}
		bars = append(bars, barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{
				{Name: date, Value: value, Style: style},
			},
		})
	}

	a.chart.PushAll(bars)
	a.chart.Draw()
}

func (a analyticsModel) update(msg tea.Msg) (analyticsModel, tea.Cmd) {
	if a.formActive && a.form != nil {
		return a.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			a.selected++
			return a, nil
		case key.Matches(msg, keys.Right):
			if a.selected > 0 {
				a.selected--
			}
			return a, nil
		case key.Matches(msg, keys.Remark):
			return a.showRemarkForm()
		}
	}
	return a, nil
}

func (a analyticsModel) showRemarkForm() (analyticsModel, tea.Cmd) {
	date := a.selectedDate()
	*a.formRemark = ""
	for _, d := range a.tracker.Days() {
		if d.Date == date {
			*a.formRemark = d.Remark
			break
		}
	}

	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Remark for " + date).Value(a.formRemark),
		),
	).WithShowHelp(true).WithShowErrors(true)

	a.formActive = true
	return a, a.form.Init()
}

func (a analyticsModel) updateForm(msg tea.Msg) (analyticsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			a.formActive = false
			a.form = nil
			return a, nil
		}
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		a.formActive = false
		if err := a.tracker.AttachRemark(a.selectedDate(), strings.TrimSpace(*a.formRemark)); err != nil {
			return a, errorCmd(err)
		}
		return a, noticeCmd("Remark saved for " + a.selectedDate())
	}

	return a, cmd
}

func (a analyticsModel) view() string {
	w := a.width - 4

	if a.formActive && a.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				titleStyle.Render("Day Remark"), "", a.form.View(),
			),
		)
	}

	current, longest := a.tracker.Streak()
	stats := fmt.Sprintf("current streak %s   longest %s   completion %s",
		highlightStyle.Render(fmt.Sprintf("%d", current)),
		highlightStyle.Render(fmt.Sprintf("%d", longest)),
		highlightStyle.Render(fmt.Sprintf("%d%%", a.tracker.Rate())),
	)

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Analytics"), "   ", mutedStyle.Render(stats),
	)

	heatmap := a.renderHeatmap()
	selected := a.renderSelectedDay()
	nav := mutedStyle.Render("  ←/→: select day  r: remark")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", heatmap, "", a.chart.View(), "", selected, "", nav,
		),
	)
}

// renderHeatmap draws a weeks×7 completion grid, most recent week in the
// rightmost column, today in the bottom-right region.
func (a analyticsModel) renderHeatmap() string {
	days := a.tracker.Days()
	today := a.tracker.Today()

	t, err := time.Parse(tracker.DateLayout, today)
	if err != nil {
		return ""
	}

	// End the grid on the Sunday of the current week.
	end := t
	for end.Weekday() != time.Sunday {
		end = end.AddDate(0, 0, 1)
	}
	start := end.AddDate(0, 0, -7*heatmapWeeks+1)

	rows := make([]string, 7)
	labels := []string{"Mon", "   ", "Wed", "   ", "Fri", "   ", "Sun"}
	for row := 0; row < 7; row++ {
		var cells []string
		cells = append(cells, mutedStyle.Render(labels[row]+" "))
		for week := 0; week < heatmapWeeks; week++ {
			day := start.AddDate(0, 0, week*7+row)
			date := day.Format(tracker.DateLayout)
			if date > today {
				cells = append(cells, " ")
				continue
			}
			cell := heatCell(tracker.HeatmapValue(days, date))
			if date == a.selectedDate() {
				cell = selectedItemStyle.Render("▣")
			}
			cells = append(cells, cell)
		}
		rows[row] = strings.Join(cells, " ")
	}

	return strings.Join(rows, "\n")
}

func (a analyticsModel) renderSelectedDay() string {
	date := a.selectedDate()
	days := a.tracker.Days()

	for _, d := range days {
		if d.Date != date {
			continue
		}
		line := fmt.Sprintf("  %s  %s done of %s",
			highlightStyle.Render(date),
			successStyle.Render(fmt.Sprintf("%d", d.CompletedTasks)),
			fmt.Sprintf("%d", d.TotalTasks),
		)
		if len(d.CompletedTaskTexts) > 0 {
			var names []string
			for _, at := range d.CompletedTaskTexts {
				names = append(names, at.Text)
			}
			line += mutedStyle.Render("  (" + strings.Join(names, ", ") + ")")
		}
		if d.Remark != "" {
			line += "\n  " + mutedStyle.Render("“"+d.Remark+"”")
		}
		return line
	}
	return "  " + highlightStyle.Render(date) + mutedStyle.Render("  no activity recorded")
}
