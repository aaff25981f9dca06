package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/khangai-labs/khuvaari-cli/internal/adapters/driving/tui/keymap"
	"github.com/khangai-labs/khuvaari-cli/internal/adapters/driving/tui/styles"
	"github.com/khangai-labs/khuvaari-cli/internal/core/domain"
)

// viewType identifies the active screen.
type viewType int

const (
	viewBrowse viewType = iota
	viewGrid
)

// nameItem adapts a section name for the bubbles list.
type nameItem struct {
	name   string
	school string
}

func (i nameItem) Title() string       { return i.name }
func (i nameItem) Description() string { return i.school }
func (i nameItem) FilterValue() string { return i.name }

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports *Ports

	styles *styles.Styles
	keys   *keymap.KeyMap

	// classList and teacherList are the two browse tabs.
	classList   list.Model
	teacherList list.Model

	// showTeachers selects the active browse tab.
	showTeachers bool

	// currentView tracks which screen is active.
	currentView viewType

	// grid and week drive the grid screen.
	grid domain.SectionGrid
	week domain.Week

	// err holds the last lookup error.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	classItems := make([]list.Item, 0)
	for _, name := range ports.Timetable.ClassNames() {
		classItems = append(classItems, nameItem{name: name, school: domain.SchoolPrefix(name)})
	}
	teacherItems := make([]list.Item, 0)
	for _, name := range ports.Timetable.TeacherNames() {
		teacherItems = append(teacherItems, nameItem{name: name})
	}

	classList := list.New(classItems, list.NewDefaultDelegate(), 0, 0)
	classList.Title = "Ангиуд"
	classList.SetShowStatusBar(false)

	teacherList := list.New(teacherItems, list.NewDefaultDelegate(), 0, 0)
	teacherList.Title = "Багш нар"
	teacherList.SetShowStatusBar(false)

	return &App{
		ports:       ports,
		styles:      s,
		keys:        keymap.DefaultKeyMap(),
		classList:   classList,
		teacherList: teacherList,
		week:        domain.WeekOdd,
	}, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.classList.SetSize(msg.Width, msg.Height-4)
		a.teacherList.SetSize(msg.Width, msg.Height-4)
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		// Quit works everywhere except while the list filter is open.
		if key.Matches(msg, a.keys.Quit) && !a.filtering() {
			return a, tea.Quit
		}

		switch a.currentView {
		case viewBrowse:
			return a.updateBrowse(msg)
		case viewGrid:
			return a.updateGrid(msg)
		}
	}

	return a.updateActiveList(msg)
}

func (a *App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !a.filtering() {
		switch {
		case key.Matches(msg, a.keys.Tab):
			a.showTeachers = !a.showTeachers
			return a, nil

		case key.Matches(msg, a.keys.Select):
			item, ok := a.activeList().SelectedItem().(nameItem)
			if !ok {
				return a, nil
			}
			a.openGrid(item.name)
			return a, nil
		}
	}
	return a.updateActiveList(msg)
}

func (a *App) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Back):
		a.currentView = viewBrowse
		a.err = nil
	case key.Matches(msg, a.keys.ToggleWeek):
		if a.week == domain.WeekOdd {
			a.week = domain.WeekEven
		} else {
			a.week = domain.WeekOdd
		}
	}
	return a, nil
}

func (a *App) updateActiveList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if a.showTeachers {
		a.teacherList, cmd = a.teacherList.Update(msg)
	} else {
		a.classList, cmd = a.classList.Update(msg)
	}
	return a, cmd
}

func (a *App) openGrid(name string) {
	var grid domain.SectionGrid
	var err error
	if a.showTeachers {
		grid, err = a.ports.Timetable.Teacher(name)
	} else {
		grid, err = a.ports.Timetable.Class(name)
	}
	if err != nil {
		a.err = err
		return
	}
	a.grid = grid
	a.err = nil
	a.currentView = viewGrid
}

func (a *App) activeList() *list.Model {
	if a.showTeachers {
		return &a.teacherList
	}
	return &a.classList
}

func (a *App) filtering() bool {
	return a.activeList().FilterState() == list.Filtering
}

// View implements tea.Model.
func (a *App) View() string {
	if a.currentView == viewGrid {
		return a.viewGrid()
	}
	return a.viewBrowse()
}

func (a *App) viewBrowse() string {
	var b strings.Builder
	b.WriteString(a.activeList().View())
	if a.err != nil {
		b.WriteString("\n")
		b.WriteString(a.styles.Error.Render(a.err.Error()))
	}
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("enter open · tab classes/teachers · q quit"))
	return b.String()
}

func (a *App) viewGrid() string {
	weekLabel := "сондгой"
	matrix := a.grid.Odd
	if a.week == domain.WeekEven {
		weekLabel = "тэгш"
		matrix = a.grid.Even
	}

	title := a.styles.Title.Render(fmt.Sprintf("%s — %s долоо хоног", a.grid.Name, weekLabel))

	colWidth := a.columnWidth()
	var rows []string
	rows = append(rows, a.renderHeader(colWidth))
	for r, period := range a.grid.Periods {
		rows = append(rows, a.renderRow(period, matrix[r], colWidth))
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	help := a.styles.Help.Render("w odd/even week · esc back · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, table, help)
}

func (a *App) renderHeader(colWidth int) string {
	cells := []string{a.styles.GridHeader.Width(6).Render("")}
	for _, day := range a.grid.Days {
		cells = append(cells, a.styles.GridHeader.Width(colWidth).Render(day))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (a *App) renderRow(period string, entries []domain.Entry, colWidth int) string {
	cells := []string{a.styles.GridHeader.Width(6).Render(period)}
	for _, e := range entries {
		cells = append(cells, a.styles.Normal.Width(colWidth).Render(entryLabel(e)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// columnWidth divides the available width across the day columns,
// falling back to a readable minimum before the first WindowSizeMsg.
func (a *App) columnWidth() int {
	cols := len(a.grid.Days)
	if cols == 0 {
		return 16
	}
	width := (a.width - 8) / cols
	if width < 12 {
		width = 16
	}
	return width
}

// entryLabel condenses an entry to a single grid line.
func entryLabel(e domain.Entry) string {
	if e.IsEmpty() {
		return "·"
	}
	parts := []string{e.Subject}
	if e.Secondary != "" {
		parts = append(parts, e.Secondary)
	}
	if e.Tertiary != "" {
		parts = append(parts, e.Tertiary)
	}
	return strings.Join(parts, " / ")
}

// Run starts the TUI and blocks until the user quits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
