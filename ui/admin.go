package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"foodhub/admin"
	"foodhub/models"
)

const (
	viewAdd = iota
	viewList
)

var sidebarItems = [...]string{viewAdd: "Add Food", viewList: "List Food"}

type adminKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Delete  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Sidebar key.Binding
	Add     key.Binding
	Back    key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var adminKeys = adminKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
	Delete:  key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
	Confirm: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "confirm")),
	Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
	Sidebar: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "sidebar")),
	Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add food")),
	Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k adminKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Delete, k.Refresh, k.Quit, k.Help}
}

func (k adminKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Delete, k.Confirm, k.Cancel},
		{k.Add, k.Sidebar, k.Refresh, k.Quit, k.Help},
	}
}

type listFetchedMsg struct{}
type deleteDoneMsg struct{ ok bool }

// AdminModel shows the food table with a delete confirmation modal, and the
// add-food form reached from the sidebar.
type AdminModel struct {
	page     *admin.ListFoodPage
	add      *admin.AddFoodPage
	notes    *admin.Recorder
	view     int
	form     addForm
	cursor   int
	sidebar  bool
	fetching bool
	deleting bool

	spinner spinner.Model
	keys    adminKeyMap
	help    help.Model
	width   int
}

// NewAdminModel wires both pages to the model. notes must be the Recorder
// the pages notify, so the latest message shows in the status line.
func NewAdminModel(page *admin.ListFoodPage, add *admin.AddFoodPage, notes *admin.Recorder) AdminModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return AdminModel{
		page:     page,
		add:      add,
		notes:    notes,
		view:     viewList,
		form:     newAddForm(),
		sidebar:  true,
		fetching: true,
		spinner:  s,
		keys:     adminKeys,
		help:     help.New(),
	}
}

func (m AdminModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd())
}

func (m AdminModel) fetchCmd() tea.Cmd {
	page := m.page
	return func() tea.Msg {
		_ = page.FetchList(context.Background())
		return listFetchedMsg{}
	}
}

func (m AdminModel) deleteCmd() tea.Cmd {
	page := m.page
	return func() tea.Msg {
		return deleteDoneMsg{ok: page.ConfirmDelete(context.Background())}
	}
}

func (m AdminModel) loading() bool {
	return m.fetching || m.page.View() == admin.ViewLoading
}

func (m AdminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case listFetchedMsg:
		m.fetching = false
		m.clampCursor()
		return m, nil

	case deleteDoneMsg:
		m.deleting = false
		m.clampCursor()
		return m, nil

	case addDoneMsg:
		m.form.submitting = false
		if msg.err != nil || m.fetching {
			return m, nil
		}
		m.form.reset()
		m.fetching = true
		return m, tea.Batch(m.spinner.Tick, m.fetchCmd())

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.modalOpen() {
			return m.updateModal(msg)
		}
		if m.view == viewAdd {
			return m.updateForm(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.page.Close()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Sidebar):
			m.sidebar = !m.sidebar

		case key.Matches(msg, m.keys.Add):
			m.view = viewAdd
			return m, m.form.setFocus(rowName)

		case key.Matches(msg, m.keys.Refresh):
			if m.fetching {
				return m, nil
			}
			m.fetching = true
			return m, tea.Batch(m.spinner.Tick, m.fetchCmd())

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.page.Items())-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Delete):
			items := m.page.Items()
			if m.loading() || m.cursor >= len(items) {
				return m, nil
			}
			m.page.RequestDelete(items[m.cursor].ID)
		}
	}
	return m, nil
}

// modalOpen is true while a delete waits for confirmation or is running.
func (m AdminModel) modalOpen() bool {
	if m.deleting {
		return true
	}
	state, _ := m.page.DeleteState()
	return state == admin.DeletePending
}

func (m AdminModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.page.Close()
		return m, tea.Quit
	case "esc":
		m.view = viewList
		return m, nil
	}
	if m.form.submitting {
		return m, nil
	}
	switch msg.String() {
	case "enter":
		m.form.submitting = true
		return m, m.form.submitCmd(m.add, m.notes)
	case "up", "shift+tab":
		return m, m.form.move(-1)
	case "down", "tab":
		return m, m.form.move(1)
	}
	return m, m.form.update(msg)
}

func (m AdminModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.deleting {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.deleting = true
		return m, m.deleteCmd()
	case key.Matches(msg, m.keys.Cancel):
		m.page.CancelDelete()
	case msg.String() == "ctrl+c":
		m.page.Close()
		return m, tea.Quit
	}
	return m, nil
}

func (m *AdminModel) clampCursor() {
	n := len(m.page.Items())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m AdminModel) View() string {
	nav := titleStyle.Render("Admin Dashboard") + "\n"

	body := m.tableView()
	switch {
	case m.view == viewAdd:
		body = m.form.view()
	case m.modalOpen():
		body = m.modalView()
	}
	if m.sidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebarStyle.Render(m.sidebarView()), body)
	}

	sections := []string{nav, body, m.statusView(), helpStyle.Render(m.help.View(m.keys))}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m AdminModel) sidebarView() string {
	var lines []string
	for i, item := range sidebarItems {
		if i == m.view {
			lines = append(lines, activeStyle.Render(item))
		} else {
			lines = append(lines, item)
		}
	}
	return strings.Join(lines, "\n")
}

func (m AdminModel) tableView() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Food Items  %s\n\n", mutedStyle.Render(m.page.CountLabel()))
	fmt.Fprintf(&b, "  %-20s %-20s %-28s %-10s %10s\n", "Image", "Name", "Description", "Category", "Price")

	if m.loading() {
		b.WriteString("\n  " + m.spinner.View() + " Loading\n")
		return b.String()
	}

	items := m.page.Items()
	if len(items) == 0 {
		b.WriteString("\n  " + mutedStyle.Render("No food items found.") + "\n")
		return b.String()
	}

	for i, food := range items {
		row := fmt.Sprintf("%-20s %-20s %-28s %-10s %10s",
			truncate(food.ImageURL, 20),
			truncate(food.Name, 20),
			truncate(food.Description, 28),
			truncate(food.Category, 10),
			models.FormatPrice(food.Price),
		)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m AdminModel) modalView() string {
	text := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Confirm Delete"),
		"",
		"Are you sure you want to delete this food item?",
		"",
		mutedStyle.Render("[n] Cancel   [y] Delete"),
	)
	if m.deleting {
		text += "\n" + m.spinner.View() + " Deleting"
	}
	return modalStyle.Render(text)
}

func (m AdminModel) statusView() string {
	if m.notes == nil {
		return ""
	}
	last, ok := m.notes.Last()
	if !ok {
		return ""
	}
	if last.Kind == admin.KindError {
		return errorStyle.Render(last.Message)
	}
	return successStyle.Render(last.Message)
}
