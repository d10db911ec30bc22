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

	"foodhub/models"
	"foodhub/store"
)

var menuItems = []string{"Home", "Explore", "Contact Us"}

type customerKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Toggle  key.Binding
	Up      key.Binding
	Down    key.Binding
	Add     key.Binding
	Remove  key.Binding
	Menu    key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var customerKeys = customerKeyMap{
	Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev category")),
	Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next category")),
	Toggle:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "filter")),
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
	Add:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "add to cart")),
	Remove:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "remove")),
	Menu:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "menu")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k customerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Add, k.Remove, k.Quit, k.Help}
}

func (k customerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Toggle},
		{k.Up, k.Down, k.Add, k.Remove},
		{k.Menu, k.Refresh, k.Quit, k.Help},
	}
}

type catalogLoadedMsg struct{ err error }

// CustomerModel is the menu a customer browses: header, navigation bar with
// the cart badge, the category strip and the filtered dishes.
type CustomerModel struct {
	catalog *store.CatalogStore
	cart    *store.CartTracker

	menu     int
	category string
	strip    int
	cursor   int
	loading  bool
	err      error

	spinner spinner.Model
	keys    customerKeyMap
	help    help.Model
	width   int
}

func NewCustomerModel(catalog *store.CatalogStore, cart *store.CartTracker) CustomerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return CustomerModel{
		catalog:  catalog,
		cart:     cart,
		menu:     1,
		category: models.AllCategories,
		loading:  true,
		spinner:  s,
		keys:     customerKeys,
		help:     help.New(),
	}
}

func (m CustomerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m CustomerModel) loadCmd() tea.Cmd {
	catalog := m.catalog
	return func() tea.Msg {
		return catalogLoadedMsg{err: catalog.Load(context.Background())}
	}
}

// Category is the active filter, models.AllCategories when none.
func (m CustomerModel) Category() string { return m.category }

// Visible lists the dishes shown under the current filter.
func (m CustomerModel) Visible() []models.Food {
	return store.FilterByCategory(m.catalog.Items(), m.category)
}

func (m CustomerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case catalogLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.clampCursor()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.catalog.Close()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Menu):
			m.menu = (m.menu + 1) % len(menuItems)

		case key.Matches(msg, m.keys.Refresh):
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.loadCmd())

		case key.Matches(msg, m.keys.Left):
			if m.strip > 0 {
				m.strip--
			}

		case key.Matches(msg, m.keys.Right):
			if m.strip < len(models.Categories)-1 {
				m.strip++
			}

		case key.Matches(msg, m.keys.Toggle):
			m.category = store.ToggleCategory(m.category, models.Categories[m.strip])
			m.cursor = 0

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.Visible())-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Add):
			if food, ok := m.selected(); ok {
				m.cart.Increment(food.ID)
			}

		case key.Matches(msg, m.keys.Remove):
			if food, ok := m.selected(); ok {
				m.cart.Decrement(food.ID)
			}
		}
	}
	return m, nil
}

func (m CustomerModel) selected() (models.Food, bool) {
	visible := m.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return models.Food{}, false
	}
	return visible[m.cursor], true
}

func (m *CustomerModel) clampCursor() {
	n := len(m.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m CustomerModel) View() string {
	sections := []string{m.headerView(), m.menubarView(), m.stripView()}

	switch {
	case m.loading:
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center, m.spinner.View(), " Loading menu"))
	case m.err != nil && len(m.catalog.Items()) == 0:
		sections = append(sections, errorStyle.Render(fmt.Sprintf("Could not load the menu: %v", m.err)))
	default:
		sections = append(sections, m.listView())
	}

	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m CustomerModel) headerView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Crave it? Get it."),
		subtitleStyle.Render("Explore a world of flavors from your favorite local spots to new culinary delights."),
		"",
	)
}

func (m CustomerModel) menubarView() string {
	var parts []string
	for i, item := range menuItems {
		if i == m.menu {
			parts = append(parts, menuStyle.Render(activeStyle.Render(item)))
		} else {
			parts = append(parts, menuStyle.Render(item))
		}
	}
	parts = append(parts, "Cart "+badgeStyle.Render(fmt.Sprint(m.cart.DistinctCount())))
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...) + "\n"
}

func (m CustomerModel) stripView() string {
	var parts []string
	for i, c := range models.Categories {
		label := c
		if c == m.category {
			label = activeStyle.Render(c)
		}
		if i == m.strip {
			label = "[" + label + "]"
		} else {
			label = " " + label + " "
		}
		parts = append(parts, label)
	}
	return titleStyle.Render("Explore Your Cravings") + "\n" +
		subtitleStyle.Render("Find your next favorite meal by category, from local classics to global flavors.") + "\n" +
		strings.Join(parts, " ") + "\n"
}

func (m CustomerModel) listView() string {
	visible := m.Visible()
	if len(visible) == 0 {
		return mutedStyle.Render("No dishes in this category.")
	}

	var b strings.Builder
	for i, food := range visible {
		line := fmt.Sprintf("%-24s %10s  %s", truncate(food.Name, 24), models.FormatPrice(food.Price), truncate(food.Description, 40))
		if qty := m.cart.Quantity(food.ID); qty > 0 {
			line += successStyle.Render(fmt.Sprintf("  x%d", qty))
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
