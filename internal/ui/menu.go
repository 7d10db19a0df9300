package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"accelbench/internal/benchmark"
	"accelbench/internal/demo"
)

var (
	menuTitleStyle      = lipgloss.NewStyle().MarginLeft(2)
	menuPaginationStyle = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	menuHelpStyle       = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	menuQuitTextStyle   = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// MenuItem is one entry of the list picker. Key is returned on selection.
type MenuItem struct {
	Key, Name, Desc string
}

func (i MenuItem) Title() string       { return i.Name }
func (i MenuItem) Description() string { return i.Desc }
func (i MenuItem) FilterValue() string { return i.Name }

// DemoMenuItems builds picker entries from the numbered menu, without the exit entry.
func DemoMenuItems(choices []demo.Choice) []MenuItem {
	var items []MenuItem
	for _, c := range choices {
		if len(c.Demos) == 0 {
			continue
		}
		desc := "Run every demo in order"
		if len(c.Demos) == 1 {
			desc = demoDescription(c.Demos[0])
		}
		items = append(items, MenuItem{Key: c.Key, Name: c.Label, Desc: desc})
	}
	return items
}

func demoDescription(d demo.Demo) string {
	switch d.Kind {
	case benchmark.KindMatrix:
		return "Naive triple loop on generated matrices"
	case benchmark.KindFibonacci:
		return "Exponential recursion, plus memoized alternative"
	case benchmark.KindPrime:
		return "Trial division, plus sieve alternative"
	default:
		return "Loop, plus closed-form alternative"
	}
}

type MenuModel struct {
	list     list.Model
	Selected string
	Quitting bool
}

func NewMenuModel(items []MenuItem) MenuModel {
	lItems := make([]list.Item, len(items))
	for i, item := range items {
		lItems[i] = item
	}

	const defaultWidth = 40
	const listHeight = 16

	l := list.New(lItems, list.NewDefaultDelegate(), defaultWidth, listHeight)
	l.Title = "accelbench demos"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = menuTitleStyle
	l.Styles.PaginationStyle = menuPaginationStyle
	l.Styles.HelpStyle = menuHelpStyle

	return MenuModel{list: l}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch keypress := msg.String(); keypress {
		case "ctrl+c":
			m.Quitting = true
			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(MenuItem); ok {
				m.Selected = i.Key
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m MenuModel) View() string {
	if m.Selected != "" {
		return ""
	}
	if m.Quitting {
		return menuQuitTextStyle.Render("Bye!")
	}
	return "\n" + m.list.View()
}
