// Package picker is the interactive launcher: a query line above a ranked
// list of applications.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/HotpotSnowguy/yeet/internal/apps"
	"github.com/HotpotSnowguy/yeet/internal/search"
)

const defaultWidth = 80

// Model is the bubbletea model behind the picker. The zero value is not
// usable; call New.
type Model struct {
	catalog *apps.Catalog
	index   *search.Index
	cfg     search.Config
	matcher search.Matcher
	keys    KeyMap

	input   textinput.Model
	query   string
	results []int
	cursor  int
	width   int

	chosen int
	done   bool
}

// New returns a picker showing the browse list for an empty query.
func New(cat *apps.Catalog, idx *search.Index, cfg search.Config, m search.Matcher) Model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render("❯ ")
	ti.Placeholder = "Search applications"
	ti.CharLimit = 256
	ti.Focus()

	model := Model{
		catalog: cat,
		index:   idx,
		cfg:     cfg,
		matcher: m,
		keys:    DefaultKeyMap(),
		input:   ti,
		width:   defaultWidth,
		chosen:  -1,
	}
	model.results = search.Rank(idx, "", cfg, m)
	return model
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.input.Width = msg.Width - 4
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.done = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Launch):
		return m.pick(m.cursor)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
		return m, nil
	}
	for i, b := range m.keys.Quick {
		if key.Matches(msg, b) {
			return m.pick(i)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.query {
		m.setQuery(v)
	}
	return m, cmd
}

// pick selects row and quits. Rows that do not exist are ignored.
func (m Model) pick(row int) (tea.Model, tea.Cmd) {
	if row < 0 || row >= len(m.results) {
		return m, nil
	}
	m.chosen = m.results[row]
	m.done = true
	return m, tea.Quit
}

func (m *Model) setQuery(q string) {
	m.query = q
	m.results = search.Rank(m.index, q, m.cfg, m.matcher)
	m.cursor = 0
}

// Selected returns the application the user launched, if any.
func (m Model) Selected() (apps.Application, bool) {
	if m.chosen < 0 {
		return apps.Application{}, false
	}
	return m.catalog.At(m.chosen), true
}

func (m Model) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString(emptyStyle.Render("No matching applications"))
		b.WriteString("\n")
		return b.String()
	}
	for row, pos := range m.results {
		b.WriteString(m.renderRow(row, m.catalog.At(pos)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderRow(row int, app apps.Application) string {
	hint := "      "
	if row < quickSlots {
		hint = fmt.Sprintf("Alt+%d ", row+1)
	}

	avail := m.width - 2 - runewidth.StringWidth(hint)
	if avail < 1 {
		avail = 1
	}
	name := runewidth.Truncate(app.Name, avail, "…")
	desc := ""
	if rest := avail - runewidth.StringWidth(name) - 2; rest > 1 && app.Description != "" {
		desc = runewidth.Truncate(app.Description, rest, "…")
	}

	if row == m.cursor {
		line := hint + name
		if desc != "" {
			line += "  " + desc
		}
		return selectedRowStyle.Render(line)
	}
	line := hintStyle.Render(hint) + name
	if desc != "" {
		line += "  " + descStyle.Render(desc)
	}
	return rowStyle.Render(line)
}

// Run shows the picker on the terminal and returns the chosen application.
func Run(m Model) (apps.Application, bool, error) {
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return apps.Application{}, false, fmt.Errorf("picker failed: %w", err)
	}
	app, ok := final.(Model).Selected()
	return app, ok, nil
}
