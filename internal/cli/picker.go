package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/nldates/internal/cli/formatter"
	"github.com/alexanderramin/nldates/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type pickerKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Insert      key.Binding
	InsertAlias key.Binding
	Quit        key.Binding
}

func defaultPickerKeys() pickerKeyMap {
	return pickerKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous")),
		Down:        key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
		Insert:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "insert")),
		InsertAlias: key.NewBinding(key.WithKeys("tab", "alt+enter"), key.WithHelp("tab", "insert with alias")),
		Quit:        key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k pickerKeyMap) help() string {
	parts := make([]string, 0, 5)
	for _, b := range []key.Binding{k.Up, k.Down, k.Insert, k.InsertAlias, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

type suggestionsLoadedMsg struct {
	query       string
	suggestions []domain.Suggestion
	err         error
}

type selectionMsg struct {
	label string
	text  string
	err   error
}

// pickerModel is the interactive phrase picker: a text input over a ranked
// suggestion list. Choosing a suggestion resolves it the way an editor
// would insert it and records the insertion in history.
type pickerModel struct {
	ctx   context.Context
	app   *App
	keys  pickerKeyMap
	input textinput.Model

	suggestions []domain.Suggestion
	cursor      int

	// Set once a suggestion has been inserted.
	result string
	label  string

	notice string
	err    error
	done   bool
}

func newPickerModel(ctx context.Context, app *App, query string) pickerModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "tomorrow, next friday, in 3 days, time:5pm ..."
	ti.CharLimit = 128
	ti.Width = 48
	ti.SetValue(query)
	ti.CursorEnd()
	ti.Focus()

	return pickerModel{
		ctx:   ctx,
		app:   app,
		keys:  defaultPickerKeys(),
		input: ti,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadSuggestions(m.input.Value()))
}

func (m pickerModel) loadSuggestions(query string) tea.Cmd {
	return func() tea.Msg {
		s, err := m.app.Dates.Suggest(m.ctx, query)
		return suggestionsLoadedMsg{query: query, suggestions: s, err: err}
	}
}

func (m pickerModel) choose(label string, includeAlias bool) tea.Cmd {
	return func() tea.Msg {
		text, err := m.app.Dates.Select(m.ctx, label, includeAlias)
		if err != nil {
			return selectionMsg{label: label, err: err}
		}
		if text != domain.InvalidDate && m.app.History != nil {
			if _, err := m.app.History.Record(m.ctx, label, text, domain.ModeReplace); err != nil {
				return selectionMsg{label: label, err: err}
			}
		}
		return selectionMsg{label: label, text: text}
	}
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-6, 10)
		return m, nil

	case suggestionsLoadedMsg:
		if msg.query != m.input.Value() {
			return m, nil
		}
		m.err = msg.err
		m.suggestions = msg.suggestions
		m.cursor = 0
		return m, nil

	case selectionMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.text == domain.InvalidDate {
			m.notice = fmt.Sprintf("%q is not a date", msg.label)
			return m, nil
		}
		m.result = msg.text
		m.label = msg.label
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.move(1)
			return m, nil
		case key.Matches(msg, m.keys.InsertAlias):
			return m, m.chooseCurrent(true)
		case key.Matches(msg, m.keys.Insert):
			return m, m.chooseCurrent(false)
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.notice = ""
		return m, tea.Batch(cmd, m.loadSuggestions(v))
	}
	return m, cmd
}

// move shifts the cursor by delta, wrapping at both ends.
func (m *pickerModel) move(delta int) {
	n := len(m.suggestions)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
}

func (m pickerModel) chooseCurrent(includeAlias bool) tea.Cmd {
	if len(m.suggestions) == 0 {
		return nil
	}
	return m.choose(m.suggestions[m.cursor].Label, includeAlias)
}

func (m pickerModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.StylePurple.Render("nldates") + "\n\n")
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(formatter.SuggestionList(domain.Labels(m.suggestions), m.cursor))
	if m.notice != "" {
		b.WriteString("\n" + formatter.StyleYellow.Render(m.notice) + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}
	b.WriteString("\n" + formatter.Dim(m.keys.help()) + "\n")
	return b.String()
}
