package ui

import (
	"strings"

	"siteboard/internal/scope"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CreateScopeMsg asks the app to create a project scope.
type CreateScopeMsg struct {
	Name string
}

// ScopeCreatedMsg reports the result of creating a project scope.
type ScopeCreatedMsg struct {
	Scope scope.Info
	Err   error
}

// NewScopeModal prompts for a new project name.
type NewScopeModal struct {
	input textinput.Model
}

// Ensure NewScopeModal implements View.
var _ View = (*NewScopeModal)(nil)

// NewNewScopeModal creates a focused new-project modal.
func NewNewScopeModal() *NewScopeModal {
	ti := textinput.New()
	ti.Placeholder = "project name"
	ti.Width = 40
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	return &NewScopeModal{input: ti}
}

// Value returns the entered name.
func (m *NewScopeModal) Value() string {
	return m.input.Value()
}

// Init implements View.
func (m *NewScopeModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *NewScopeModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			name := strings.TrimSpace(m.input.Value())
			if name == "" {
				return m, nil
			}
			return m, func() tea.Msg { return CreateScopeMsg{Name: name} }
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *NewScopeModal) View() string {
	content := Styles.Title.Render("New project") + "\n\n"
	content += m.input.View() + "\n"
	if id := scope.Normalize(m.input.Value()); id != "" {
		content += Styles.Muted.Render("scope: "+id) + "\n"
	}
	content += "\n" + Styles.Hint.Render("Enter: create  Esc: cancel")
	return Styles.Modal.Render(content)
}
