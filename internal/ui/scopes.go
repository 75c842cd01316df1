package ui

import (
	"siteboard/internal/scope"
	"siteboard/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// GlobalScopeLabel names the unscoped entry at the top of the scope list.
const GlobalScopeLabel = "All projects"

const scopeNameWidth = 28

// ScopeChangedMsg is sent when the highlighted scope changes.
type ScopeChangedMsg struct {
	Scope string // "" for the global scope
	Name  string
}

// ScopesLoadedMsg carries project scopes read from disk.
type ScopesLoadedMsg struct {
	Scopes []scope.Info
	Err    error
}

// scopeItem implements list.Item.
type scopeItem struct {
	id   string
	name string
}

func (s scopeItem) FilterValue() string { return s.name }
func (s scopeItem) Title() string       { return textutil.Truncate(s.name, scopeNameWidth) }
func (s scopeItem) Description() string { return "" }

// ScopeList lists the global scope followed by project scopes.
type ScopeList struct {
	list list.Model
}

// Ensure ScopeList implements View.
var _ View = (*ScopeList)(nil)

// NewScopeList creates a list holding only the global scope until SetScopes.
func NewScopeList() *ScopeList {
	l := list.New(nil, NewCompactListDelegate(), scopeNameWidth+4, 20)
	l.Title = "Scopes"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	s := &ScopeList{list: l}
	s.SetScopes(nil)
	return s
}

// SetScopes replaces the project scopes, keeping the highlighted scope when it
// still exists.
func (s *ScopeList) SetScopes(scopes []scope.Info) {
	current := s.selected()
	items := make([]list.Item, 0, len(scopes)+1)
	items = append(items, scopeItem{id: "", name: GlobalScopeLabel})
	selected := 0
	for i, sc := range scopes {
		items = append(items, scopeItem{id: sc.ID, name: sc.Name})
		if sc.ID == current.id && current.id != "" {
			selected = i + 1
		}
	}
	s.list.SetItems(items)
	s.list.Select(selected)
}

// Len returns the number of entries, including the global scope.
func (s *ScopeList) Len() int {
	return len(s.list.Items())
}

func (s *ScopeList) selected() scopeItem {
	if it, ok := s.list.SelectedItem().(scopeItem); ok {
		return it
	}
	return scopeItem{id: "", name: GlobalScopeLabel}
}

// SelectedID returns the highlighted scope id; "" is the global scope.
func (s *ScopeList) SelectedID() string {
	return s.selected().id
}

// SelectedName returns the highlighted scope's display name.
func (s *ScopeList) SelectedName() string {
	return s.selected().name
}

// Init implements View.
func (s *ScopeList) Init() tea.Cmd {
	return nil
}

// Update implements View. Emits ScopeChangedMsg when the highlight moves.
func (s *ScopeList) Update(msg tea.Msg) (View, tea.Cmd) {
	if sz, ok := msg.(tea.WindowSizeMsg); ok {
		s.list.SetHeight(max(sz.Height-6, 3))
		return s, nil
	}
	before := s.SelectedID()
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	if after := s.selected(); after.id != before {
		changed := func() tea.Msg { return ScopeChangedMsg{Scope: after.id, Name: after.name} }
		return s, tea.Batch(cmd, changed)
	}
	return s, cmd
}

// View implements View.
func (s *ScopeList) View() string {
	return s.list.View()
}
