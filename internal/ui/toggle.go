package ui

import (
	"strings"

	"siteboard/internal/viewmode"
	"siteboard/internal/viewpref"

	tea "github.com/charmbracelet/bubbletea"
)

// ModeChangedMsg is sent after the user picks a display mode.
type ModeChangedMsg struct {
	Mode  viewmode.DisplayMode
	Scope string
}

// ModeToggle renders one control per display mode and persists selections.
// Keys: 1/2/3 pick list/kanban/gantt; h/l or left/right step through them.
type ModeToggle struct {
	store    *viewpref.Store
	scope    string
	active   viewmode.DisplayMode
	onChange func(viewmode.DisplayMode)
}

// Ensure ModeToggle implements View.
var _ View = (*ModeToggle)(nil)

// NewModeToggle creates a toggle seeded from the global preference.
// onChange, if non-nil, is called synchronously on every selection.
func NewModeToggle(store *viewpref.Store, onChange func(viewmode.DisplayMode)) *ModeToggle {
	t := &ModeToggle{store: store, onChange: onChange, active: viewmode.Default}
	if store != nil {
		t.active = store.GetMode("")
	}
	return t
}

// Active returns the highlighted mode.
func (t *ModeToggle) Active() viewmode.DisplayMode {
	return t.active
}

// SetActive highlights mode without persisting it.
func (t *ModeToggle) SetActive(mode viewmode.DisplayMode) {
	if mode.Valid() {
		t.active = mode
	}
}

// Scope returns the scope selections are stored under ("" is global).
func (t *ModeToggle) Scope() string {
	return t.scope
}

// SetScope switches scope and re-seeds the active mode from its preference.
func (t *ModeToggle) SetScope(scope string) {
	t.scope = scope
	if t.store != nil {
		t.active = t.store.GetMode(scope)
	} else {
		t.active = viewmode.Default
	}
}

// Select makes mode active, writes it under the current scope, and notifies
// the host. Selecting the already active mode still writes.
func (t *ModeToggle) Select(mode viewmode.DisplayMode) tea.Cmd {
	if !mode.Valid() {
		return nil
	}
	t.active = mode
	if t.store != nil {
		t.store.SetMode(mode, t.scope)
	}
	if t.onChange != nil {
		t.onChange(mode)
	}
	scope := t.scope
	return func() tea.Msg {
		return ModeChangedMsg{Mode: mode, Scope: scope}
	}
}

// HandlesKey reports whether k is a toggle key, so hosts can route it here
// before other views see it.
func (t *ModeToggle) HandlesKey(k string) bool {
	_, ok := t.modeForKey(k)
	return ok
}

func (t *ModeToggle) modeForKey(k string) (viewmode.DisplayMode, bool) {
	switch k {
	case "1":
		return viewmode.List, true
	case "2":
		return viewmode.Kanban, true
	case "3":
		return viewmode.Gantt, true
	case "h", "left":
		return t.active.Prev(), true
	case "l", "right":
		return t.active.Next(), true
	}
	return 0, false
}

// Init implements View.
func (t *ModeToggle) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (t *ModeToggle) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		if mode, ok := t.modeForKey(k.String()); ok {
			return t, t.Select(mode)
		}
	}
	return t, nil
}

// View implements View.
func (t *ModeToggle) View() string {
	controls := make([]string, 0, len(viewmode.All()))
	for _, m := range viewmode.All() {
		controls = append(controls, renderControl(m, m == t.active))
	}
	return strings.Join(controls, " ")
}

// renderControl draws "icon Label"; the active control is bracketed.
func renderControl(m viewmode.DisplayMode, active bool) string {
	text := m.Icon() + " " + m.Label()
	if active {
		return Styles.Active.Render("[" + text + "]")
	}
	return Styles.Control.Render(" " + text + " ")
}
