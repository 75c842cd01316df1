package ui

import (
	"fmt"
	"strings"

	"siteboard/internal/scope"
	"siteboard/internal/viewmode"
	"siteboard/internal/viewpref"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// TasksLoadedMsg carries the tasks for a scope.
type TasksLoadedMsg struct {
	Scope string
	Tasks []scope.Task
	Err   error
}

// SelectModeMsg asks the app to select a mode as if its control was picked.
type SelectModeMsg struct {
	Mode viewmode.DisplayMode
}

// ReloadScopesMsg asks the app to re-read project scopes from disk.
type ReloadScopesMsg struct{}

type openNewScopeMsg struct{}

// AppModel is the root model: scope list on the left, the mode toggle above
// the board on the right.
type AppModel struct {
	Store      *viewpref.Store
	Scopes     *scope.Manager
	ScopeList  *ScopeList
	Toggle     *ModeToggle
	KeyHandler *KeyHandler
	Modals     ModalStack
	Logger     *zap.Logger

	board  Board
	status string
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model. scopes may be nil, in
// which case only the global scope is shown.
func NewAppModel(store *viewpref.Store, scopes *scope.Manager, logger *zap.Logger) *AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &AppModel{
		Store:     store,
		Scopes:    scopes,
		ScopeList: NewScopeList(),
		Logger:    logger,
		board:     Board{Title: GlobalScopeLabel},
	}
	a.Toggle = NewModeToggle(store, func(m viewmode.DisplayMode) {
		a.status = describeMode(m, a.ScopeList.SelectedName())
	})

	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC r", func() tea.Msg { return ReloadScopesMsg{} }, "Reload projects")
	reg.BindWithDesc("SPC p n", func() tea.Msg { return openNewScopeMsg{} }, "New project")
	reg.BindWithDesc("SPC p r", func() tea.Msg { return ReloadScopesMsg{} }, "Reload")
	for _, m := range viewmode.All() {
		reg.BindWithDesc("SPC v "+modeKey(m), func() tea.Msg { return SelectModeMsg{Mode: m} }, m.Label())
	}
	a.KeyHandler = NewKeyHandler(reg)
	return a
}

// modeKey is the leader sub-key for a mode: l, k, g.
func modeKey(m viewmode.DisplayMode) string {
	return m.String()[:1]
}

func describeMode(m viewmode.DisplayMode, scopeName string) string {
	return fmt.Sprintf("View: %s %s (%s)", m.Icon(), m.Label(), scopeName)
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Mode returns the active display mode.
func (a *AppModel) Mode() viewmode.DisplayMode {
	return a.Toggle.Active()
}

// Status returns the status line text.
func (a *AppModel) Status() string {
	return a.status
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.loadScopes()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ScopesLoadedMsg:
		if msg.Err != nil {
			a.Logger.Warn("list project scopes", zap.Error(msg.Err))
			a.status = "Could not read projects"
		}
		before := a.ScopeList.SelectedID()
		a.ScopeList.SetScopes(msg.Scopes)
		if after := a.ScopeList.SelectedID(); after != before {
			a.Toggle.SetScope(after)
		}
		a.board.Title = a.ScopeList.SelectedName()
		return a, a.loadTasks(a.ScopeList.SelectedID())
	case ScopeChangedMsg:
		if msg.Scope != a.ScopeList.SelectedID() {
			return a, nil // stale
		}
		a.Toggle.SetScope(msg.Scope)
		a.board = Board{Title: msg.Name}
		a.status = describeMode(a.Toggle.Active(), msg.Name)
		return a, a.loadTasks(msg.Scope)
	case TasksLoadedMsg:
		if msg.Scope != a.Toggle.Scope() {
			return a, nil // stale
		}
		if msg.Err != nil {
			a.Logger.Warn("load tasks", zap.String("scope", msg.Scope), zap.Error(msg.Err))
		}
		a.board.Tasks = msg.Tasks
		return a, nil
	case ModeChangedMsg:
		a.Logger.Debug("view mode selected",
			zap.String("mode", msg.Mode.String()),
			zap.String("scope", msg.Scope))
		return a, nil
	case SelectModeMsg:
		return a, a.Toggle.Select(msg.Mode)
	case ReloadScopesMsg:
		return a, a.loadScopes()
	case openNewScopeMsg:
		if a.Scopes == nil {
			a.status = "No projects directory configured"
			return a, nil
		}
		m := NewNewScopeModal()
		a.Modals.Push(m)
		return a, m.Init()
	case DismissModalMsg:
		a.Modals.Pop()
		return a, nil
	case CreateScopeMsg:
		a.Modals.Pop()
		return a, a.createScope(msg.Name)
	case ScopeCreatedMsg:
		if msg.Err != nil {
			a.Logger.Warn("create project", zap.Error(msg.Err))
			a.status = "Could not create project: " + msg.Err.Error()
			return a, nil
		}
		a.Logger.Info("created project", zap.String("scope", msg.Scope.ID))
		a.status = "Created project " + msg.Scope.Name
		return a, a.loadScopes()
	case tea.WindowSizeMsg:
		_, cmd := a.ScopeList.Update(msg)
		return a, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if cmd, ok := a.Modals.Update(msg); ok {
			return a, cmd
		}
		if a.KeyHandler != nil {
			if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
				return a, cmd
			}
		}
		if a.Toggle.HandlesKey(msg.String()) {
			_, cmd := a.Toggle.Update(msg)
			return a, cmd
		}
		before := a.ScopeList.SelectedID()
		_, cmd := a.ScopeList.Update(msg)
		if after := a.ScopeList.SelectedID(); after != before {
			// Re-seed now so a mode key pressed before ScopeChangedMsg
			// arrives is stored under the new scope.
			a.Toggle.SetScope(after)
		}
		return a, cmd
	}
	return a, nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var right strings.Builder
	right.WriteString(a.Toggle.View() + "\n\n")
	right.WriteString(Styles.Title.Render(a.board.Title) + "\n")
	right.WriteString(a.board.Render(a.Toggle.Active()))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		a.ScopeList.View(),
		Styles.Box.Render(right.String()),
	)

	var b strings.Builder
	b.WriteString(Styles.Title.Render("siteboard") + "  " + Styles.Hint.Render("1/2/3 or h/l: view mode · j/k: scope · [SPC] commands") + "\n")
	b.WriteString(body + "\n")
	if a.Modals.Len() > 0 {
		b.WriteString(a.Modals.View() + "\n")
	}
	if a.status != "" {
		b.WriteString(Styles.Status.Render(a.status) + "\n")
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		b.WriteString(RenderKeybindHelp(a.KeyHandler))
	}
	return b.String()
}

func (a *AppModel) loadScopes() tea.Cmd {
	mgr := a.Scopes
	if mgr == nil {
		return nil
	}
	return func() tea.Msg {
		scopes, err := mgr.List()
		return ScopesLoadedMsg{Scopes: scopes, Err: err}
	}
}

func (a *AppModel) createScope(name string) tea.Cmd {
	mgr := a.Scopes
	return func() tea.Msg {
		info, err := mgr.Create(name)
		return ScopeCreatedMsg{Scope: info, Err: err}
	}
}

// loadTasks reads a project's tasks; the global scope aggregates every project.
func (a *AppModel) loadTasks(id string) tea.Cmd {
	mgr := a.Scopes
	if mgr == nil {
		return nil
	}
	return func() tea.Msg {
		if id != "" {
			tasks, err := mgr.LoadTasks(id)
			return TasksLoadedMsg{Scope: id, Tasks: tasks, Err: err}
		}
		scopes, err := mgr.List()
		if err != nil {
			return TasksLoadedMsg{Scope: id, Err: err}
		}
		var all []scope.Task
		for _, sc := range scopes {
			tasks, err := mgr.LoadTasks(sc.ID)
			if err != nil {
				continue
			}
			for _, t := range tasks {
				t.Title = sc.Name + ": " + t.Title
				all = append(all, t)
			}
		}
		return TasksLoadedMsg{Scope: id, Tasks: all}
	}
}
