// Package ui is the Bubble Tea front end for siteboard.
//
// Pieces:
//   - View: a screen region with its own Init/Update/View (Elm-style)
//   - ModeToggle: one control per display mode; selections are persisted per scope
//   - ScopeList: the global scope followed by project scopes
//   - Board: renders a scope's tasks as a list, kanban columns, or a gantt chart
//   - KeybindRegistry/KeyHandler: spacemacs-style SPC leader sequences
//   - ModalStack: modal views that take input before the rest of the app
//   - AppModel: composes the above; use AsTeaModel with tea.NewProgram
package ui
