package ui

import tea "github.com/charmbracelet/bubbletea"

// DismissModalMsg closes the topmost modal.
type DismissModalMsg struct{}

// ModalStack holds open modals; the topmost receives input first.
type ModalStack struct {
	views []View
}

// Push opens v on top of the stack.
func (s *ModalStack) Push(v View) {
	s.views = append(s.views, v)
}

// Pop closes and returns the top modal.
func (s *ModalStack) Pop() (View, bool) {
	if len(s.views) == 0 {
		return nil, false
	}
	top := s.views[len(s.views)-1]
	s.views = s.views[:len(s.views)-1]
	return top, true
}

// Top returns the top modal without removing it.
func (s *ModalStack) Top() (View, bool) {
	if len(s.views) == 0 {
		return nil, false
	}
	return s.views[len(s.views)-1], true
}

// Len returns the number of open modals.
func (s *ModalStack) Len() int {
	return len(s.views)
}

// Update passes msg to the top modal and replaces it with the result.
// Reports false when no modal is open. Caller must run the cmd.
func (s *ModalStack) Update(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.views) == 0 {
		return nil, false
	}
	next, cmd := s.views[len(s.views)-1].Update(msg)
	s.views[len(s.views)-1] = next
	return cmd, true
}

// View renders the top modal, or "" when none is open.
func (s *ModalStack) View() string {
	if top, ok := s.Top(); ok {
		return top.View()
	}
	return ""
}
