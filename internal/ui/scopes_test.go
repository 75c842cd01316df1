package ui

import (
	"testing"

	"siteboard/internal/scope"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testScopes = []scope.Info{
	{ID: "alpha", Name: "Alpha"},
	{ID: "beta", Name: "Beta Site"},
}

func TestScopeList_StartsWithGlobal(t *testing.T) {
	s := NewScopeList()
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "", s.SelectedID())
	assert.Equal(t, GlobalScopeLabel, s.SelectedName())
	assert.Contains(t, s.View(), GlobalScopeLabel)
}

func TestScopeList_SetScopesKeepsSelection(t *testing.T) {
	s := NewScopeList()
	s.SetScopes(testScopes)
	require.Equal(t, 3, s.Len())

	s.Update(keyMsg("down"))
	s.Update(keyMsg("down"))
	require.Equal(t, "beta", s.SelectedID())

	// beta survives a reload with a new project in front of it.
	s.SetScopes(append([]scope.Info{{ID: "aaa", Name: "AAA"}}, testScopes...))
	assert.Equal(t, "beta", s.SelectedID())
	assert.Equal(t, "Beta Site", s.SelectedName())

	// Removing the selected project falls back to the global scope.
	s.SetScopes(testScopes[:1])
	assert.Equal(t, "", s.SelectedID())
}

func TestScopeList_EmitsScopeChanged(t *testing.T) {
	s := NewScopeList()
	s.SetScopes(testScopes)

	_, cmd := s.Update(keyMsg("down"))
	require.NotNil(t, cmd)
	var got []ScopeChangedMsg
	for _, msg := range flatten(cmd) {
		if c, ok := msg.(ScopeChangedMsg); ok {
			got = append(got, c)
		}
	}
	assert.Equal(t, []ScopeChangedMsg{{Scope: "alpha", Name: "Alpha"}}, got)
}

func TestScopeList_NoChangeNoMessage(t *testing.T) {
	s := NewScopeList()
	s.SetScopes(testScopes)

	// Already at the top.
	_, cmd := s.Update(keyMsg("up"))
	for _, msg := range flatten(cmd) {
		if _, ok := msg.(ScopeChangedMsg); ok {
			t.Fatalf("unexpected ScopeChangedMsg %v", msg)
		}
	}
}

func TestScopeList_WindowSize(t *testing.T) {
	s := NewScopeList()
	_, cmd := s.Update(tea.WindowSizeMsg{Width: 80, Height: 2})
	assert.Nil(t, cmd)
	assert.NotEmpty(t, s.View())
}

// flatten runs cmd and any batched commands, returning every message produced.
func flatten(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, flatten(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}
