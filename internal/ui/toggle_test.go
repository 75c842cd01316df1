package ui

import (
	"strings"
	"testing"

	"siteboard/internal/prefkv"
	"siteboard/internal/viewmode"
	"siteboard/internal/viewpref"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func newTestToggle(t *testing.T) (*ModeToggle, *viewpref.Store, *prefkv.Memory, *[]viewmode.DisplayMode) {
	t.Helper()
	mem := prefkv.NewMemory()
	store := viewpref.New(mem)
	var calls []viewmode.DisplayMode
	toggle := NewModeToggle(store, func(m viewmode.DisplayMode) { calls = append(calls, m) })
	return toggle, store, mem, &calls
}

func TestModeToggle_SeedsFromGlobal(t *testing.T) {
	mem := prefkv.NewMemory()
	mem.Set(viewpref.GlobalKey, "gantt")
	toggle := NewModeToggle(viewpref.New(mem), nil)
	if toggle.Active() != viewmode.Gantt {
		t.Errorf("Active() = %v, want gantt", toggle.Active())
	}
}

func TestModeToggle_DefaultWithoutStore(t *testing.T) {
	toggle := NewModeToggle(nil, nil)
	if toggle.Active() != viewmode.List {
		t.Errorf("Active() = %v, want list", toggle.Active())
	}
	// Selection still works in memory.
	toggle.Update(keyMsg("2"))
	if toggle.Active() != viewmode.Kanban {
		t.Errorf("after 2: Active() = %v, want kanban", toggle.Active())
	}
}

func TestModeToggle_NumberKeys(t *testing.T) {
	tests := []struct {
		key  string
		want viewmode.DisplayMode
	}{
		{"1", viewmode.List},
		{"2", viewmode.Kanban},
		{"3", viewmode.Gantt},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			toggle, store, _, calls := newTestToggle(t)
			_, cmd := toggle.Update(keyMsg(tt.key))
			if toggle.Active() != tt.want {
				t.Errorf("Active() = %v, want %v", toggle.Active(), tt.want)
			}
			if got := store.GetMode(""); got != tt.want {
				t.Errorf("stored mode = %v, want %v", got, tt.want)
			}
			if len(*calls) != 1 || (*calls)[0] != tt.want {
				t.Errorf("onChange calls = %v, want [%v]", *calls, tt.want)
			}
			if cmd == nil {
				t.Fatal("expected ModeChangedMsg cmd")
			}
			msg, ok := cmd().(ModeChangedMsg)
			if !ok {
				t.Fatalf("cmd() = %T, want ModeChangedMsg", cmd())
			}
			if msg.Mode != tt.want || msg.Scope != "" {
				t.Errorf("msg = %+v", msg)
			}
		})
	}
}

func TestModeToggle_StepKeysWrap(t *testing.T) {
	toggle, _, _, _ := newTestToggle(t)

	toggle.Update(keyMsg("l"))
	if toggle.Active() != viewmode.Kanban {
		t.Errorf("after l: %v, want kanban", toggle.Active())
	}
	toggle.Update(keyMsg("right"))
	if toggle.Active() != viewmode.Gantt {
		t.Errorf("after right: %v, want gantt", toggle.Active())
	}
	toggle.Update(keyMsg("l"))
	if toggle.Active() != viewmode.List {
		t.Errorf("l at gantt should wrap to list, got %v", toggle.Active())
	}
	toggle.Update(keyMsg("h"))
	if toggle.Active() != viewmode.Gantt {
		t.Errorf("h at list should wrap to gantt, got %v", toggle.Active())
	}
	toggle.Update(keyMsg("left"))
	if toggle.Active() != viewmode.Kanban {
		t.Errorf("after left: %v, want kanban", toggle.Active())
	}
}

func TestModeToggle_ScopedSelection(t *testing.T) {
	toggle, store, mem, _ := newTestToggle(t)
	toggle.SetScope("tower-a")
	_, cmd := toggle.Update(keyMsg("3"))

	if got := store.GetMode("tower-a"); got != viewmode.Gantt {
		t.Errorf("scoped mode = %v, want gantt", got)
	}
	if got := store.GetMode(""); got != viewmode.List {
		t.Errorf("global mode = %v, want list (untouched)", got)
	}
	if mem.Len() != 1 {
		t.Errorf("expected exactly one key written, got %d", mem.Len())
	}
	if msg := cmd().(ModeChangedMsg); msg.Scope != "tower-a" {
		t.Errorf("msg.Scope = %q, want tower-a", msg.Scope)
	}
}

func TestModeToggle_SetScopeReseeds(t *testing.T) {
	toggle, store, _, _ := newTestToggle(t)
	store.SetMode(viewmode.Kanban, "depot")
	store.SetMode(viewmode.Gantt, "")

	toggle.SetScope("depot")
	if toggle.Active() != viewmode.Kanban {
		t.Errorf("depot: %v, want kanban", toggle.Active())
	}
	toggle.SetScope("unset")
	if toggle.Active() != viewmode.List {
		t.Errorf("unset scope: %v, want list", toggle.Active())
	}
	toggle.SetScope("")
	if toggle.Active() != viewmode.Gantt {
		t.Errorf("global: %v, want gantt", toggle.Active())
	}
}

func TestModeToggle_ReselectActiveStillWrites(t *testing.T) {
	toggle, store, mem, calls := newTestToggle(t)
	toggle.Update(keyMsg("2"))
	// Overwrite out from under the toggle to prove the second select writes.
	mem.Set(viewpref.GlobalKey, "timeline")
	toggle.Update(keyMsg("2"))

	if toggle.Active() != viewmode.Kanban {
		t.Errorf("Active() = %v, want kanban", toggle.Active())
	}
	if got := store.GetMode(""); got != viewmode.Kanban {
		t.Errorf("store = %v, want kanban", got)
	}
	if len(*calls) != 2 {
		t.Errorf("onChange calls = %d, want 2", len(*calls))
	}
}

func TestModeToggle_IgnoresOtherKeys(t *testing.T) {
	toggle, _, mem, calls := newTestToggle(t)
	for _, k := range []string{"j", "k", "4", "enter"} {
		if _, cmd := toggle.Update(keyMsg(k)); cmd != nil {
			t.Errorf("key %q: expected no cmd", k)
		}
		if toggle.HandlesKey(k) {
			t.Errorf("HandlesKey(%q) = true", k)
		}
	}
	if mem.Len() != 0 || len(*calls) != 0 {
		t.Error("unrelated keys must not select")
	}
}

func TestModeToggle_SelectInvalid(t *testing.T) {
	toggle, _, mem, _ := newTestToggle(t)
	if cmd := toggle.Select(viewmode.DisplayMode(42)); cmd != nil {
		t.Error("expected nil cmd for invalid mode")
	}
	if mem.Len() != 0 {
		t.Error("invalid mode must not be written")
	}
}

func TestModeToggle_View(t *testing.T) {
	toggle, _, _, _ := newTestToggle(t)
	toggle.Update(keyMsg("2"))
	out := toggle.View()

	for _, m := range viewmode.All() {
		if !strings.Contains(out, m.Icon()+" "+m.Label()) {
			t.Errorf("view missing control %q: %q", m.Label(), out)
		}
	}
	if !strings.Contains(out, "[▦ Kanban]") {
		t.Errorf("active control not highlighted: %q", out)
	}
	if strings.Contains(out, "[☰ List]") || strings.Contains(out, "[▤ Gantt]") {
		t.Errorf("inactive control highlighted: %q", out)
	}
}
